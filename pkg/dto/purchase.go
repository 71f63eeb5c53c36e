package dto

import (
	"github.com/shopspring/decimal"
)

type CreatePurchaseRequest struct {
	ItemID    int64           `json:"item_id" validate:"required"`
	PricePaid decimal.Decimal `json:"price_paid"`
}

type UpdatePurchaseStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
