package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase statuses
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusFailed    = "failed"
	PurchaseStatusRefunded  = "refunded"
)

// ValidPurchaseStatus reports whether s is one of the purchase statuses.
func ValidPurchaseStatus(s string) bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusCompleted, PurchaseStatusFailed, PurchaseStatusRefunded:
		return true
	}
	return false
}

// Purchase records one user acquiring one item. PricePaid captures the
// price at purchase time, independent of the item's current price.
type Purchase struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	ItemID       int64           `json:"item_id"`
	PricePaid    decimal.Decimal `json:"price_paid"`
	PurchaseDate time.Time       `json:"purchase_date"`
	Status       string          `json:"status"`
}
