package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Game item categories
const (
	GameTypeGostop = "gostop"
	GameTypePoker  = "poker"
)

// ValidGameType reports whether t is one of the two item categories.
func ValidGameType(t string) bool {
	return t == GameTypeGostop || t == GameTypePoker
}

// GameItem is a purchasable virtual product. Price is stored as
// NUMERIC(10,2) so two-decimal monetary values round-trip exactly.
type GameItem struct {
	ID                  int64           `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	DetailedDescription string          `json:"detailed_description"`
	Price               decimal.Decimal `json:"price"`
	GameType            string          `json:"game_type"`
	ImageURL            *string         `json:"image_url"`
	IsAvailable         bool            `json:"is_available"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
