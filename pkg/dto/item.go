package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// NullableString distinguishes a JSON field that was absent from one that
// was present with a null value. Needed for patch requests where null is a
// meaningful write.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

type CreateItemRequest struct {
	Title               string          `json:"title" validate:"required"`
	Description         string          `json:"description" validate:"required"`
	DetailedDescription string          `json:"detailed_description" validate:"required"`
	Price               decimal.Decimal `json:"price"`
	GameType            string          `json:"game_type" validate:"required,oneof=gostop poker"`
	ImageURL            *string         `json:"image_url"`
	IsAvailable         *bool           `json:"is_available"`
}

type UpdateItemRequest struct {
	Title               *string          `json:"title" validate:"omitempty,min=1"`
	Description         *string          `json:"description" validate:"omitempty,min=1"`
	DetailedDescription *string          `json:"detailed_description" validate:"omitempty,min=1"`
	Price               *decimal.Decimal `json:"price"`
	GameType            *string          `json:"game_type" validate:"omitempty,oneof=gostop poker"`
	ImageURL            NullableString   `json:"image_url"`
	IsAvailable         *bool            `json:"is_available"`
}
