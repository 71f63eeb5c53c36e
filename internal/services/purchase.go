package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/minsu/gamestore-api/internal/database"
	"github.com/minsu/gamestore-api/internal/models"
	"github.com/shopspring/decimal"
)

const purchaseColumns = "id, user_id, item_id, price_paid, purchase_date, status"

type PurchaseService struct {
	db *database.DB
}

func NewPurchaseService(db *database.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

// Create validates that the user exists and the item exists and is
// available, then inserts the purchase with status pending. Each guard is
// a point lookup; the first failing one aborts before any write. The
// price paid is recorded as given, not checked against the item's
// current price.
func (s *PurchaseService) Create(ctx context.Context, userID uuid.UUID, itemID int64, pricePaid decimal.Decimal) (*models.Purchase, error) {
	var exists bool
	err := s.db.Pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)
	`, userID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	var available bool
	err = s.db.Pool.QueryRow(ctx, `
		SELECT is_available FROM game_items WHERE id = $1
	`, itemID).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up game item: %w", err)
	}
	if !available {
		return nil, ErrItemUnavailable
	}

	var purchase models.Purchase
	err = s.db.Pool.QueryRow(ctx, `
		INSERT INTO purchases (user_id, item_id, price_paid, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING `+purchaseColumns+`
	`, userID, itemID, pricePaid).Scan(
		&purchase.ID, &purchase.UserID, &purchase.ItemID,
		&purchase.PricePaid, &purchase.PurchaseDate, &purchase.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}
	return &purchase, nil
}

func (s *PurchaseService) GetUserPurchases(ctx context.Context, userID uuid.UUID) ([]models.Purchase, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+purchaseColumns+`
		FROM purchases WHERE user_id = $1
		ORDER BY purchase_date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchases: %w", err)
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.ItemID, &p.PricePaid, &p.PurchaseDate, &p.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read purchases: %w", err)
	}
	return purchases, nil
}

// UpdateStatus overwrites the status field only. Any status may move to
// any other status; there is no transition table.
func (s *PurchaseService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Purchase, error) {
	var purchase models.Purchase
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE purchases SET status = $1
		WHERE id = $2
		RETURNING `+purchaseColumns+`
	`, status, id).Scan(
		&purchase.ID, &purchase.UserID, &purchase.ItemID,
		&purchase.PricePaid, &purchase.PurchaseDate, &purchase.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPurchaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update purchase status: %w", err)
	}
	return &purchase, nil
}
