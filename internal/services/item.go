package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/minsu/gamestore-api/internal/database"
	"github.com/minsu/gamestore-api/internal/models"
	"github.com/shopspring/decimal"
)

const itemColumns = "id, title, description, detailed_description, price, game_type, image_url, is_available, created_at, updated_at"

type ItemService struct {
	db *database.DB
}

func NewItemService(db *database.DB) *ItemService {
	return &ItemService{db: db}
}

type CreateItemParams struct {
	Title               string
	Description         string
	DetailedDescription string
	Price               decimal.Decimal
	GameType            string
	ImageURL            *string
	IsAvailable         *bool
}

// ItemPatch carries the mutable fields of a game item. Nil means "leave
// unchanged"; for the nullable image URL, ImageURLSet distinguishes an
// absent field from an explicit null.
type ItemPatch struct {
	Title               *string
	Description         *string
	DetailedDescription *string
	Price               *decimal.Decimal
	GameType            *string
	ImageURL            *string
	ImageURLSet         bool
	IsAvailable         *bool
}

func (s *ItemService) Create(ctx context.Context, params CreateItemParams) (*models.GameItem, error) {
	available := true
	if params.IsAvailable != nil {
		available = *params.IsAvailable
	}

	var item models.GameItem
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO game_items (title, description, detailed_description, price, game_type, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+itemColumns+`
	`, params.Title, params.Description, params.DetailedDescription, params.Price,
		params.GameType, params.ImageURL, available).Scan(
		&item.ID, &item.Title, &item.Description, &item.DetailedDescription,
		&item.Price, &item.GameType, &item.ImageURL, &item.IsAvailable,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create game item: %w", err)
	}
	return &item, nil
}

func (s *ItemService) GetAll(ctx context.Context) ([]models.GameItem, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM game_items WHERE is_available = TRUE
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (s *ItemService) GetByType(ctx context.Context, gameType string) ([]models.GameItem, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM game_items WHERE game_type = $1 AND is_available = TRUE
	`, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game items by type: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// GetByID resolves an item only if it exists and is available; a missing
// row and an unavailable row both come back as ErrItemNotFound.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*models.GameItem, error) {
	var item models.GameItem
	err := s.db.Pool.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM game_items WHERE id = $1 AND is_available = TRUE
	`, id).Scan(
		&item.ID, &item.Title, &item.Description, &item.DetailedDescription,
		&item.Price, &item.GameType, &item.ImageURL, &item.IsAvailable,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game item: %w", err)
	}
	return &item, nil
}

// Update writes only the fields present in the patch. updated_at always
// advances, even when the patch is empty.
func (s *ItemService) Update(ctx context.Context, id int64, patch ItemPatch) (*models.GameItem, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{}
	arg := 1

	appendSet := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, arg))
		args = append(args, value)
		arg++
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.DetailedDescription != nil {
		appendSet("detailed_description", *patch.DetailedDescription)
	}
	if patch.Price != nil {
		appendSet("price", *patch.Price)
	}
	if patch.GameType != nil {
		appendSet("game_type", *patch.GameType)
	}
	if patch.ImageURLSet {
		appendSet("image_url", patch.ImageURL)
	}
	if patch.IsAvailable != nil {
		appendSet("is_available", *patch.IsAvailable)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE game_items SET %s
		WHERE id = $%d
		RETURNING `+itemColumns,
		strings.Join(set, ", "), arg)

	var item models.GameItem
	err := s.db.Pool.QueryRow(ctx, query, args...).Scan(
		&item.ID, &item.Title, &item.Description, &item.DetailedDescription,
		&item.Price, &item.GameType, &item.ImageURL, &item.IsAvailable,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update game item: %w", err)
	}
	return &item, nil
}

func scanItems(rows pgx.Rows) ([]models.GameItem, error) {
	var items []models.GameItem
	for rows.Next() {
		var item models.GameItem
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.DetailedDescription,
			&item.Price, &item.GameType, &item.ImageURL, &item.IsAvailable,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game items: %w", err)
	}
	return items, nil
}
