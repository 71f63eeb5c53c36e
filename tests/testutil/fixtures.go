package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/minsu/gamestore-api/internal/database"
	"github.com/minsu/gamestore-api/internal/models"
	"github.com/minsu/gamestore-api/internal/oauth"
	"github.com/shopspring/decimal"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateUser creates a test user with default values
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		Email:    fmt.Sprintf("user%d@example.com", f.counter),
		Name:     fmt.Sprintf("Test User %d", f.counter),
		Provider: models.ProviderGoogle,
		OAuthID:  fmt.Sprintf("oauth-%d", f.counter),
	}

	for _, opt := range opts {
		opt(user)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, avatar_url, oauth_provider, oauth_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, name, avatar_url, oauth_provider, oauth_id, created_at
	`, user.Email, user.Name, user.AvatarURL, user.Provider, user.OAuthID).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.Provider, &user.OAuthID, &user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(*models.User)

// WithProvider sets the user's OAuth identity
func WithProvider(provider, oauthID string) UserOption {
	return func(u *models.User) {
		u.Provider = provider
		u.OAuthID = oauthID
	}
}

// CreateItem creates a test game item with default values
func (f *Fixtures) CreateItem(t *testing.T, opts ...ItemOption) *models.GameItem {
	t.Helper()
	f.counter++

	item := &models.GameItem{
		Title:               fmt.Sprintf("Test Item %d", f.counter),
		Description:         fmt.Sprintf("Description %d", f.counter),
		DetailedDescription: fmt.Sprintf("Detailed description %d", f.counter),
		Price:               decimal.RequireFromString("9.99"),
		GameType:            models.GameTypeGostop,
		IsAvailable:         true,
	}

	for _, opt := range opts {
		opt(item)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO game_items (title, description, detailed_description, price, game_type, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, description, detailed_description, price, game_type, image_url, is_available, created_at, updated_at
	`, item.Title, item.Description, item.DetailedDescription, item.Price, item.GameType, item.ImageURL, item.IsAvailable).Scan(
		&item.ID, &item.Title, &item.Description, &item.DetailedDescription,
		&item.Price, &item.GameType, &item.ImageURL, &item.IsAvailable,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create game item: %v", err)
	}

	return item
}

// ItemOption configures a test game item
type ItemOption func(*models.GameItem)

// WithTitle sets the item's title
func WithTitle(title string) ItemOption {
	return func(i *models.GameItem) {
		i.Title = title
	}
}

// WithPrice sets the item's price from a decimal string
func WithPrice(price string) ItemOption {
	return func(i *models.GameItem) {
		i.Price = decimal.RequireFromString(price)
	}
}

// WithGameType sets the item's game type
func WithGameType(gameType string) ItemOption {
	return func(i *models.GameItem) {
		i.GameType = gameType
	}
}

// WithImageURL sets the item's image URL
func WithImageURL(url string) ItemOption {
	return func(i *models.GameItem) {
		i.ImageURL = &url
	}
}

// Unavailable marks the item as not available for purchase
func Unavailable() ItemOption {
	return func(i *models.GameItem) {
		i.IsAvailable = false
	}
}

// CreatePurchase creates a test purchase with default values
func (f *Fixtures) CreatePurchase(t *testing.T, user *models.User, item *models.GameItem, opts ...PurchaseOption) *models.Purchase {
	t.Helper()

	purchase := &models.Purchase{
		UserID:    user.ID,
		ItemID:    item.ID,
		PricePaid: item.Price,
		Status:    models.PurchaseStatusPending,
	}

	for _, opt := range opts {
		opt(purchase)
	}

	ctx := context.Background()
	var err error
	if purchase.PurchaseDate.IsZero() {
		err = f.db.Pool.QueryRow(ctx, `
			INSERT INTO purchases (user_id, item_id, price_paid, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, user_id, item_id, price_paid, purchase_date, status
		`, purchase.UserID, purchase.ItemID, purchase.PricePaid, purchase.Status).Scan(
			&purchase.ID, &purchase.UserID, &purchase.ItemID,
			&purchase.PricePaid, &purchase.PurchaseDate, &purchase.Status,
		)
	} else {
		err = f.db.Pool.QueryRow(ctx, `
			INSERT INTO purchases (user_id, item_id, price_paid, purchase_date, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, user_id, item_id, price_paid, purchase_date, status
		`, purchase.UserID, purchase.ItemID, purchase.PricePaid, purchase.PurchaseDate, purchase.Status).Scan(
			&purchase.ID, &purchase.UserID, &purchase.ItemID,
			&purchase.PricePaid, &purchase.PurchaseDate, &purchase.Status,
		)
	}
	if err != nil {
		t.Fatalf("failed to create purchase: %v", err)
	}

	return purchase
}

// PurchaseOption configures a test purchase
type PurchaseOption func(*models.Purchase)

// WithPricePaid sets the price paid from a decimal string
func WithPricePaid(price string) PurchaseOption {
	return func(p *models.Purchase) {
		p.PricePaid = decimal.RequireFromString(price)
	}
}

// WithStatus sets the purchase status
func WithStatus(status string) PurchaseOption {
	return func(p *models.Purchase) {
		p.Status = status
	}
}

// WithPurchaseDate sets an explicit purchase date
func WithPurchaseDate(at time.Time) PurchaseOption {
	return func(p *models.Purchase) {
		p.PurchaseDate = at
	}
}

// CreateRefreshToken creates a test refresh token
func (f *Fixtures) CreateRefreshToken(t *testing.T, userID uuid.UUID, tokenHash string, expiresAt time.Time) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`, userID, tokenHash, expiresAt)
	if err != nil {
		t.Fatalf("failed to create refresh token: %v", err)
	}
}

// OAuthUserInfo creates test OAuth user info
func OAuthUserInfo(email, name, provider, id string) *oauth.UserInfo {
	return &oauth.UserInfo{
		Email:     email,
		Name:      name,
		AvatarURL: "https://example.com/avatar.png",
		ID:        id,
		Provider:  provider,
	}
}
