package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/minsu/gamestore-api/internal/models"
	"github.com/minsu/gamestore-api/internal/oauth"
	"github.com/minsu/gamestore-api/internal/services"
	"github.com/shopspring/decimal"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	Create(ctx context.Context, params services.CreateUserParams) (*models.User, error)
	FindByOAuth(ctx context.Context, provider, oauthID string) (*models.User, error)
	FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ItemServiceInterface defines the methods used by handlers from ItemService
type ItemServiceInterface interface {
	Create(ctx context.Context, params services.CreateItemParams) (*models.GameItem, error)
	GetAll(ctx context.Context) ([]models.GameItem, error)
	GetByType(ctx context.Context, gameType string) ([]models.GameItem, error)
	GetByID(ctx context.Context, id int64) (*models.GameItem, error)
	Update(ctx context.Context, id int64, patch services.ItemPatch) (*models.GameItem, error)
}

// PurchaseServiceInterface defines the methods used by handlers from PurchaseService
type PurchaseServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, itemID int64, pricePaid decimal.Decimal) (*models.Purchase, error)
	GetUserPurchases(ctx context.Context, userID uuid.UUID) ([]models.Purchase, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Purchase, error)
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	GenerateTokenPair(userID uuid.UUID, email string) (*services.TokenPair, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
	RefreshExpiry() time.Duration
}
