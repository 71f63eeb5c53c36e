package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/minsu/gamestore-api/internal/database"
	"github.com/minsu/gamestore-api/internal/models"
	"github.com/minsu/gamestore-api/internal/oauth"
)

const userColumns = "id, email, name, avatar_url, oauth_provider, oauth_id, created_at"

type UserService struct {
	db *database.DB
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserParams struct {
	Email     string
	Name      string
	AvatarURL *string
	Provider  string
	OAuthID   string
}

func (s *UserService) Create(ctx context.Context, params CreateUserParams) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, avatar_url, oauth_provider, oauth_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns+`
	`, params.Email, params.Name, params.AvatarURL, params.Provider, params.OAuthID).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.Provider, &user.OAuthID, &user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// FindByOAuth locates a user by provider and provider-assigned subject id.
// The pair is not unique at the schema level; if multiple rows match, the
// first one wins.
func (s *UserService) FindByOAuth(ctx context.Context, provider, oauthID string) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE oauth_provider = $1 AND oauth_id = $2
		LIMIT 1
	`, provider, oauthID).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.Provider, &user.OAuthID, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by oauth: %w", err)
	}
	return &user, nil
}

func (s *UserService) FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error) {
	user, err := s.FindByOAuth(ctx, info.Provider, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	return s.Create(ctx, CreateUserParams{
		Email:     info.Email,
		Name:      info.Name,
		AvatarURL: nullableString(info.AvatarURL),
		Provider:  info.Provider,
		OAuthID:   info.ID,
	})
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users WHERE id = $1
	`, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.Provider, &user.OAuthID, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
