package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported OAuth providers
const (
	ProviderGoogle = "google"
	ProviderApple  = "apple"
)

// ValidProvider reports whether p is one of the supported OAuth providers.
func ValidProvider(p string) bool {
	return p == ProviderGoogle || p == ProviderApple
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Provider  string    `json:"oauth_provider"`
	OAuthID   string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
