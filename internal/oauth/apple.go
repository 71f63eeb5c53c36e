package oauth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/minsu/gamestore-api/internal/config"
	"golang.org/x/oauth2"
)

var appleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://appleid.apple.com/auth/authorize",
	TokenURL: "https://appleid.apple.com/auth/token",
}

type AppleProvider struct {
	config *oauth2.Config
}

func NewAppleProvider(cfg config.OAuthConfig) *AppleProvider {
	return &AppleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"name", "email"},
			Endpoint:     appleEndpoint,
		},
	}
}

func (p *AppleProvider) Name() string {
	return "apple"
}

func (p *AppleProvider) GetConsentURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.SetAuthURLParam("response_mode", "form_post"))
}

func (p *AppleProvider) ExchangeCode(ctx context.Context, code string) (*UserInfo, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return nil, fmt.Errorf("apple token response missing id_token")
	}

	// The id_token arrives directly from Apple's token endpoint over TLS,
	// so its claims are read without a JWKS round-trip.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse id_token: %w", err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("id_token missing subject")
	}

	email, _ := claims["email"].(string)

	// Apple only sends the user's name on the very first authorization,
	// via a separate form field the token endpoint does not echo back.
	// Fall back to the mailbox name so the account is never nameless.
	name := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		name = email[:i]
	}

	return &UserInfo{
		Email:    email,
		Name:     name,
		ID:       sub,
		Provider: "apple",
	}, nil
}
