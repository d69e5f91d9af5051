package services

import (
	"context"
	"time"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues the application's own access tokens once a user is authenticated.
type TokenSvcFacade interface {
	// GenerateAccessToken returns a signed JWT for user and its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthHandlerSvcFacade covers Google sign-in. The browser client drives the redirect;
// the backend only builds the consent URL and turns the returned code into a verified identity.
type GoogleOAuthHandlerSvcFacade interface {
	GenerateStateString(ctx context.Context) (string, error)
	GetGoogleLoginURL(ctx context.Context, state string) string
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken checks the ID token's signature and audience against the configured client ID.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
