// Package auth provides password authentication and JWT session tokens.
package auth

import (
	"context"

	"settleup/internal/models"
)

// Authenticator defines the interface for authentication implementations,
// so the service layer does not care whether credentials are passwords,
// OAuth tokens, or something else.
type Authenticator interface {
	// Register creates a new user account. The credential format depends on
	// the implementation.
	Register(ctx context.Context, username, email, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if
	// successful. The identifier may be a username or an email address.
	Authenticate(ctx context.Context, identifier, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's
	// minimum requirements.
	ValidateCredential(credential string) error
}
