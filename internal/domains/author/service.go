package author

import "context"

// Service defines the registration and login flows
type Service interface {
	// Register validates the request, rejects taken emails and stores the
	// author with a hashed password.
	// Errors: validation errors, EmailTaken conflict
	Register(ctx context.Context, req RegisterRequest) (*Author, error)

	// Login checks the credentials and issues a token whose subject is the
	// author id.
	// Errors: validation errors, ErrInvalidCredentials
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

// TokenIssuer signs login tokens; implemented by pkg/jwt.Manager
type TokenIssuer interface {
	GenerateToken(authorID string) (string, error)
}
