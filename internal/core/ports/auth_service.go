package ports

import "context"

// AuthService exchanges credentials for a bearer token.
type AuthService interface {
	// Login returns the encoded JWT access token.
	Login(ctx context.Context, email, password string) (string, error)
}
