package client

import (
	"context"

	"github.com/dmitrijs2005/authpages/internal/client/models"
)

// API paths relative to the configured base URL.
const (
	PathAuthenticate = "/api/authenticate"
	PathLogin        = "/api/login"
	PathRegister     = "/api/register"
)

// RequestIDHeader names the correlation header sent with every request.
const RequestIDHeader = "X-Request-ID"

type Client interface {
	// Authenticate checks token and returns the user it belongs to.
	Authenticate(ctx context.Context, token string) (*models.UserInfo, error)
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, req models.LoginRequest) (string, error)
	// Register creates a new account.
	Register(ctx context.Context, req models.RegisterRequest) error
}
