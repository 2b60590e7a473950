// Package session keeps the session token issued by the auth API.
//
// The token is opaque to the client. It is written once after a
// successful login, read on every banner render and removed only by an
// explicit logout. Implementations are safe for concurrent use.
package session

import (
	"context"
	"errors"
	"time"
)

// TokenKey is the fixed name the token is stored under.
const TokenKey = "token"

// ErrNoToken is returned by Get when no token (or an empty one) is stored.
var ErrNoToken = errors.New("no session token")

type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Timestamped is implemented by stores that record when the token was
// saved. SavedAt returns ErrNoToken whenever Get would.
type Timestamped interface {
	SavedAt(ctx context.Context) (time.Time, error)
}
