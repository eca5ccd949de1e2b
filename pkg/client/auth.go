package client

import (
	"context"
	"errors"
	"os"
)

// ErrUnauthenticated is returned when no access token is available.
var ErrUnauthenticated = errors.New("unauthenticated")

// Authenticator supplies bearer tokens. Refresh is called once after the
// API rejects a token with 401.
type Authenticator interface {
	Token(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
}

// StaticToken is a fixed token. Refresh returns the same token.
type StaticToken string

// Token implements Authenticator.
func (s StaticToken) Token(context.Context) (string, error) {
	if s == "" {
		return "", ErrUnauthenticated
	}
	return string(s), nil
}

// Refresh implements Authenticator.
func (s StaticToken) Refresh(ctx context.Context) (string, error) {
	return s.Token(ctx)
}

// EnvToken reads the token from an environment variable on every call, so
// a refreshed value is picked up without restarting.
type EnvToken struct {
	Var string
}

// DefaultTokenVar is the variable EnvToken reads when Var is empty.
const DefaultTokenVar = "FLOWHIGH_TOKEN"

// Token implements Authenticator.
func (e EnvToken) Token(context.Context) (string, error) {
	name := e.Var
	if name == "" {
		name = DefaultTokenVar
	}
	v := os.Getenv(name)
	if v == "" {
		return "", ErrUnauthenticated
	}
	return v, nil
}

// Refresh implements Authenticator.
func (e EnvToken) Refresh(ctx context.Context) (string, error) {
	return e.Token(ctx)
}
