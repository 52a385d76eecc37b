package api

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// TokenSource yields the bearer token attached to outgoing requests. Tokens
// are fetched per request composition and never cached by the client, so a
// rotated session takes effect on the next call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource wrapping a fixed token string.
type StaticToken string

func (t StaticToken) Token(_ context.Context) (string, error) {
	return string(t), nil
}

// EnvToken reads the token from an environment variable on every request.
type EnvToken string

func (t EnvToken) Token(_ context.Context) (string, error) {
	return os.Getenv(string(t)), nil
}

// FileToken reads the token from a file on every request, so an external
// auth refresher can rotate it in place.
type FileToken string

func (t FileToken) Token(_ context.Context) (string, error) {
	data, err := os.ReadFile(string(t))
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
