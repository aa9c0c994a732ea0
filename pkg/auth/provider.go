package auth

import (
	"context"
	"net/http"
)

type contextKey string

const (
	UserContextKey  contextKey = "auth.user"
	EmailContextKey contextKey = "auth.email"
)

type Provider interface {
	Authenticate(ctx context.Context, r *http.Request) (context.Context, error)
}

// Authenticate tries every provider in order and returns the context of the
// first one that accepts the request. Without providers every request passes.
func Authenticate(ctx context.Context, r *http.Request, providers ...Provider) (context.Context, error) {
	if len(providers) == 0 {
		return ctx, nil
	}

	var result error

	for _, p := range providers {
		authCtx, err := p.Authenticate(ctx, r)

		if err == nil {
			return authCtx, nil
		}

		result = err
	}

	return ctx, result
}
