package header_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/medlens/pkg/auth"
	"github.com/adrianliechti/medlens/pkg/auth/header"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	p, err := header.New()
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-User", "jane@example.com")

	ctx, err := p.Authenticate(context.Background(), r)
	require.NoError(t, err)

	require.Equal(t, "jane@example.com", ctx.Value(auth.UserContextKey))
	require.Equal(t, "jane@example.com", ctx.Value(auth.EmailContextKey))
}

func TestAuthenticateCustomHeaders(t *testing.T) {
	p, err := header.New(header.WithUserHeader("X-User"), header.WithEmailHeader("X-Email"))
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-User", "jane")

	ctx, err := p.Authenticate(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, "jane", ctx.Value(auth.UserContextKey))
	require.Nil(t, ctx.Value(auth.EmailContextKey))

	_, err = p.Authenticate(context.Background(), httptest.NewRequest("GET", "/", nil))
	require.Error(t, err)
}
