package oidc

import (
	"context"
	"net/http"

	"github.com/adrianliechti/medlens/pkg/auth"

	"github.com/coreos/go-oidc/v3/oidc"
)

type Provider struct {
	verifier *oidc.IDTokenVerifier
}

// New discovers the issuer's keys. Tokens are checked against audience
// unless it is empty.
func New(ctx context.Context, issuer, audience string) (*Provider, error) {
	provider, err := oidc.NewProvider(ctx, issuer)

	if err != nil {
		return nil, err
	}

	verifier := provider.Verifier(&oidc.Config{
		ClientID: audience,

		SkipClientIDCheck: audience == "",
	})

	return &Provider{
		verifier: verifier,
	}, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	token, err := auth.BearerToken(r)

	if err != nil {
		return ctx, err
	}

	idtoken, err := p.verifier.Verify(ctx, token)

	if err != nil {
		return ctx, err
	}

	var claims struct {
		Subject string `json:"sub"`
		Email   string `json:"email"`
	}

	if err := idtoken.Claims(&claims); err != nil {
		return ctx, err
	}

	ctx = context.WithValue(ctx, auth.UserContextKey, claims.Subject)

	if claims.Email != "" {
		ctx = context.WithValue(ctx, auth.EmailContextKey, claims.Email)
	}

	return ctx, nil
}
