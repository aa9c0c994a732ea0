package header

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/adrianliechti/medlens/pkg/auth"
)

// Provider trusts identity headers set by an authenticating reverse proxy
// such as oauth2-proxy.
type Provider struct {
	userHeaders  []string
	emailHeaders []string
}

type Option func(*Provider)

func New(opts ...Option) (*Provider, error) {
	p := &Provider{}

	for _, opt := range opts {
		opt(p)
	}

	if len(p.userHeaders) == 0 {
		p.userHeaders = []string{"X-Forwarded-User", "X-Auth-Request-User"}
	}

	if len(p.emailHeaders) == 0 {
		p.emailHeaders = []string{"X-Forwarded-Email", "X-Auth-Request-Email"}
	}

	return p, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	user := firstHeader(r, p.userHeaders)
	email := firstHeader(r, p.emailHeaders)

	if user == "" && email == "" {
		return ctx, errors.New("no user information found in headers")
	}

	if email == "" && isEmail(user) {
		email = user
	}

	if user != "" {
		ctx = context.WithValue(ctx, auth.UserContextKey, user)
	}

	if email != "" {
		ctx = context.WithValue(ctx, auth.EmailContextKey, email)
	}

	return ctx, nil
}

func firstHeader(r *http.Request, names []string) string {
	for _, name := range names {
		if val := strings.TrimSpace(r.Header.Get(name)); val != "" {
			return val
		}
	}

	return ""
}

func isEmail(val string) bool {
	addr, err := mail.ParseAddress(val)

	return err == nil && addr.Address == val
}
