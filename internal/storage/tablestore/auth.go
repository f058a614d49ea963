package tablestore

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"danube_tours/internal/domain"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// SignIn exchanges email+password for a session token. Bad credentials
// surface as ErrUnauthorized; the store answers 400 for them, so that
// status is folded in here.
func (c *Client) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	q := url.Values{"grant_type": {"password"}}
	body := map[string]string{"email": email, "password": password}
	var tr tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/token", "auth", q, body, "", &tr)
	if err != nil {
		if isBadRequest(err) {
			return domain.Session{}, domain.ErrUnauthorized
		}
		return domain.Session{}, err
	}
	if tr.AccessToken == "" {
		return domain.Session{}, domain.ErrUnauthorized
	}
	s := domain.Session{AccessToken: tr.AccessToken}
	if tr.ExpiresIn > 0 {
		s.ExpiresAt = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return s, nil
}

// SignOut revokes the session server-side. A dead token is not an
// error worth reporting; the local session is gone either way.
func (c *Client) SignOut(ctx context.Context, s domain.Session) error {
	if s.AccessToken == "" {
		return nil
	}
	err := c.do(ctx, http.MethodPost, "/auth/v1/logout", "auth", nil, nil, s.AccessToken, nil)
	if errors.Is(err, domain.ErrUnauthorized) {
		return nil
	}
	return err
}

func isBadRequest(err error) bool {
	if err == nil {
		return false
	}
	// c.do formats unexpected statuses; 400 carries "status 400" text
	return errors.Is(err, domain.ErrUnauthorized) || strings.Contains(err.Error(), "status 400")
}
