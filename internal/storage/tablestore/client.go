package tablestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"danube_tours/internal/adapters/observability"
	"danube_tours/internal/domain"
)

// Client talks to the hosted table store: row CRUD under /rest/v1 and
// password auth under /auth/v1. One attempt per call; callers log and
// continue on failure, so no retry policy lives here.
type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("store URL is required")
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// do performs one request. bearer defaults to the api key when empty;
// protected tables pass a session token instead. endpoint is the
// metrics label (table or auth op).
func (c *Client) do(ctx context.Context, method, path, endpoint string, query url.Values, body any, bearer string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	if bearer == "" {
		bearer = c.key
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost || method == http.MethodPatch {
		// have mutations echo the stored row back
		req.Header.Set("Prefer", "return=representation")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("tablestore", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("tablestore", endpoint, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNoContent:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound, http.StatusNotAcceptable:
		return domain.ErrNotFound
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("tablestore %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(b)))
	}
}

// ---- row-level helpers ----

type row = map[string]any

func (c *Client) selectRows(ctx context.Context, table string, query url.Values, bearer string) ([]row, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("select", "*")
	var out []row
	if err := c.do(ctx, http.MethodGet, "/rest/v1/"+table, table, query, nil, bearer, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) insertRow(ctx context.Context, table string, body row, bearer string) (row, error) {
	var out []row
	if err := c.do(ctx, http.MethodPost, "/rest/v1/"+table, table, nil, body, bearer, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out[0], nil
}

func (c *Client) updateRows(ctx context.Context, table string, filter url.Values, body row, bearer string) (row, error) {
	var out []row
	if err := c.do(ctx, http.MethodPatch, "/rest/v1/"+table, table, filter, body, bearer, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out[0], nil
}

func (c *Client) deleteRows(ctx context.Context, table string, filter url.Values, bearer string) error {
	return c.do(ctx, http.MethodDelete, "/rest/v1/"+table, table, filter, nil, bearer, nil)
}

func idFilter(id string) url.Values {
	return url.Values{"id": {"eq." + id}}
}
