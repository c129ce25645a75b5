package fetch

import (
	"fmt"
	"net/http"
	"os"

	resty "gopkg.in/resty.v1"

	"github.com/PowerX-NOT/gmaps-script/config"
)

// Variant selects which configured endpoint to hit.
type Variant string

const (
	// Place is the place-preview endpoint; its payload carries the bus
	// schedule structures.
	Place Variant = "place"

	// Lines is the transit-lines endpoint; its payload carries the timed
	// stop sequence.
	Lines Variant = "lines"
)

// Client issues browser-mimicking GETs against the transit endpoints.
type Client struct {
	rc  *resty.Client
	cfg config.FetchConfig
}

// New builds a client from fetch configuration. The session cookie is read
// from the environment per request, not captured here.
func New(cfg config.FetchConfig) *Client {
	return &Client{rc: resty.New(), cfg: cfg}
}

func (c *Client) endpoint(v Variant) (config.EndpointConfig, error) {
	switch v {
	case Place:
		return c.cfg.Place, nil
	case Lines:
		return c.cfg.Lines, nil
	}
	return config.EndpointConfig{}, fmt.Errorf("unknown endpoint variant %q", v)
}

// Fetch GETs the endpoint for v and returns the raw response body. Shared
// headers go on first, then per-endpoint overrides, then the cookie.
func (c *Client) Fetch(v Variant) ([]byte, error) {
	ep, err := c.endpoint(v)
	if err != nil {
		return nil, err
	}
	if ep.URL == "" {
		return nil, fmt.Errorf("no URL configured for %s endpoint", v)
	}
	cookie := os.Getenv(c.cfg.CookieEnv)
	if cookie == "" {
		return nil, fmt.Errorf("session cookie missing: set %s", c.cfg.CookieEnv)
	}

	req := c.rc.R().
		SetHeader("user-agent", c.cfg.UserAgent).
		SetHeaders(c.cfg.Headers).
		SetHeaders(ep.Headers).
		SetHeader("cookie", cookie)

	resp, err := req.Get(ep.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", v, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode(), ep.URL)
	}
	return resp.Body(), nil
}

// FetchToFile saves the raw response verbatim to the endpoint's configured
// output file and returns the path written.
func (c *Client) FetchToFile(v Variant) (string, error) {
	ep, err := c.endpoint(v)
	if err != nil {
		return "", err
	}
	body, err := c.Fetch(v)
	if err != nil {
		return "", err
	}

	out := ep.Output
	if out == "" {
		out = string(v) + "_response.json"
	}
	if err := os.WriteFile(out, body, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", out, err)
	}
	return out, nil
}
