package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"pokeroster/internal/domain"
)

// DefaultBaseURL is the public PokeAPI endpoint.
const DefaultBaseURL = "https://pokeapi.co"

// HTTP is a CatalogClient talking JSON over HTTP to a PokeAPI-compatible server.
type HTTP struct {
	Base    string
	HTTP    *http.Client
	Timeout time.Duration // per request; zero means rely on ctx only
	Log     *zap.Logger
}

// NewHTTP returns a client for base using httpClient (http.DefaultClient if nil).
func NewHTTP(base string, httpClient *http.Client, timeout time.Duration, log *zap.Logger) *HTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTP{
		Base:    strings.TrimRight(base, "/"),
		HTTP:    httpClient,
		Timeout: timeout,
		Log:     log,
	}
}

// Lookup fetches the species called name.
func (c *HTTP) Lookup(ctx context.Context, name string) (domain.CatalogEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return domain.CatalogEntry{}, fmt.Errorf("%w: species name is blank", domain.ErrInvalidEntry)
	}

	var doc Document
	if err := c.getJSON(ctx, "/api/v2/pokemon/"+url.PathEscape(name), &doc); err != nil {
		return domain.CatalogEntry{}, err
	}
	return doc.Entry(), nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	u := c.Base + path
	fail := func(status int, err error) error {
		return &domain.DataSourceError{Method: http.MethodGet, URL: u, Status: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Warn("catalog request failed", zap.String("url", u), zap.Error(err))
		return fail(0, err)
	}
	defer resp.Body.Close()

	c.Log.Debug("catalog request",
		zap.String("url", u),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fail(resp.StatusCode, domain.ErrSpeciesNotFound)
	case resp.StatusCode/100 != 2:
		return fail(resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

var _ domain.CatalogClient = (*HTTP)(nil)
