package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stockpulse/stockpulse/internal/logger"
)

const defaultTimeout = 5 * time.Second

// Client fetches quotes over HTTP from a freeCodeCamp-style stock proxy
// (GET {base}/{SYMBOL}/quote returning a JSON body with "latestPrice").
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// quotePayload is the subset of the upstream response we read.
// latestPrice is a pointer so an absent field is distinguishable from 0.
type quotePayload struct {
	Symbol      string   `json:"symbol"`
	LatestPrice *float64 `json:"latestPrice"`
}

// NewClient builds a Client for the given base URL with a bounded
// per-request timeout. A timeout of 0 falls back to 5s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   3 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout, Transport: transport},
		timeout: timeout,
	}
}

// Fetch resolves the latest price for symbol. Single attempt, no retries.
//
// Any upstream failure (transport error, timeout, non-2xx status,
// unparsable body, missing latestPrice field) is mapped to ErrNotFound;
// the caller decides whether that degrades one symbol or the request.
func (c *Client) Fetch(ctx context.Context, symbol string) (float64, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if sym == "" {
		return 0, ErrNotFound
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/%s/quote", c.baseURL, url.PathEscape(sym))
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("quote: build request for %s: %w", sym, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.L().Warn().Err(err).Str("symbol", sym).Msg("quote fetch failed")
		return 0, ErrNotFound
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.L().Warn().Int("status", resp.StatusCode).Str("symbol", sym).Msg("quote upstream non-success")
		return 0, ErrNotFound
	}

	var payload quotePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.L().Warn().Err(err).Str("symbol", sym).Msg("quote payload unparsable")
		return 0, ErrNotFound
	}
	if payload.LatestPrice == nil {
		// The proxy answers 200 with a bare string body for unknown symbols.
		return 0, ErrNotFound
	}

	return *payload.LatestPrice, nil
}

var _ Fetcher = (*Client)(nil)
