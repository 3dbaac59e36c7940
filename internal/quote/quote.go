// Package quote fetches the latest price for a ticker symbol from the
// upstream quote proxy. The upstream is treated as untrusted and
// unreliable: every failure mode degrades to ErrNotFound so callers can
// report "no price available" instead of failing the whole request.
package quote

import (
	"context"
	"errors"
)

// ErrNotFound signals that no price could be resolved for a symbol:
// unknown ticker, upstream error, malformed payload, or timeout.
var ErrNotFound = errors.New("quote: no price available")

// Fetcher resolves the latest price for a ticker symbol.
// Implementations must uppercase the symbol before calling upstream
// and must return ErrNotFound for any unresolvable symbol.
type Fetcher interface {
	Fetch(ctx context.Context, symbol string) (float64, error)
}
