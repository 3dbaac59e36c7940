package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/stockpulse/stockpulse/internal/domain/models"
	"github.com/stockpulse/stockpulse/internal/logger"
	"github.com/stockpulse/stockpulse/internal/quote"
	"github.com/stockpulse/stockpulse/internal/storage"
)

// ErrSymbolCount is returned when a lookup is requested for fewer than
// one or more than two symbols. It is a client input error.
var ErrSymbolCount = errors.New("lookup requires one or two stock symbols")

// LookupService orchestrates a stock lookup: for each requested symbol it
// fetches the live quote, records or reads the like count, and merges the
// results. Quote failures degrade to a nil price; ledger failures fail
// the whole lookup so a stale like count is never reported.
type LookupService interface {
	Lookup(ctx context.Context, symbols []string, visitor string, like bool) ([]models.StockView, error)
}

type lookupService struct {
	quotes quote.Fetcher
	likes  storage.LikesRepository
}

func NewLookupService(quotes quote.Fetcher, likes storage.LikesRepository) LookupService {
	return &lookupService{quotes: quotes, likes: likes}
}

// Lookup runs the per-symbol sub-flow for one or two symbols. For a pair
// the sub-flows run concurrently, so total latency is bounded by the
// slower of the two round trips. A quote failure on one symbol never
// cancels the other; only a ledger error aborts the lookup.
func (s *lookupService) Lookup(ctx context.Context, symbols []string, visitor string, like bool) ([]models.StockView, error) {
	if len(symbols) < 1 || len(symbols) > 2 {
		return nil, ErrSymbolCount
	}

	views := make([]models.StockView, len(symbols))
	g, gctx := errgroup.WithContext(ctx)
	for i, sym := range symbols {
		i, sym := i, sym
		g.Go(func() error {
			v, err := s.lookupOne(gctx, sym, visitor, like)
			if err != nil {
				return err
			}
			views[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return views, nil
}

// lookupOne is the per-symbol sub-flow: normalize, fetch quote, then
// record or read the like count. The returned error is always a ledger
// error; every quote failure is absorbed into a nil price.
func (s *lookupService) lookupOne(ctx context.Context, symbol string, visitor string, like bool) (models.StockView, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	view := models.StockView{Stock: sym}

	price, err := s.quotes.Fetch(ctx, sym)
	switch {
	case err == nil:
		view.Price = &price
	case errors.Is(err, quote.ErrNotFound):
		// no price available; reported, not thrown
	default:
		logger.L().Warn().Err(err).Str("symbol", sym).Msg("quote fetch degraded")
	}

	var count int
	if like {
		count, err = s.likes.RecordLike(ctx, sym, visitor)
	} else {
		count, err = s.likes.LikeCount(ctx, sym)
	}
	if err != nil {
		return models.StockView{}, err
	}
	view.Likes = count

	return view, nil
}
