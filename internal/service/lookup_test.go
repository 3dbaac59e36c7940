package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stockpulse/stockpulse/internal/quote"
	"github.com/stockpulse/stockpulse/internal/storage"
)

// fakeFetcher resolves prices from a fixed map; unknown symbols return
// quote.ErrNotFound like the real client.
type fakeFetcher struct {
	mu     sync.Mutex
	prices map[string]float64
	calls  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, symbol string) (float64, error) {
	f.mu.Lock()
	f.calls = append(f.calls, symbol)
	f.mu.Unlock()
	p, ok := f.prices[symbol]
	if !ok {
		return 0, quote.ErrNotFound
	}
	return p, nil
}

// memLedger is an in-memory LikesRepository with real set semantics.
type memLedger struct {
	mu     sync.Mutex
	likers map[string]map[string]struct{}
	err    error
}

func newMemLedger() *memLedger {
	return &memLedger{likers: make(map[string]map[string]struct{})}
}

func (m *memLedger) EnsureStock(_ context.Context, symbol string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.likers[symbol]; !ok {
		m.likers[symbol] = make(map[string]struct{})
	}
	return nil
}

func (m *memLedger) RecordLike(_ context.Context, symbol, visitor string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.likers[symbol]; !ok {
		m.likers[symbol] = make(map[string]struct{})
	}
	if visitor != "" {
		m.likers[symbol][visitor] = struct{}{}
	}
	return len(m.likers[symbol]), nil
}

func (m *memLedger) LikeCount(_ context.Context, symbol string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return len(m.likers[symbol]), nil
}

var _ storage.LikesRepository = (*memLedger)(nil)

func newService(prices map[string]float64, ledger *memLedger) (*lookupService, *fakeFetcher) {
	f := &fakeFetcher{prices: prices}
	return &lookupService{quotes: f, likes: ledger}, f
}

func TestLookup_SingleSymbol(t *testing.T) {
	svc, fetcher := newService(map[string]float64{"GOOG": 153.42}, newMemLedger())

	views, err := svc.Lookup(context.Background(), []string{"goog"}, "visitor-a", false)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("len(views)=%d, want 1", len(views))
	}
	v := views[0]
	if v.Stock != "GOOG" {
		t.Fatalf("symbol not normalized: %q", v.Stock)
	}
	if v.Price == nil || *v.Price != 153.42 {
		t.Fatalf("unexpected price %v", v.Price)
	}
	if v.Likes != 0 {
		t.Fatalf("fresh ledger likes=%d, want 0", v.Likes)
	}
	if len(fetcher.calls) != 1 || fetcher.calls[0] != "GOOG" {
		t.Fatalf("upstream called with %v, want [GOOG]", fetcher.calls)
	}
}

func TestLookup_PriceNotFound(t *testing.T) {
	svc, _ := newService(map[string]float64{}, newMemLedger())

	views, err := svc.Lookup(context.Background(), []string{"NOPE"}, "", false)
	if err != nil {
		t.Fatalf("quote miss must not fail the lookup: %v", err)
	}
	if views[0].Price != nil {
		t.Fatalf("expected nil price, got %v", *views[0].Price)
	}
}

func TestLookup_LikeIdempotent(t *testing.T) {
	ledger := newMemLedger()
	svc, _ := newService(map[string]float64{"AMZN": 178.0}, ledger)
	ctx := context.Background()

	views, err := svc.Lookup(ctx, []string{"AMZN"}, "visitor-a", true)
	if err != nil || views[0].Likes != 1 {
		t.Fatalf("first like: views=%+v err=%v", views, err)
	}

	// Identical request again: count must not grow.
	views, err = svc.Lookup(ctx, []string{"AMZN"}, "visitor-a", true)
	if err != nil || views[0].Likes != 1 {
		t.Fatalf("repeat like: views=%+v err=%v", views, err)
	}

	// A different visitor still counts.
	views, err = svc.Lookup(ctx, []string{"AMZN"}, "visitor-b", true)
	if err != nil || views[0].Likes != 2 {
		t.Fatalf("second visitor: views=%+v err=%v", views, err)
	}
}

func TestLookup_EmptyVisitorNeverRecorded(t *testing.T) {
	ledger := newMemLedger()
	svc, _ := newService(map[string]float64{"AMZN": 178.0}, ledger)

	views, err := svc.Lookup(context.Background(), []string{"AMZN"}, "", true)
	if err != nil || views[0].Likes != 0 {
		t.Fatalf("views=%+v err=%v, want zero likes", views, err)
	}
}

func TestLookup_TwoSymbols_FaultIsolation(t *testing.T) {
	// Quote available for MSFT only; TSLA degrades to nil price.
	ledger := newMemLedger()
	svc, _ := newService(map[string]float64{"MSFT": 411.22}, ledger)

	views, err := svc.Lookup(context.Background(), []string{"MSFT", "TSLA"}, "visitor-a", false)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("len(views)=%d, want 2", len(views))
	}
	if views[0].Stock != "MSFT" || views[1].Stock != "TSLA" {
		t.Fatalf("order not preserved: %+v", views)
	}
	if views[0].Price == nil || *views[0].Price != 411.22 {
		t.Fatalf("MSFT price lost: %+v", views[0])
	}
	if views[1].Price != nil {
		t.Fatalf("TSLA price should be nil: %+v", views[1])
	}
}

func TestLookup_TwoSymbols_SameVisitorZeroSum(t *testing.T) {
	ledger := newMemLedger()
	svc, _ := newService(map[string]float64{"MSFT": 411.22, "TSLA": 250.1}, ledger)

	views, err := svc.Lookup(context.Background(), []string{"MSFT", "TSLA"}, "visitor-a", true)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if views[0].Likes != views[1].Likes {
		t.Fatalf("same visitor liked both, counts differ: %+v", views)
	}
}

func TestLookup_LedgerErrorFailsRequest(t *testing.T) {
	ledger := newMemLedger()
	ledger.err = errors.New("store unreachable")
	svc, _ := newService(map[string]float64{"GOOG": 153.42}, ledger)

	if _, err := svc.Lookup(context.Background(), []string{"GOOG"}, "visitor-a", true); err == nil {
		t.Fatalf("expected ledger error to escalate")
	}
	if _, err := svc.Lookup(context.Background(), []string{"GOOG", "MSFT"}, "", false); err == nil {
		t.Fatalf("expected ledger error to escalate for pairs too")
	}
}

func TestLookup_SymbolCount(t *testing.T) {
	svc, _ := newService(nil, newMemLedger())
	for _, symbols := range [][]string{nil, {}, {"A", "B", "C"}} {
		if _, err := svc.Lookup(context.Background(), symbols, "", false); !errors.Is(err, ErrSymbolCount) {
			t.Fatalf("symbols=%v err=%v, want ErrSymbolCount", symbols, err)
		}
	}
}

func TestLookup_NormalizationSharesRecord(t *testing.T) {
	ledger := newMemLedger()
	svc, _ := newService(map[string]float64{"GOOG": 153.42}, ledger)
	ctx := context.Background()

	if _, err := svc.Lookup(ctx, []string{"goog"}, "visitor-a", true); err != nil {
		t.Fatalf("like lowercase: %v", err)
	}
	views, err := svc.Lookup(ctx, []string{"GOOG"}, "visitor-z", false)
	if err != nil {
		t.Fatalf("read uppercase: %v", err)
	}
	if views[0].Likes != 1 {
		t.Fatalf("likes=%d, want 1 (goog and GOOG must share a record)", views[0].Likes)
	}
	if _, ok := ledger.likers["GOOG"]; !ok || len(ledger.likers) != 1 {
		t.Fatalf("ledger keys %v, want only GOOG", keys(ledger.likers))
	}
}

func keys(m map[string]map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// slowFetcher blocks until both lookups are in flight, proving the
// two-symbol sub-flows are issued concurrently rather than sequentially.
type slowFetcher struct {
	started chan struct{}
	release chan struct{}
}

func (s *slowFetcher) Fetch(ctx context.Context, symbol string) (float64, error) {
	s.started <- struct{}{}
	select {
	case <-s.release:
		return 1.0, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func TestLookup_TwoSymbols_Concurrent(t *testing.T) {
	f := &slowFetcher{started: make(chan struct{}, 2), release: make(chan struct{})}
	svc := &lookupService{quotes: f, likes: newMemLedger()}

	done := make(chan error, 1)
	go func() {
		_, err := svc.Lookup(context.Background(), []string{"AAA", "BBB"}, "", false)
		done <- err
	}()

	// Both fetches must start before either completes.
	<-f.started
	<-f.started
	close(f.release)

	if err := <-done; err != nil {
		t.Fatalf("lookup: %v", err)
	}
}

// Guard against accidental dependence on input casing in call accounting.
func TestLookup_TrimsWhitespace(t *testing.T) {
	svc, fetcher := newService(map[string]float64{"IBM": 170.0}, newMemLedger())
	views, err := svc.Lookup(context.Background(), []string{"  ibm "}, "", false)
	if err != nil || views[0].Stock != "IBM" {
		t.Fatalf("views=%+v err=%v", views, err)
	}
	if fetcher.calls[0] != "IBM" {
		t.Fatalf("upstream saw %q", fetcher.calls[0])
	}
	if !strings.EqualFold(views[0].Stock, "ibm") {
		t.Fatalf("unexpected symbol %q", views[0].Stock)
	}
}
