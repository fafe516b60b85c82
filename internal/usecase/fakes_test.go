package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"FinPlan/internal/domain/models"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type fakeQuotes struct {
	mu     sync.Mutex
	quotes map[string]models.Quote
	errs   map[string]error
	calls  atomic.Int32
}

func newFakeQuotes() *fakeQuotes {
	return &fakeQuotes{quotes: map[string]models.Quote{}, errs: map[string]error{}}
}

func (f *fakeQuotes) Name() string { return "fakequotes" }

func (f *fakeQuotes) set(sym string, price, changePct float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quotes[sym] = models.Quote{Symbol: sym, Price: price, ChangePercent: changePct, Origin: models.OriginLive}
	delete(f.errs, sym)
}

func (f *fakeQuotes) fail(sym string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[sym] = err
}

func (f *fakeQuotes) FetchQuote(_ context.Context, sym string) (models.Quote, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.errs[sym]; ok {
		return models.Quote{}, err
	}
	if q, ok := f.quotes[sym]; ok {
		return q, nil
	}
	return models.Quote{}, models.ErrNoData
}

type fakeForex struct {
	tables map[string]models.RateTable
	err    error
	calls  atomic.Int32
}

func (f *fakeForex) Name() string { return "fakeforex" }

func (f *fakeForex) FetchRates(_ context.Context, base string) (models.RateTable, error) {
	f.calls.Add(1)
	if f.err != nil {
		return models.RateTable{}, f.err
	}
	if t, ok := f.tables[base]; ok {
		return t, nil
	}
	return models.RateTable{}, models.ErrNoData
}

type fakeInflation struct {
	rec   models.InflationRecord
	err   error
	calls atomic.Int32
}

func (f *fakeInflation) Name() string { return "fakeinflation" }

func (f *fakeInflation) FetchInflation(_ context.Context, cc string) (models.InflationRecord, error) {
	f.calls.Add(1)
	if f.err != nil {
		return models.InflationRecord{}, f.err
	}
	r := f.rec
	r.Country = cc
	return r, nil
}

type fakeSentiment struct {
	idx   models.SentimentIndex
	err   error
	calls atomic.Int32
}

func (f *fakeSentiment) Name() string { return "fakesentiment" }

func (f *fakeSentiment) FetchSentiment(context.Context) (models.SentimentIndex, error) {
	f.calls.Add(1)
	if f.err != nil {
		return models.SentimentIndex{}, f.err
	}
	return f.idx, nil
}

// gatedQuotes holds its first FetchQuote until release is closed and reports
// the context state it saw at that point.
type gatedQuotes struct {
	started chan struct{}
	release chan struct{}
	seen    chan error
	calls   atomic.Int32
}

func newGatedQuotes() *gatedQuotes {
	return &gatedQuotes{started: make(chan struct{}), release: make(chan struct{}), seen: make(chan error, 1)}
}

func (g *gatedQuotes) Name() string { return "gatedquotes" }

func (g *gatedQuotes) FetchQuote(ctx context.Context, sym string) (models.Quote, error) {
	if g.calls.Add(1) == 1 {
		close(g.started)
		<-g.release
		g.seen <- ctx.Err()
	}
	return models.Quote{Symbol: sym, Price: 190, Origin: models.OriginLive}, nil
}
