package indicator

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/amonks/ggc/countdown"
)

type fakeTicker struct {
	c        chan time.Time
	interval time.Duration
	stops    int
}

func (t *fakeTicker) C() <-chan time.Time { return t.c }
func (t *fakeTicker) Stop()               { t.stops++ }

type fakeClock struct {
	now     time.Time
	tickers []*fakeTicker
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) NewTicker(interval time.Duration) Ticker {
	ticker := &fakeTicker{c: make(chan time.Time), interval: interval}
	c.tickers = append(c.tickers, ticker)
	return ticker
}

type recordingPresenter struct {
	renders [][]countdown.Remaining
}

func (p *recordingPresenter) Render(rows []countdown.Remaining) {
	p.renders = append(p.renders, rows)
}

func (p *recordingPresenter) last() []countdown.Remaining {
	if len(p.renders) == 0 {
		return nil
	}
	return p.renders[len(p.renders)-1]
}

func newTestIndicator(t *testing.T) (*Indicator, *fakeClock, *recordingPresenter) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	presenter := &recordingPresenter{}
	ind := New(Options{Presenter: presenter, Clock: clock})
	return ind, clock, presenter
}

func TestNewStartsTickerAndRenders(t *testing.T) {
	ind, clock, presenter := newTestIndicator(t)

	if len(clock.tickers) != 1 {
		t.Fatalf("expected 1 ticker, got %d", len(clock.tickers))
	}
	if clock.tickers[0].interval != 60*time.Second {
		t.Fatalf("expected 60s interval, got %s", clock.tickers[0].interval)
	}
	if len(presenter.renders) != 1 || len(presenter.last()) != 0 {
		t.Fatalf("expected one empty initial render, got %v", presenter.renders)
	}
	if !ind.Enabled() {
		t.Fatal("expected indicator enabled")
	}
}

func TestRequestAddRendersDaysRemaining(t *testing.T) {
	ind, _, presenter := newTestIndicator(t)

	id, err := ind.RequestAdd("Party", "2024-01-02T00:00:01")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	rows := presenter.last()
	if len(rows) != 1 || rows[0].ID != id {
		t.Fatalf("unexpected render %+v", rows)
	}
	if rows[0].Days != 2 {
		t.Fatalf("expected 2 days, got %d", rows[0].Days)
	}
}

func TestRequestAddRejectsInvalidInputWithoutRender(t *testing.T) {
	ind, _, presenter := newTestIndicator(t)
	before := len(presenter.renders)

	if _, err := ind.RequestAdd("", "2024-02-01"); !errors.Is(err, countdown.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := ind.RequestAdd("X", "not-a-date"); !errors.Is(err, countdown.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if ind.Store().Len() != 0 {
		t.Fatalf("expected empty store, got %d", ind.Store().Len())
	}
	if len(presenter.renders) != before {
		t.Fatalf("expected no render on rejected input")
	}
}

func TestRequestAddAt(t *testing.T) {
	ind, clock, presenter := newTestIndicator(t)

	if _, err := ind.RequestAddAt("Soon", clock.now.Add(36*time.Hour)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if rows := presenter.last(); len(rows) != 1 || rows[0].Days != 2 {
		t.Fatalf("unexpected render %+v", rows)
	}
	if _, err := ind.RequestAddAt("Never", time.Time{}); !errors.Is(err, countdown.ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
}

func TestRequestDeleteIsIdempotent(t *testing.T) {
	ind, _, presenter := newTestIndicator(t)

	id, err := ind.RequestAdd("Party", "2024-02-01")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	ind.RequestDelete(id)
	ind.RequestDelete(id)

	if rows := presenter.last(); len(rows) != 0 {
		t.Fatalf("expected empty render, got %+v", rows)
	}
	if ind.Store().Len() != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestRefreshUsesCurrentTime(t *testing.T) {
	ind, clock, presenter := newTestIndicator(t)

	if _, err := ind.RequestAdd("Party", "2024-01-03"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if presenter.last()[0].Days != 2 {
		t.Fatalf("expected 2 days")
	}

	clock.now = clock.now.Add(25 * time.Hour)
	ind.Refresh()

	if presenter.last()[0].Days != 1 {
		t.Fatalf("expected 1 day after a day passes, got %d", presenter.last()[0].Days)
	}
}

func TestDisableStopsTickerOnce(t *testing.T) {
	ind, clock, presenter := newTestIndicator(t)
	if _, err := ind.RequestAdd("Party", "2024-02-01"); err != nil {
		t.Fatalf("add: %v", err)
	}
	renders := len(presenter.renders)

	ind.Disable()
	ind.Disable()

	if clock.tickers[0].stops != 1 {
		t.Fatalf("expected ticker stopped exactly once, got %d", clock.tickers[0].stops)
	}
	if ind.Ticks() != nil {
		t.Fatal("expected nil ticks after disable")
	}
	select {
	case <-ind.Done():
	default:
		t.Fatal("expected done to be closed")
	}
	if ind.Enabled() || ind.Store() != nil {
		t.Fatal("expected store to be discarded")
	}

	ind.Refresh()
	ind.RequestDelete("anything")
	if _, err := ind.RequestAdd("Late", "2024-03-01"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if ind.Snapshot() != nil {
		t.Fatal("expected nil snapshot after disable")
	}
	if len(presenter.renders) != renders {
		t.Fatalf("expected no renders after disable, got %d more", len(presenter.renders)-renders)
	}
}

func TestRunRefreshesOnTickAndExecutesRequests(t *testing.T) {
	ind, clock, presenter := newTestIndicator(t)
	ticker := clock.tickers[0]

	requests := make(chan Request)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 1)
	go func() {
		errs <- ind.Run(ctx, requests)
	}()

	added := make(chan string, 1)
	requests <- func(ind *Indicator) {
		id, err := ind.RequestAdd("Party", "2024-01-05")
		if err != nil {
			t.Errorf("add: %v", err)
		}
		added <- id
	}
	id := <-added

	ticked := make(chan int, 1)
	ticker.c <- clock.now
	requests <- func(ind *Indicator) {
		ticked <- len(presenter.renders)
	}
	if got := <-ticked; got != 3 {
		t.Fatalf("expected 3 renders (initial, add, tick), got %d", got)
	}

	close(requests)
	if err := <-errs; err != nil {
		t.Fatalf("run: %v", err)
	}
	if ticker.stops != 1 {
		t.Fatalf("expected ticker stopped once, got %d", ticker.stops)
	}
	if id == "" {
		t.Fatal("expected id")
	}
}

func TestRunReturnsContextError(t *testing.T) {
	ind, clock, _ := newTestIndicator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ind.Run(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if ind.Enabled() {
		t.Fatal("expected indicator disabled after run")
	}
	if clock.tickers[0].stops != 1 {
		t.Fatalf("expected ticker stopped once, got %d", clock.tickers[0].stops)
	}
}

func TestRunAfterDisableReturnsImmediately(t *testing.T) {
	ind, _, _ := newTestIndicator(t)
	ind.Disable()

	if err := ind.Run(context.Background(), make(chan Request)); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestLoggerRecordsRequests(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	ind := New(Options{
		Clock:  clock,
		Logger: log.New(&buf, "ggc: ", 0),
		NewID:  func() string { return "fixedid1" },
	})

	if _, err := ind.RequestAdd("Party", "2024-02-01"); err != nil {
		t.Fatalf("add: %v", err)
	}
	ind.RequestDelete("fixedid1")
	ind.Disable()

	out := buf.String()
	for _, want := range []string{"ggc: enabled", "added countdown fixedid1", "deleted countdown fixedid1", "ggc: disabled"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log to contain %q, got:\n%s", want, out)
		}
	}
}
