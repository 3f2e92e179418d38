// Package indicator hosts a countdown store behind a presenter, refreshing
// it on a fixed interval until disabled.
package indicator

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/amonks/ggc/countdown"
)

// RefreshInterval is how often days remaining are recomputed and rendered.
const RefreshInterval = 60 * time.Second

// ErrDisabled is returned for requests made after Disable.
var ErrDisabled = errors.New("indicator is disabled")

// Presenter renders countdown snapshots.
type Presenter interface {
	Render(rows []countdown.Remaining)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(rows []countdown.Remaining)

// Render calls f.
func (f PresenterFunc) Render(rows []countdown.Remaining) {
	f(rows)
}

// Options configures an Indicator.
type Options struct {
	// Presenter receives every render. Required.
	Presenter Presenter

	// Clock defaults to WallClock.
	Clock Clock

	// Order selects list ordering.
	Order countdown.Order

	// NewID overrides countdown ID generation.
	NewID func() string

	// Logger receives lifecycle and request logs. Defaults to discarding.
	Logger *log.Logger
}

// Indicator owns a countdown store and its refresh ticker.
// It must be driven from a single goroutine.
type Indicator struct {
	store     *countdown.Store
	presenter Presenter
	clock     Clock
	ticker    Ticker
	done      chan struct{}
	logger    *log.Logger
}

// New creates the store, starts the refresh ticker and renders once.
func New(opts Options) *Indicator {
	presenter := opts.Presenter
	if presenter == nil {
		presenter = PresenterFunc(func([]countdown.Remaining) {})
	}
	clock := opts.Clock
	if clock == nil {
		clock = WallClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	ind := &Indicator{
		store:     countdown.NewStore(countdown.StoreOptions{Order: opts.Order, NewID: opts.NewID}),
		presenter: presenter,
		clock:     clock,
		done:      make(chan struct{}),
		logger:    logger,
	}
	ind.ticker = clock.NewTicker(RefreshInterval)
	ind.logger.Printf("enabled (refresh every %s)", RefreshInterval)
	ind.Refresh()
	return ind
}

// Enabled reports whether Disable has not been called yet.
func (ind *Indicator) Enabled() bool {
	return ind.store != nil
}

// Store returns the underlying store, or nil once disabled.
func (ind *Indicator) Store() *countdown.Store {
	return ind.store
}

// Now returns the indicator clock's current time.
func (ind *Indicator) Now() time.Time {
	return ind.clock.Now()
}

// Ticks returns the refresh ticker channel, or nil once disabled.
func (ind *Indicator) Ticks() <-chan time.Time {
	if ind.ticker == nil {
		return nil
	}
	return ind.ticker.C()
}

// Done is closed by Disable.
func (ind *Indicator) Done() <-chan struct{} {
	return ind.done
}

// Snapshot lists the countdowns at the current time.
func (ind *Indicator) Snapshot() []countdown.Remaining {
	if ind.store == nil {
		return nil
	}
	return ind.store.List(ind.clock.Now())
}

// Refresh recomputes days remaining and renders. It does nothing once disabled.
func (ind *Indicator) Refresh() {
	if ind.store == nil {
		return
	}
	ind.presenter.Render(ind.store.List(ind.clock.Now()))
}

// RequestAdd parses dateText, adds a countdown and renders.
func (ind *Indicator) RequestAdd(label, dateText string) (string, error) {
	if ind.store == nil {
		return "", ErrDisabled
	}
	id, err := ind.store.AddText(label, dateText)
	if err != nil {
		ind.logger.Printf("add rejected: %v", err)
		return "", err
	}
	ind.logger.Printf("added countdown %s", id)
	ind.Refresh()
	return id, nil
}

// RequestAddAt adds a countdown with an already parsed target and renders.
func (ind *Indicator) RequestAddAt(label string, target time.Time) (string, error) {
	if ind.store == nil {
		return "", ErrDisabled
	}
	id, err := ind.store.Add(label, target)
	if err != nil {
		ind.logger.Printf("add rejected: %v", err)
		return "", err
	}
	ind.logger.Printf("added countdown %s", id)
	ind.Refresh()
	return id, nil
}

// RequestDelete removes a countdown and renders. Unknown IDs are ignored.
func (ind *Indicator) RequestDelete(id string) {
	if ind.store == nil {
		return
	}
	if _, ok := ind.store.Get(id); ok {
		ind.logger.Printf("deleted countdown %s", id)
	}
	ind.store.Remove(id)
	ind.Refresh()
}

// Disable stops the refresh ticker and discards every countdown.
// Calling it again has no effect.
func (ind *Indicator) Disable() {
	if ind.store == nil {
		return
	}
	if ind.ticker != nil {
		ind.ticker.Stop()
		ind.ticker = nil
	}
	close(ind.done)
	ind.store = nil
	ind.logger.Printf("disabled")
}

// Request is work executed on the Run goroutine.
type Request func(ind *Indicator)

// Run refreshes on every tick and executes requests until ctx is done, the
// requests channel closes, or the indicator is disabled. It disables the
// indicator before returning.
func (ind *Indicator) Run(ctx context.Context, requests <-chan Request) error {
	defer ind.Disable()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ind.done:
			return nil
		case <-ind.Ticks():
			ind.Refresh()
		case request, ok := <-requests:
			if !ok {
				return nil
			}
			if request != nil {
				request(ind)
			}
		}
	}
}
