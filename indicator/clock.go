package indicator

import "time"

// Clock supplies the current time and refresh tickers.
type Clock interface {
	Now() time.Time
	NewTicker(interval time.Duration) Ticker
}

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// WallClock is the system clock.
type WallClock struct{}

// Now returns the current local time.
func (WallClock) Now() time.Time {
	return time.Now()
}

// NewTicker starts a time.Ticker.
func (WallClock) NewTicker(interval time.Duration) Ticker {
	return wallTicker{ticker: time.NewTicker(interval)}
}

type wallTicker struct {
	ticker *time.Ticker
}

func (t wallTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t wallTicker) Stop() {
	t.ticker.Stop()
}

// FixedClock reports a fixed time but ticks on the wall clock.
type FixedClock struct {
	At time.Time
}

// Now returns At.
func (c FixedClock) Now() time.Time {
	return c.At
}

// NewTicker starts a time.Ticker.
func (FixedClock) NewTicker(interval time.Duration) Ticker {
	return WallClock{}.NewTicker(interval)
}
