package indicator

import (
	"testing"
	"time"
)

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := FixedClock{At: at}

	if !clock.Now().Equal(at) {
		t.Fatalf("expected %s, got %s", at, clock.Now())
	}

	ticker := clock.NewTicker(time.Millisecond)
	defer ticker.Stop()
	select {
	case <-ticker.C():
	case <-time.After(5 * time.Second):
		t.Fatal("expected a tick")
	}
}

func TestWallClockTickerStops(t *testing.T) {
	ticker := WallClock{}.NewTicker(time.Hour)
	ticker.Stop()
	select {
	case <-ticker.C():
		t.Fatal("unexpected tick after stop")
	default:
	}
}
