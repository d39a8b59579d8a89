// Package clock provides Clock implementations.
package clock

import (
	"sync"
	"time"

	"github.com/artpar/coniql/ports"
)

// Real returns the actual current time.
type Real struct{}

// Now returns the current time.
func (Real) Now() time.Time {
	return time.Now()
}

// NewTicker returns a ticker backed by time.Ticker.
func (Real) NewTicker(d time.Duration) ports.Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

var _ ports.Clock = Real{}

// Fake provides a controllable clock for testing.
// Tickers created from a Fake fire only when the clock is advanced past
// their next deadline.
type Fake struct {
	mu      sync.RWMutex
	current time.Time
	tickers []*fakeTicker
}

// NewFake creates a fake clock set to the given time.
func NewFake(t time.Time) *Fake {
	return &Fake{current: t}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// NewTicker returns a ticker that fires every d of fake time.
func (f *Fake) NewTicker(d time.Duration) ports.Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	t := &fakeTicker{
		clock:    f,
		interval: d,
		next:     f.current.Add(d),
		ch:       make(chan time.Time, 1),
	}
	f.tickers = append(f.tickers, t)
	return t
}

// Tickers returns the number of live tickers.
func (f *Fake) Tickers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.tickers)
}

// Set sets the fake current time, firing any tickers that became due.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = t
	f.fire()
}

// Advance moves the fake time forward by duration d, firing any tickers
// that became due.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.current.Add(d)
	f.fire()
}

// fire delivers at most one pending tick per ticker, like time.Ticker drops
// ticks for slow receivers. Caller holds f.mu.
func (f *Fake) fire() {
	for _, t := range f.tickers {
		if f.current.Before(t.next) {
			continue
		}
		for !f.current.Before(t.next) {
			t.next = t.next.Add(t.interval)
		}
		select {
		case t.ch <- f.current:
		default:
		}
	}
}

func (f *Fake) remove(t *fakeTicker) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, ft := range f.tickers {
		if ft == t {
			f.tickers = append(f.tickers[:i], f.tickers[i+1:]...)
			return
		}
	}
}

type fakeTicker struct {
	clock    *Fake
	interval time.Duration
	next     time.Time
	ch       chan time.Time
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }
func (t *fakeTicker) Stop()               { t.clock.remove(t) }

var _ ports.Clock = (*Fake)(nil)
