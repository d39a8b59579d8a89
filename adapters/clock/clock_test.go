package clock_test

import (
	"testing"
	"time"

	"github.com/artpar/coniql/adapters/clock"
)

func TestReal_Now(t *testing.T) {
	c := clock.Real{}

	before := time.Now()
	got := c.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("Now() = %v, expected between %v and %v", got, before, after)
	}
}

func TestReal_NewTicker(t *testing.T) {
	tk := clock.Real{}.NewTicker(time.Millisecond)
	defer tk.Stop()

	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatal("real ticker did not fire")
	}
}

func TestFake_SetAndAdvance(t *testing.T) {
	initial := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewFake(initial)

	if !c.Now().Equal(initial) {
		t.Errorf("Now() = %v, want %v", c.Now(), initial)
	}

	c.Advance(time.Hour)
	c.Advance(-30 * time.Minute)
	if want := initial.Add(30 * time.Minute); !c.Now().Equal(want) {
		t.Errorf("Now() = %v, want %v", c.Now(), want)
	}

	later := time.Date(2025, 12, 25, 10, 30, 0, 0, time.UTC)
	c.Set(later)
	if !c.Now().Equal(later) {
		t.Errorf("Now() = %v, want %v", c.Now(), later)
	}
}

func TestFake_Ticker(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := clock.NewFake(start)
	tk := c.NewTicker(time.Second)

	c.Advance(500 * time.Millisecond)
	select {
	case <-tk.C():
		t.Fatal("ticker fired before its interval")
	default:
	}

	c.Advance(500 * time.Millisecond)
	select {
	case at := <-tk.C():
		if want := start.Add(time.Second); !at.Equal(want) {
			t.Errorf("tick at %v, want %v", at, want)
		}
	default:
		t.Fatal("ticker did not fire after its interval")
	}

	// Several intervals at once collapse into one pending tick.
	c.Advance(5 * time.Second)
	<-tk.C()
	select {
	case <-tk.C():
		t.Error("expected a single pending tick")
	default:
	}
}

func TestFake_TickerStop(t *testing.T) {
	c := clock.NewFake(time.Now())
	tk := c.NewTicker(time.Second)
	if c.Tickers() != 1 {
		t.Fatalf("Tickers() = %d, want 1", c.Tickers())
	}

	tk.Stop()
	if c.Tickers() != 0 {
		t.Errorf("Tickers() after Stop = %d, want 0", c.Tickers())
	}

	c.Advance(time.Minute)
	select {
	case <-tk.C():
		t.Error("stopped ticker fired")
	default:
	}
}

func TestFake_ConcurrentAccess(t *testing.T) {
	c := clock.NewFake(time.Now())
	tk := c.NewTicker(time.Second)
	defer tk.Stop()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = c.Now()
				c.Advance(time.Second)
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
