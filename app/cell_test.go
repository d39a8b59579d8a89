package app_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/artpar/coniql/app"
	"github.com/artpar/coniql/domain/channel"
)

func TestCell_SingleFlight(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	cell := app.NewDeferredCell("ssim://sine", channel.Config{Name: "sine"}, func(ctx context.Context) (channel.Snapshot, error) {
		calls.Add(1)
		<-release
		return channel.Snapshot{Value: channel.NewValue(1.0, nil)}, nil
	})

	const n = 50
	results := make([]*channel.Snapshot, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap, err := cell.Channel(context.Background())
			if err != nil {
				t.Errorf("caller %d: %v", i, err)
				return
			}
			results[i] = snap
		}(i)
	}
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("fetch called %d times, want 1", got)
	}
	for i, r := range results {
		if r != results[0] {
			t.Errorf("caller %d got a different snapshot pointer", i)
		}
	}
}

func TestCell_IdempotentReread(t *testing.T) {
	var calls atomic.Int32
	cell := app.NewDeferredCell("x", channel.Config{}, func(ctx context.Context) (channel.Snapshot, error) {
		n := calls.Add(1)
		return channel.Snapshot{Value: channel.NewValue(float64(n), nil)}, nil
	})

	first, err := cell.Channel(context.Background())
	if err != nil {
		t.Fatalf("Channel() error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, _ := cell.Channel(context.Background())
		if again != first {
			t.Fatalf("read %d returned a new snapshot", i)
		}
	}
	if v, _ := first.Value.Float(); v != 1 {
		t.Errorf("value = %v, want 1", v)
	}
	if calls.Load() != 1 {
		t.Errorf("fetch called %d times, want 1", calls.Load())
	}
}

func TestCell_FailureNotCached(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32
	cell := app.NewDeferredCell("x", channel.Config{}, func(ctx context.Context) (channel.Snapshot, error) {
		if calls.Add(1) == 1 {
			return channel.Snapshot{}, boom
		}
		return channel.Snapshot{Value: channel.NewValue("ok", nil)}, nil
	})

	if _, err := cell.Channel(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("first call error = %v, want boom", err)
	}
	if cell.Populated() {
		t.Fatal("cell populated after failed fetch")
	}

	snap, err := cell.Channel(context.Background())
	if err != nil {
		t.Fatalf("retry error: %v", err)
	}
	if snap.Value.String(false) != "ok" {
		t.Errorf("retry value = %q", snap.Value.String(false))
	}
	if calls.Load() != 2 {
		t.Errorf("fetch called %d times, want 2", calls.Load())
	}
}

func TestCell_PanickingFetchIsRetryable(t *testing.T) {
	var calls atomic.Int32
	cell := app.NewDeferredCell("x", channel.Config{}, func(ctx context.Context) (channel.Snapshot, error) {
		if calls.Add(1) == 1 {
			panic("plugin bug")
		}
		return channel.Snapshot{Value: channel.NewValue("ok", nil)}, nil
	})

	_, err := cell.Channel(context.Background())
	if err == nil || !strings.Contains(err.Error(), "plugin bug") {
		t.Fatalf("first call error = %v, want panic reported as error", err)
	}
	if cell.Populated() {
		t.Fatal("cell populated after panicking fetch")
	}

	snap, err := cell.Channel(context.Background())
	if err != nil {
		t.Fatalf("retry error: %v", err)
	}
	if snap.Value.String(false) != "ok" {
		t.Errorf("retry value = %q", snap.Value.String(false))
	}
}

func TestCell_WaiterHonoursOwnContext(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	cell := app.NewDeferredCell("x", channel.Config{}, func(ctx context.Context) (channel.Snapshot, error) {
		calls.Add(1)
		<-release
		return channel.Snapshot{}, ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := cell.Channel(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}

	close(release)
	if _, err := cell.Channel(context.Background()); err != nil {
		t.Fatalf("fetch should not see the first caller's cancellation: %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("fetch called %d times, want 1", calls.Load())
	}
}

func TestCell_Populated(t *testing.T) {
	snap := channel.Snapshot{Value: channel.NewValue(2.0, nil)}
	cell := app.NewPopulatedCell("ca://PV1", channel.Config{Name: "PV1"}, snap)

	if !cell.Populated() {
		t.Fatal("populated cell reports empty")
	}
	got, err := cell.Channel(context.Background())
	if err != nil {
		t.Fatalf("Channel() error: %v", err)
	}
	if v, _ := got.Value.Float(); v != 2 {
		t.Errorf("value = %v, want 2", v)
	}
	if cell.ID() != "ca://PV1" || cell.Config().Name != "PV1" {
		t.Errorf("ID/Config = %q/%q", cell.ID(), cell.Config().Name)
	}
}
