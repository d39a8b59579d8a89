package idgen_test

import (
	"sync"
	"testing"

	"github.com/artpar/coniql/adapters/idgen"
	"github.com/google/uuid"
)

func TestUUID_New(t *testing.T) {
	g := idgen.UUID{}

	id := g.New()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("New() = %q is not a UUID: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("version = %d, want 4", parsed.Version())
	}
	if g.New() == id {
		t.Error("two calls returned the same ID")
	}
}

func TestSequential(t *testing.T) {
	tests := []struct {
		prefix string
		calls  int
		want   string
	}{
		{"batch-", 1, "batch-1"},
		{"", 1, "1"},
		{"op_", 3, "op_3"},
		{"n", 1001, "n1001"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			g := idgen.NewSequential(tt.prefix)
			var got string
			for i := 0; i < tt.calls; i++ {
				got = g.New()
			}
			if got != tt.want {
				t.Errorf("after %d calls New() = %s, want %s", tt.calls, got, tt.want)
			}
		})
	}
}

func TestSequential_Reset(t *testing.T) {
	g := idgen.NewSequential("id_")
	g.New()
	g.New()
	g.Reset()

	if id := g.New(); id != "id_1" {
		t.Errorf("after reset ID = %s, want id_1", id)
	}
}

func TestSequential_ConcurrentAccess(t *testing.T) {
	g := idgen.NewSequential("c")

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := g.New()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != 1000 {
		t.Errorf("expected 1000 unique IDs, got %d", len(seen))
	}
}
