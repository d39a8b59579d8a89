package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/artpar/coniql/adapters/sqlite"
	"github.com/artpar/coniql/ports"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal.db")
	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("schema_migrations rows = %d, want 1", n)
	}
}

func TestOpen_ExistingOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.db")
	db, err := sqlite.Open(path + "?_busy_timeout=1000")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestJournalStore_RecordAndRecent(t *testing.T) {
	store := sqlite.NewJournalStore(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := []ports.WriteEntry{
		{ID: "w1", Transport: "ssim", PVs: []string{"a", "b"}, Values: []string{"1", "[1, 2]"}, Outcome: "ok", Duration: 1500 * time.Microsecond, At: base},
		{ID: "w2", Transport: "ca", PVs: []string{"PV1"}, Values: []string{"x"}, Outcome: "WRITE_REJECTED", Error: "write rejected", At: base.Add(time.Second)},
		{Transport: "ssim", PVs: []string{"c"}, Values: []string{"3"}, Outcome: "ok", At: base.Add(2 * time.Second)},
	}
	for _, e := range entries {
		if err := store.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	all, err := store.Recent(ctx, "", 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d entries, want 3", len(all))
	}
	if all[0].ID == "" || all[0].PVs[0] != "c" {
		t.Errorf("newest = %+v", all[0])
	}
	if all[1].ID != "w2" || all[1].Outcome != "WRITE_REJECTED" || all[1].Error != "write rejected" {
		t.Errorf("second = %+v", all[1])
	}

	w1 := all[2]
	if w1.ID != "w1" || len(w1.PVs) != 2 || w1.Values[1] != "[1, 2]" {
		t.Errorf("w1 = %+v", w1)
	}
	if w1.Duration != 1500*time.Microsecond {
		t.Errorf("duration = %v", w1.Duration)
	}
	if !w1.At.Equal(base) {
		t.Errorf("at = %v, want %v", w1.At, base)
	}

	sim, err := store.Recent(ctx, "ssim", 1)
	if err != nil {
		t.Fatalf("Recent(ssim): %v", err)
	}
	if len(sim) != 1 || sim[0].Transport != "ssim" || sim[0].PVs[0] != "c" {
		t.Errorf("ssim entries = %+v", sim)
	}
}

func TestJournalStore_DuplicateID(t *testing.T) {
	store := sqlite.NewJournalStore(setupTestDB(t))
	ctx := context.Background()

	e := ports.WriteEntry{ID: "dup", Transport: "ssim", Outcome: "ok", At: time.Now()}
	if err := store.Record(ctx, e); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Record(ctx, e); err == nil {
		t.Error("duplicate id accepted")
	}
}

func TestJournalStore_DeleteBefore(t *testing.T) {
	store := sqlite.NewJournalStore(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		err := store.Record(ctx, ports.WriteEntry{Transport: "ssim", Outcome: "ok", At: base.Add(time.Duration(i) * time.Hour)})
		if err != nil {
			t.Fatal(err)
		}
	}

	n, err := store.DeleteBefore(ctx, base.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("DeleteBefore: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d, want 2", n)
	}
	left, _ := store.Recent(ctx, "", 0)
	if len(left) != 2 {
		t.Errorf("%d entries left, want 2", len(left))
	}
}
