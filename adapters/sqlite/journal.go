package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/artpar/coniql/ports"
	"github.com/google/uuid"
)

// JournalStore implements ports.WriteJournal using SQLite.
type JournalStore struct {
	db *DB
}

// NewJournalStore creates a new SQLite write journal.
func NewJournalStore(db *DB) *JournalStore {
	return &JournalStore{db: db}
}

var _ ports.WriteJournal = (*JournalStore)(nil)

// Record stores one batched put. Entries without an ID get a random one.
func (s *JournalStore) Record(ctx context.Context, e ports.WriteEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	pvs, err := json.Marshal(nonNil(e.PVs))
	if err != nil {
		return fmt.Errorf("encode pvs: %w", err)
	}
	vals, err := json.Marshal(nonNil(e.Values))
	if err != nil {
		return fmt.Errorf("encode values: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO write_journal (id, transport, pvs, vals, batch_size, outcome, error, duration_us, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Transport, string(pvs), string(vals), len(e.PVs), e.Outcome, e.Error,
		e.Duration.Microseconds(), e.At.UTC())
	if err != nil {
		return fmt.Errorf("record write %s: %w", e.ID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. An empty transport
// matches every transport.
func (s *JournalStore) Recent(ctx context.Context, transport string, limit int) ([]ports.WriteEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, transport, pvs, vals, outcome, error, duration_us, created_at
		FROM write_journal
		WHERE ? = '' OR transport = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, transport, transport, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []ports.WriteEntry
	for rows.Next() {
		var (
			e          ports.WriteEntry
			pvs, vals  string
			durationUS int64
		)
		if err := rows.Scan(&e.ID, &e.Transport, &pvs, &vals, &e.Outcome, &e.Error, &durationUS, &e.At); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		if err := json.Unmarshal([]byte(pvs), &e.PVs); err != nil {
			return nil, fmt.Errorf("decode pvs of %s: %w", e.ID, err)
		}
		if err := json.Unmarshal([]byte(vals), &e.Values); err != nil {
			return nil, fmt.Errorf("decode values of %s: %w", e.ID, err)
		}
		e.Duration = time.Duration(durationUS) * time.Microsecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteBefore removes entries recorded before t and reports how many.
func (s *JournalStore) DeleteBefore(ctx context.Context, t time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM write_journal WHERE created_at < ?
	`, t.UTC())
	if err != nil {
		return 0, fmt.Errorf("prune journal: %w", err)
	}
	return result.RowsAffected()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
