package bootstrap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/artpar/coniql/adapters/sqlite"
	"github.com/artpar/coniql/config"
	"github.com/artpar/coniql/ports"
	"github.com/rs/zerolog"
)

// maxPruneInterval caps how long expired journal entries may linger.
const maxPruneInterval = time.Hour

// OpenJournal opens and migrates the write journal database.
func OpenJournal(ctx context.Context, cfg config.JournalConfig) (*sqlite.DB, *sqlite.JournalStore, error) {
	db, err := sqlite.Open(cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate journal: %w", err)
	}
	return db, sqlite.NewJournalStore(db), nil
}

// JournalPruner deletes journal entries older than the retention period.
type JournalPruner struct {
	store     *sqlite.JournalStore
	retention time.Duration
	interval  time.Duration
	clock     ports.Clock
	logger    zerolog.Logger

	stopCh    chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewJournalPruner prunes once immediately, then on every interval.
func NewJournalPruner(store *sqlite.JournalStore, retention time.Duration, clk ports.Clock, logger zerolog.Logger) *JournalPruner {
	interval := retention / 4
	if interval > maxPruneInterval || interval <= 0 {
		interval = maxPruneInterval
	}

	p := &JournalPruner{
		store:     store,
		retention: retention,
		interval:  interval,
		clock:     clk,
		logger:    logger.With().Str("component", "journal").Logger(),
		stopCh:    make(chan struct{}),
	}

	p.Prune(context.Background())

	p.wg.Add(1)
	go p.loop()
	return p
}

// Prune removes expired entries once.
func (p *JournalPruner) Prune(ctx context.Context) (int64, error) {
	cutoff := p.clock.Now().Add(-p.retention)
	n, err := p.store.DeleteBefore(ctx, cutoff)
	if err != nil {
		p.logger.Error().Err(err).Msg("journal prune failed")
		return 0, err
	}
	if n > 0 {
		p.logger.Info().Int64("deleted", n).Time("before", cutoff).Msg("pruned write journal")
	}
	return n, nil
}

func (p *JournalPruner) loop() {
	defer p.wg.Done()
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C():
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			p.Prune(ctx)
			cancel()
		case <-p.stopCh:
			return
		}
	}
}

// Close stops the prune loop.
func (p *JournalPruner) Close() error {
	p.closeOnce.Do(func() {
		close(p.stopCh)
		p.wg.Wait()
	})
	return nil
}
