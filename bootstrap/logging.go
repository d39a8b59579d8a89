package bootstrap

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/artpar/coniql/config"
	"github.com/rs/zerolog"
)

// logOutput is the writer behind every logger the app hands out. Swapping
// its format lets a config reload change the output without rebuilding
// loggers that components already hold.
type logOutput struct {
	out io.Writer

	mu     sync.RWMutex
	w      io.Writer
	format string
}

func newLogOutput(out io.Writer) *logOutput {
	return &logOutput{out: out, w: out, format: "json"}
}

func (o *logOutput) Write(p []byte) (int, error) {
	o.mu.RLock()
	w := o.w
	o.mu.RUnlock()
	return w.Write(p)
}

// apply sets the global level and the output format.
func (o *logOutput) apply(cfg config.LoggingConfig) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	o.mu.Lock()
	defer o.mu.Unlock()
	if cfg.Format == o.format {
		return nil
	}
	if cfg.Format == "console" {
		o.w = zerolog.ConsoleWriter{Out: o.out, TimeFormat: time.RFC3339}
	} else {
		o.w = o.out
	}
	o.format = cfg.Format
	return nil
}

func newLogger(out *logOutput) zerolog.Logger {
	return zerolog.New(out).With().Timestamp().Str("service", "coniql").Logger()
}
