//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
}

// RunHeadless drives newApp from a ticker without opening a window.
// It returns nil after cfg.Ticks steps (0 runs until ctx is done).
func RunHeadless(ctx context.Context, newApp AppFactory, cfg HeadlessConfig, opts ...Option) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h, err := newHost(opts...)
	if err != nil {
		return err
	}
	defer h.Close()

	step, err := newApp(h)
	if err != nil {
		return err
	}
	return runTicks(ctx, step, d, cfg.Ticks)
}

func runTicks(ctx context.Context, step func() error, d time.Duration, ticks uint64) error {
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if ticks > 0 && tick >= ticks {
				return nil
			}
		}
	}
}
