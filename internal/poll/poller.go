package poll

import (
	"context"
	"log"
	"time"
)

// Watch runs fn immediately and then once per interval until ctx is
// cancelled. Run failures are logged; the loop keeps going.
func Watch(ctx context.Context, interval time.Duration, fn func(context.Context) error) {
	run := func() {
		if err := fn(ctx); err != nil {
			log.Printf("[watch] run failed: %v", err)
		}
	}

	run()

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
