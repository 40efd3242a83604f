// Package shutdown turns SIGINT and SIGTERM into context cancellation for
// the bitonic command, running registered hooks first.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/amp-labs/bitonic/logger"
)

var (
	mut     sync.Mutex     //nolint:gochecknoglobals
	hooks   []func()       //nolint:gochecknoglobals
	trigger chan os.Signal //nolint:gochecknoglobals
)

// BeforeShutdown registers h to run when a shutdown signal arrives, before
// the handler's context is canceled. Hooks run in registration order.
func BeforeShutdown(h func()) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, h)
}

// Shutdown simulates an interrupt for the installed handler. Without one it
// does nothing.
func Shutdown() {
	mut.Lock()
	ch := trigger
	mut.Unlock()

	if ch != nil {
		select {
		case ch <- os.Interrupt:
		default:
		}
	}
}

// SetupHandler returns a child of parent that is canceled on the first
// SIGINT or SIGTERM, after the BeforeShutdown hooks have run. stop removes
// the handler and releases the context; hooks that never ran are dropped.
func SetupHandler(parent context.Context) (context.Context, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	mut.Lock()
	trigger = ch
	mut.Unlock()

	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-ch:
			logger.Get(ctx).Warn("Received " + sig.String() + ", shutting down...")
			cleanup()
			cancel()
		case <-done:
		}
	}()

	var once sync.Once

	stop := func() {
		once.Do(func() {
			signal.Stop(ch)

			mut.Lock()
			if trigger == ch {
				trigger = nil
			}

			hooks = nil
			mut.Unlock()

			close(done)
			cancel()
		})
	}

	return ctx, stop
}

func cleanup() {
	mut.Lock()
	pending := hooks
	hooks = nil
	mut.Unlock()

	for _, h := range pending {
		h()
	}
}
