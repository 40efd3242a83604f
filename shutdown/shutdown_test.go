package shutdown

import (
	"testing"
	"time"

	"github.com/amp-labs/bitonic/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests share process-wide state and must not run in parallel.

func TestSetupHandler_Shutdown(t *testing.T) { //nolint:paralleltest
	ctx, stop := SetupHandler(logger.WithMuted(t.Context(), true))
	defer stop()

	var order []string

	BeforeShutdown(func() { order = append(order, "first") })
	BeforeShutdown(func() { order = append(order, "second") })

	Shutdown()

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		require.Fail(t, "context was not canceled")
	}

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSetupHandler_Stop(t *testing.T) { //nolint:paralleltest
	ctx, stop := SetupHandler(logger.WithMuted(t.Context(), true))

	called := false

	BeforeShutdown(func() { called = true })

	stop()
	stop()

	<-ctx.Done()

	assert.False(t, called)

	// No handler is installed any more.
	Shutdown()
}
