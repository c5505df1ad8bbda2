// pkg/rhino_cli/signals.go
//
// Signal handling for maintenance runs. The foreground child shares the
// terminal's process group and receives SIGINT on its own; our job is to
// stop the sequence and let the command layer report exit code 130.

package rhino_cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// SignalHandler cancels the run context on the first SIGINT/SIGTERM and
// marks the run as interrupted; the run then unwinds normally (the child is
// reaped) and the command layer exits 130. A second signal forces exit 1
// without waiting.
type SignalHandler struct {
	ctx         context.Context
	cancel      context.CancelFunc
	sigChan     chan os.Signal
	interrupted atomic.Bool
}

// NewSignalHandler installs the handler and starts watching for signals.
func NewSignalHandler(ctx context.Context) *SignalHandler {
	ctx, cancel := context.WithCancel(ctx)

	handler := &SignalHandler{
		ctx:     ctx,
		cancel:  cancel,
		sigChan: make(chan os.Signal, 2),
	}

	signal.Notify(handler.sigChan, os.Interrupt, syscall.SIGTERM)
	go handler.handleSignals()

	return handler
}

// Context returns the cancellable run context.
func (h *SignalHandler) Context() context.Context {
	return h.ctx
}

// Interrupted reports whether a signal cancelled the run.
func (h *SignalHandler) Interrupted() bool {
	return h.interrupted.Load()
}

func (h *SignalHandler) handleSignals() {
	log := otelzap.Ctx(h.ctx)

	sig, ok := <-h.sigChan
	if !ok {
		return
	}
	log.Warn("Received signal, stopping maintenance run",
		zap.String("signal", sig.String()))
	fmt.Fprintf(os.Stderr, "\n⚠️  Operation cancelled by user (%v)\n", sig)

	h.interrupted.Store(true)
	h.cancel()

	// The run unwinds on its own once the child is gone; a second signal
	// means the user wants out immediately.
	if _, ok := <-h.sigChan; ok {
		fmt.Fprintln(os.Stderr, "⚠️  Received second interrupt, forcing exit!")
		os.Exit(1)
	}
}

// Stop uninstalls the handler. Call once the run has finished.
func (h *SignalHandler) Stop() {
	signal.Stop(h.sigChan)
	close(h.sigChan)
}
