package app

import (
	"context"
	"net"

	"go.uber.org/zap"

	"promptstudio/internal/server"
)

// ServeHTTP runs the JSON API and event stream on ln until ctx is done,
// then shuts down gracefully.
func (a *App) ServeHTTP(ctx context.Context, ln net.Listener) error {
	base, cancelBase := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelBase()

	api := server.NewAPI(base, a.Editor, a.Simulation, a.hub, a.logger)
	srv := server.New(ln.Addr().String(), api.Handler(), a.logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GetShutdownTimeout())
	defer cancel()

	// Websocket handlers don't finish on their own; closing the hub ends them.
	a.hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn("http shutdown", zap.Error(err))
	}
	cancelBase()
	if err := a.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn("simulations still running at shutdown", zap.Error(err))
	}
	return <-errCh
}
