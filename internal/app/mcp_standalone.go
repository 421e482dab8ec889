package app

import (
	"context"

	mcpserver "promptstudio/internal/mcp"
)

// ServeMCP runs the editor as an MCP server on stdin/stdout until the
// client disconnects or the process is signalled.
func (a *App) ServeMCP(ctx context.Context, version string) error {
	srv := mcpserver.New(mcpserver.Deps{
		Editor:     a.Editor,
		Simulation: a.Simulation,
		Logger:     a.logger,
		ExportDir:  a.cfg.Export.Dir,
		Version:    version,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ServeStdio() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}
