// Package serve runs the HTTP classification service
package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/extrato-classifier/cmd/root"
	"fjacquet/extrato-classifier/internal/container"
	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/server"

	"github.com/spf13/cobra"
)

var addr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP classification service",
	Long: `Run the HTTP classification service until SIGINT or SIGTERM, then shut
down gracefully.

Endpoints:
  POST /process_transaction   callable envelope {"data": {"raw_description": "..."}}
  POST /api/v1/classify       {"raw_description": "..."}
  GET  /api/v1/categories
  GET  /healthz

Example:
  extrato serve --addr :8080`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.address)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, NewServer(root.AppContainer, addr), root.Log)
}

// NewServer returns the container's server, or a server on address when one
// is given.
func NewServer(c *container.Container, address string) *server.Server {
	if address == "" {
		return c.GetServer()
	}
	opts := container.ServerOptions(c.GetConfig())
	opts.Address = address
	return server.New(c.GetClassifier(), opts, c.GetLogger())
}

// Run serves until ctx is done.
func Run(ctx context.Context, srv *server.Server, logger logging.Logger) error {
	if err := srv.Run(ctx); err != nil {
		logger.WithError(err).Error("HTTP server failed")
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
