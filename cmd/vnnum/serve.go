package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/FuandB/vn-numtext/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTML form and JSON API",
		Long: `Starts the HTTP server on the configured address.

Routes:
  GET  /                 HTML form
  POST /                 form submit (field "number")
  GET  /api/v1/read      ?number=
  POST /api/v1/read      {"number": "..."}
  GET  /api/v1/parse     ?text=
  GET  /api/v1/ordinal   ?number=
  GET  /api/health

Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(a.cfg, a.log).Run(ctx)
		},
	}
}
