package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pep621/internal/server"
)

// serveCommand creates the serve command that runs the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP extraction service",
		Long: `Serve exposes extraction over HTTP:

  POST /v1/extract   {"fileName": "...", "content": "...", "lockFiles": {"pdm.lock": "..."}}
  GET  /healthz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			cfg := c.Config.Server
			if addr != "" {
				cfg.Addr = addr
			}
			srv := server.New(runner, c.Logger, server.Options{
				Addr:         cfg.Addr,
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
				CacheTTL:     c.Config.Cache.TTL,
			})
			printInfo("Listening on %s", cfg.Addr)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
