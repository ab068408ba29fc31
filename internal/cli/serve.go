package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/venngen/internal/api"
	"github.com/matzehuels/venngen/pkg/config"
	"github.com/matzehuels/venngen/pkg/observability"
)

// serveCommand creates the serve command that runs the HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve diagrams over HTTP",
		Long: `Serve diagrams over HTTP.

Endpoints:
  GET /            form page
  GET /2venn.svg   two-circle diagram
  GET /venn.svg    two- or three-circle diagram
  GET /healthz     liveness probe

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Server.RequestTimeout = config.Duration{Duration: timeout}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	cmd.Flags().DurationVar(&timeout, "timeout", config.DefaultRequestTimeout, "per-request timeout")

	return cmd
}

// runServe installs log hooks and blocks until ctx is canceled.
func (c *CLI) runServe(ctx context.Context, cfg config.Config) error {
	hooks := observability.LogHooks{Logger: c.Logger}
	observability.SetPipelineHooks(hooks)
	observability.SetServerHooks(hooks)
	defer observability.Reset()

	printInfo("Serving on %s", StyleValue.Render(cfg.Server.Addr))
	printNewline()
	printNextStep("Try", "curl 'http://localhost"+cfg.Server.Addr+"/2venn.svg?first=Cats&second=Dogs'")

	return api.New(cfg, c.Logger).ListenAndServe(ctx)
}
