// Package console implements the trainer-console command line: an interactive
// shell over the in-memory planners and the HTTP server entry point.
package console

import (
	"alcyxob/trainer-console/internal/app"
	"alcyxob/trainer-console/internal/config"
	"alcyxob/trainer-console/internal/logging"
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the console command tree.
func NewRootCmd() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "console",
		Short: "Personal trainer console for workout planners and students",
		Long: `console manages weekly workout planners and students for personal trainers.

Run "console shell" for the interactive console or "console serve" for the HTTP API.
All data lives in memory and is gone when the process exits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory containing config.yaml")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			a, cleanup, err := loadApp(ctx, configDir)
			if err != nil {
				return err
			}
			defer cleanup()
			return a.Serve(ctx)
		},
	}

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := loadApp(ctx, configDir)
			if err != nil {
				return err
			}
			defer cleanup()
			sh := NewShell(a.Services.Planners, a.Services.Schedules, a.Services.Students, cmd.InOrStdin(), cmd.OutOrStdout())
			return sh.Run(ctx)
		},
	}

	rootCmd.AddCommand(serveCmd, shellCmd)
	return rootCmd
}

func loadApp(ctx context.Context, configDir string) (*app.App, func(), error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	a, err := app.New(ctx, &cfg, logger.Sugar())
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	return a, func() { _ = logger.Sync() }, nil
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}
