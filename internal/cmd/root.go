// Package cmd wires the plx command tree. The bare command launches
// the interactive terminal app; subcommands cover the same operations
// non-interactively and authenticate per invocation.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/plannerx/plx/internal/api"
	"github.com/plannerx/plx/internal/config"
	"github.com/plannerx/plx/internal/log"
	"github.com/plannerx/plx/internal/store"
	"github.com/plannerx/plx/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "plx",
	Short: "Planner X administration client",
	Long: `plx is a terminal client for the Planner X revenue planning service.
Run it without arguments for the interactive app, or use the
subcommands for scripting. Sessions live only in memory; every
invocation signs in with the configured credentials.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var (
	cfg *config.Config

	flagAPIURL   string
	flagEmail    string
	flagPassword string
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under a cancellable context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Planner X API origin (default from PLX_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flagEmail, "email", "", "login email (default from PLX_EMAIL)")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "login password (default from PLX_PASSWORD)")

	rootCmd.PersistentPreRunE = setup
}

// setup loads configuration, applies flag overrides and configures the
// process-wide logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if flagEmail != "" {
		cfg.Email = flagEmail
	}
	if flagPassword != "" {
		cfg.Password = flagPassword
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = log.ParseLevel(cfg.LogLevel)
	logCfg.Format = log.ParseFormat(cfg.LogFormat)
	log.SetDefaultLogger(log.New(logCfg))

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	s := store.New(api.NewClient(cfg.APIURL), log.DefaultLogger())
	return tui.Run(s)
}
