// ABOUTME: Root command wiring configuration, logging and the connector client
// ABOUTME: Every subcommand shares the loaded config and a stderr logger

package main

import (
	"fmt"
	"io"
	"os"

	"newsapi-connector/connector"
	"newsapi-connector/infrastructure/logger/structured"
	"newsapi-connector/pkg/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands
type app struct {
	out io.Writer

	secretsPath string
	logLevel    string

	cfg    *config.Config
	logger *structured.Logger

	// newClient is replaced in tests
	newClient func(opts ...connector.Option) (*connector.Client, error)
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{
		out:       out,
		newClient: connector.New,
	}

	root := &cobra.Command{
		Use:           "newsapi",
		Short:         "Cached NewsAPI client",
		Long:          "newsapi searches NewsAPI articles and top headlines, caching every outcome for a TTL.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.load()
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.secretsPath, "secrets", "secrets.toml", "path to an optional secrets file (TOML, YAML or JSON)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newHeadlinesCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newVersionCmd(a))

	return root
}

// load reads .env, the environment and the secrets file, then builds the logger
func (a *app) load() error {
	// A missing .env file is normal
	_ = godotenv.Load()

	cfg, err := config.Load(a.secretsPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.logger = structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	return nil
}

// client builds a connector from the loaded configuration. Configuration
// faults such as a missing API key surface here.
func (a *app) client() (*connector.Client, error) {
	return a.newClient(
		connector.WithConfig(a.cfg),
		connector.WithLogger(a.logger),
	)
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "newsapi %s (commit: %s)\n", version, commit)
		},
	}
}
