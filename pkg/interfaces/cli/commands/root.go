package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vsinha/pos/pkg/infrastructure/config"
	"github.com/vsinha/pos/pkg/infrastructure/logging"
)

// globalOptions are the persistent flags shared by every subcommand. Flags
// that were set explicitly override the POS_ environment.
type globalOptions struct {
	backend  string
	apiURL   string
	logLevel string
	verbose  bool
}

// NewRootCommand assembles the pos command tree
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "pos",
		Short: "Point-of-sale checkout register",
		Long: `pos runs a checkout session against a catalog, customer list and
sales store. The store is either files loaded into memory or the POS API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.backend, "backend", "", "Backend: memory or rest (overrides POS_BACKEND)")
	flags.StringVar(&opts.apiURL, "api-url", "", "POS API base URL (overrides POS_API_BASE_URL)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides POS_LOG_LEVEL)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newCheckoutCommand(opts),
		newHistoryCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolve merges environment configuration with explicit flags and builds the logger
func (o *globalOptions) resolve(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = config.Backend(o.backend)
	}
	if flags.Changed("api-url") {
		cfg.APIBaseURL = o.apiURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	logger, err := logging.New(logging.Config{
		ServiceName: "pos",
		Env:         string(cfg.AppEnv),
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}
