package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/rpanet/config"
	"github.com/katalvlaran/rpanet/logging"
	"github.com/katalvlaran/rpanet/metrics"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "rpanet",
		Short: "Directed weighted preferential-attachment network generator",
		Long: `rpanet grows directed, weighted networks step by step. Each edge picks
one of five attachment scenarios, endpoints are drawn in proportion to
strength-based preferences, and optional group reciprocity adds reverse edges.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to the YAML run configuration")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (env RPANET_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: console or json (env RPANET_LOG_FORMAT)")

	cmd.AddCommand(newGenerateCmd(opts), newValidateCmd(opts), newVersionCmd())
	return cmd
}

// loadConfig reads the configuration file and RPANET_* overrides.
func (o *rootOptions) loadConfig() (config.Config, error) {
	return config.Load(o.configPath)
}

// logger builds the process logger. Flags win over the configuration, which
// already carries RPANET_LOG_LEVEL and RPANET_LOG_FORMAT.
func (o *rootOptions) logger(cfg config.Config, w io.Writer, reg *metrics.Registry) (*zap.Logger, error) {
	lc := logging.DefaultConfig()
	lc.Output = zapcore.AddSync(w)
	lc.Metrics = reg
	for _, v := range []string{cfg.Log.Level, o.logLevel} {
		if v != "" {
			lc.Level = v
		}
	}
	for _, v := range []string{cfg.Log.Format, o.logFormat} {
		if v != "" {
			lc.Format = v
		}
	}
	return logging.NewLogger(lc)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "rpanet "+version)
		},
	}
}
