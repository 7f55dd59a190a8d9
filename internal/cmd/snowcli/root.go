package snowcli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshradin/data-eater/internal/config"
	logpkg "github.com/joshradin/data-eater/pkg/log"
)

// Root carries the configuration and logger resolved after flag parsing.
// Subcommands read it at run time, so the global flags apply before any
// command body executes.
type Root struct {
	cfg    config.Config
	logger logpkg.Logger
}

// NewRootCommand constructs the data-eater root command with its global
// flags and subcommands.
func NewRootCommand() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

func newRootCommand() (*cobra.Command, *Root) {
	r := &Root{cfg: config.Default(), logger: logpkg.NewLogger()}
	cmd := &cobra.Command{
		Use:   "data-eater",
		Short: "data-eater identifier tooling",
		Long:  "data-eater generates and inspects 64-bit snowflake identifiers.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.resolve(cmd)
		},
	}
	cmd.PersistentFlags().String("config", "", "Config file, JSON or YAML (default: standard locations)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().String("log-format", "", "Log format: text|json")
	cmd.AddCommand(
		newGenerateCommand(r),
		newInspectCommand(),
		newMachineCommand(),
	)
	return cmd, r
}

// resolve loads configuration with flag > env > file precedence and rebuilds
// the logger from the result.
func (r *Root) resolve(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("DATA_EATER_CONFIG")
	}
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	config.FromEnv(&cfg)
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	r.cfg = cfg
	r.logger = buildLogger(cfg)
	return nil
}

func buildLogger(cfg config.Config) logpkg.Logger {
	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if cfg.LogFormat == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	return logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)
}
