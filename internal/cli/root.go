package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jvs-project/uuidgen/pkg/color"
	"github.com/jvs-project/uuidgen/pkg/config"
	"github.com/jvs-project/uuidgen/pkg/logging"
	"github.com/jvs-project/uuidgen/pkg/metrics"
)

var (
	jsonOutput bool
	configPath string
	logLevel   string
	noColor    bool

	// cfg is loaded once per invocation by the root pre-run hook.
	cfg = config.Default()

	rootCmd = &cobra.Command{
		Use:   "uuidgen",
		Short: "uuidgen - random version 4 UUIDs",
		Long: `uuidgen generates RFC 4122 / RFC 9562 version 4 UUIDs from the
operating system's secure random source, decodes existing identifiers and
serves generation over NATS and HTTP.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/uuidgen/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setup loads configuration and applies it to the logger, color and metrics.
func setup(cmd *cobra.Command, args []string) error {
	color.Init(noColor)
	if noColor {
		color.Disable()
	}

	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if cfg.OutputFormat == "json" {
		jsonOutput = true
	}

	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	logger := logging.NewLogger(lvl)
	if cfg.Logging.Format != "" {
		format, err := logging.ParseFormat(cfg.Logging.Format)
		if err != nil {
			return err
		}
		logger.SetFormat(format)
	}
	logging.SetGlobal(logger)

	if cfg.Metrics.Enabled {
		metrics.Init()
	}
	return nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmtErr("%v", err)
		os.Exit(1)
	}
}

// outputJSON prints v as indented JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
