package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvs-project/uuidgen/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config <command>",
	Short: "Manage uuidgen configuration",
	Long: `Manage uuidgen configuration stored in $XDG_CONFIG_HOME/uuidgen/config.yaml
(or the file given with --config).

Configuration options:
  output_format     - Default output format (text, json)
  logging.level     - Log level (debug, info, warn, error)
  logging.format    - Log line format (json, text)
  nats.url          - NATS server URL used by serve
  nats.subject      - Subject prefix for the NATS responder
  http.addr         - Listen address for the HTTP API
  metrics.enabled   - Collect Prometheus metrics (true, false)

Available commands:
  show              - Show current configuration
  set <key> <value> - Set a configuration value
  get <key>         - Get a configuration value`,
	DisableFlagsInUseLine: true,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return outputJSON(cfg)
		}

		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Println("# uuidgen configuration")
		fmt.Printf("# Location: %s\n\n", path)
		for _, key := range config.Keys() {
			value, err := cfg.Get(key)
			if err != nil {
				return err
			}
			if value == "" {
				value = "(not set)"
			}
			fmt.Printf("%s: %s\n", key, value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

Examples:
  uuidgen config set output_format json
  uuidgen config set logging.level debug
  uuidgen config set nats.url nats://127.0.0.1:4222
  uuidgen config set metrics.enabled false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		// Reload so values forced by flags are not persisted.
		current, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		key, value := args[0], args[1]
		if err := current.Set(key, value); err != nil {
			return fmt.Errorf("set config: %w", err)
		}
		if err := config.Save(path, current); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value.

Examples:
  uuidgen config get output_format
  uuidgen config get nats.subject`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value, err := cfg.Get(key)
		if err != nil {
			return fmt.Errorf("get config: %w", err)
		}
		if value == "" {
			fmt.Printf("%s (not set)\n", key)
		} else {
			fmt.Println(value)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}
