package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/pystub/am"
	"github.com/teranos/pystub/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Show pystub configuration",
	Long: `am - Show the effective pystub configuration ("I am")

Examples:
  pystub am show                  # Show configuration as TOML
  pystub am show --format yaml    # Show configuration as YAML
  pystub am where                 # Show which config file is used`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the effective configuration after flags, environment and config file are merged",
	RunE:  runAmShow,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE: func(cmd *cobra.Command, args []string) error {
		if file := am.GetViper().ConfigFileUsed(); file != "" {
			fmt.Fprintln(cmd.OutOrStdout(), file)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "no %s found, using defaults\n", am.ConfigFileName)
		return nil
	},
}

var configFormat string

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amWhereCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	data, err := marshalConfig(cfg, configFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func marshalConfig(c *am.Config, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to JSON")
		}
		return append(data, '\n'), nil

	case "yaml":
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to YAML")
		}
		return append([]byte("# pystub configuration\n"), data...), nil

	case "toml":
		data, err := toml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to TOML")
		}
		return append([]byte("# pystub configuration\n"), data...), nil

	default:
		return nil, errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
}
