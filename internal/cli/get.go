package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satelliteqe/roboconf/config"
	"github.com/satelliteqe/roboconf/pkg/propquery"
)

var getCmd = &cobra.Command{
	Use:   "get FILE KEY",
	Short: "Print one effective configuration value",
	Long: `Get prints the effective value of a dotted section.key property, e.g.

  roboconf get robottelo.properties main.server.hostname

The effective value has defaults applied, ROBOTTELO_* environment
overrides merged and the {server_hostname} placeholder substituted.
Use --raw for the literal file value instead.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		doc, err := config.Load(args[0])
		if err != nil {
			return err
		}
		key := args[1]

		if raw {
			section, name, ok := strings.Cut(key, ".")
			if !ok {
				return fmt.Errorf("invalid key %q: expected section.key", key)
			}
			value, ok := doc.Raw(section, name)
			if !ok {
				return fmt.Errorf("key not present in file: %s", key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		}

		cfg, err := doc.Snapshot()
		if err != nil {
			return err
		}
		data, err := json.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error encoding configuration: %w", err)
		}

		value, err := propquery.Lookup(string(data), key)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

func init() {
	// Add flags to get command
	getCmd.Flags().Bool("raw", false, "Print the literal file value without defaults or substitution")
}
