package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satelliteqe/roboconf/config"
)

var initCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write the sample properties template",
	Long: `Write robottelo.properties.sample to PATH (default
robottelo.properties) so it can be edited with environment-specific
values. An existing file is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "robottelo.properties"
		if len(args) == 1 {
			path = args[0]
		}

		if err := config.WriteSample(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
		return nil
	},
}
