package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "roboconf",
	Short:   "Manage robottelo properties files",
	Version: version,
	Long: `Roboconf manages the robottelo.properties configuration file of the
robottelo test framework: generate the sample template, validate an
edited file against the recognized schema, look up effective values,
and export the configuration as JSON or YAML.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, print help
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	// Add subcommands to root command
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(convertCmd)
}
