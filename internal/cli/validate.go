package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/satelliteqe/roboconf/config"
	"github.com/satelliteqe/roboconf/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a properties file against the recognized schema",
	Long: `Validate checks every recognized key of FILE: required keys must be
set, enumerated keys must hold one of their allowed values, boolean keys
accept only 0 or 1, and URL keys must parse. All problems are reported
at once and the command exits non-zero if any were found. Unknown keys
are reported as warnings only.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checkPaths, _ := cmd.Flags().GetBool("check-paths")
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")
		if !noColor && !output.IsTerminal(os.Stdout) {
			noColor = true
		}

		doc, err := config.Load(args[0])
		if err != nil {
			return err
		}

		errs := doc.Validate(config.ValidateOptions{CheckPaths: checkPaths})
		unknown := doc.UnknownKeys()

		reporter := output.NewReporter(noColor)
		fmt.Fprint(cmd.OutOrStdout(), reporter.FormatReport(args[0], errs, unknown))
		if verbose {
			fmt.Fprint(cmd.OutOrStdout(), reporter.FormatProperties(doc.Properties()))
		}

		if len(errs) > 0 {
			return fmt.Errorf("%s is not a valid configuration", args[0])
		}
		return nil
	},
}

func init() {
	// Add flags to validate command
	validateCmd.Flags().Bool("check-paths", false, "Verify that filesystem-path values exist on this machine")
	validateCmd.Flags().BoolP("verbose", "v", false, "Also print the effective configuration")
	validateCmd.Flags().Bool("no-color", false, "Disable colored output")
}
