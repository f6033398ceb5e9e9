package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/satelliteqe/roboconf/config"
	"github.com/satelliteqe/roboconf/pkg/jsonschema"
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Export the effective configuration as JSON or YAML",
	Long: `Convert loads FILE, applies defaults, environment overrides and
placeholder substitution, and writes the effective configuration in the
chosen format. With --check the JSON form is also validated against the
built-in document schema.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("output")
		check, _ := cmd.Flags().GetBool("check")

		doc, err := config.Load(args[0])
		if err != nil {
			return err
		}
		cfg, err := doc.Snapshot()
		if err != nil {
			return err
		}

		jsonData, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding configuration: %w", err)
		}

		if check {
			validator, err := jsonschema.NewValidator(config.DocumentSchema())
			if err != nil {
				return err
			}
			errs, err := validator.Validate(jsonData)
			if err != nil {
				return err
			}
			if len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "schema violation: %v\n", e)
				}
				return fmt.Errorf("%s does not conform to the document schema", args[0])
			}
		}

		var data []byte
		switch format {
		case "json":
			data = append(jsonData, '\n')
		case "yaml", "yml":
			data, err = yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("error encoding configuration: %w", err)
			}
		default:
			return fmt.Errorf("unknown format %q, must be json or yaml", format)
		}

		if outPath == "" {
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("error writing %s: %w", outPath, err)
		}
		return nil
	},
}

func init() {
	// Add flags to convert command
	convertCmd.Flags().StringP("format", "f", "json", "Output format (json or yaml)")
	convertCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	convertCmd.Flags().Bool("check", false, "Validate the exported document against the built-in schema")
}
