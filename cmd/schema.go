package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kjourdan1/fsdist/internal/config"
	"github.com/kjourdan1/fsdist/internal/exitcode"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Export the distributor config JSON Schema",
	Long: `Schema tooling for the distributor configuration file.

Examples:
  fsdist schema export                      # print schema to stdout
  fsdist schema export --output schema.json # write to file`,
}

var schemaExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the distributor config JSON Schema",
	RunE:  runSchemaExport,
}

var schemaOutputFile string

func init() {
	schemaExportCmd.Flags().StringVarP(&schemaOutputFile, "output", "o", "", "write schema to file instead of stdout")

	schemaCmd.AddCommand(schemaExportCmd)
	rootCmd.AddCommand(schemaCmd)
}

func runSchemaExport(cmd *cobra.Command, args []string) error {
	data := config.GetSchema()
	if len(data) == 0 {
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("no embedded schema available"))
	}

	if schemaOutputFile != "" {
		outPath, err := filepath.Abs(schemaOutputFile)
		if err != nil {
			return exitcode.Wrap(exitcode.IO, err)
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return exitcode.Wrap(exitcode.IO, err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return exitcode.Wrap(exitcode.IO, err)
		}
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✅ Schema written to %s\n", outPath)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
