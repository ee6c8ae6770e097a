package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kjourdan1/fsdist/internal/config"
	"github.com/kjourdan1/fsdist/internal/distributor"
	"github.com/kjourdan1/fsdist/internal/exitcode"
	"github.com/kjourdan1/fsdist/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the distributor configuration",
	Long: `Runs the validation suite for a distributor config file:

  1. JSON Schema validation
  2. Distributor construction (paths normalization)
  3. Destination checks against --input (if given): each missing
     directory is a warning, or an error when create_parents is off

Used in CI as a gate before distribute.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var (
	validateStrict bool
	validateInput  string
)

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "fail on warnings")
	validateCmd.Flags().StringVar(&validateInput, "input", "", "input config path used to resolve destinations")

	rootCmd.AddCommand(validateCmd)
}

type check struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := configPath()

	cfg, err := config.Load(path)
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("loading config %q: %w", path, err))
	}

	schemaResult, err := config.Validate(cfg)
	if err != nil {
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("schema validation error: %w", err))
	}

	checks := make([]check, 0, 8)

	if schemaResult.Valid {
		checks = append(checks, check{Name: "schema", Status: "pass", Message: "config matches schema"})
	} else {
		for _, e := range schemaResult.Errors {
			checks = append(checks, check{Name: "schema", Status: "error", Message: fmt.Sprintf("%s: %s", e.Field, e.Description)})
		}
	}

	d, err := distributor.New(cfg, nil)
	if err != nil {
		checks = append(checks, check{Name: "distributor", Status: "error", Message: err.Error()})
	} else {
		checks = append(checks, destinationChecks(d, validateInput)...)
	}

	errorsCount := 0
	warningsCount := 0
	for _, c := range checks {
		switch c.Status {
		case "error":
			errorsCount++
		case "warning":
			warningsCount++
		}
	}

	if jsonOutput {
		output.JSON(map[string]interface{}{
			"config":   path,
			"checks":   checks,
			"errors":   errorsCount,
			"warnings": warningsCount,
		})
	} else {
		w := cmd.ErrOrStderr()
		fmt.Fprintf(w, "🔎 Validating: %s\n\n", path)
		for _, c := range checks {
			icon := "✅"
			if c.Status == "warning" {
				icon = "⚠️"
			}
			if c.Status == "error" {
				icon = "❌"
			}
			fmt.Fprintf(w, "  %s %s: %s\n", icon, c.Name, c.Message)
		}
		fmt.Fprintln(w)
	}

	if errorsCount > 0 {
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("%d validation error(s) found", errorsCount))
	}
	if warningsCount > 0 && validateStrict {
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("%d warning(s) found (strict mode)", warningsCount))
	}

	if !jsonOutput {
		color.New(color.FgGreen, color.Bold).Fprintf(cmd.ErrOrStderr(), "✅ Validation passed (%d checks, %d warnings)\n", len(checks), warningsCount)
	}
	return nil
}

func destinationChecks(d *distributor.Distributor, input string) []check {
	paths := d.Paths()
	if len(paths) == 0 {
		return []check{{Name: "paths", Status: "warning", Message: "paths is an empty list; distribute will write nothing"}}
	}

	checks := []check{{
		Name:    "paths",
		Status:  "pass",
		Message: fmt.Sprintf("%d destination(s), create_parents=%t", len(paths), d.CreateParents()),
	}}
	if input == "" {
		return checks
	}

	dests, err := d.Destinations(input)
	if err != nil {
		return append(checks, check{Name: "destinations", Status: "error", Message: err.Error()})
	}
	for _, dest := range dests {
		info, err := os.Stat(dest)
		switch {
		case err == nil && info.IsDir():
			checks = append(checks, check{Name: "destination", Status: "pass", Message: dest})
		case err == nil:
			checks = append(checks, check{Name: "destination", Status: "error", Message: dest + " is not a directory"})
		case errors.Is(err, os.ErrNotExist) && d.CreateParents():
			checks = append(checks, check{Name: "destination", Status: "warning", Message: dest + " will be created"})
		case errors.Is(err, os.ErrNotExist):
			checks = append(checks, check{Name: "destination", Status: "error", Message: (&distributor.DestinationNotExistError{Destination: dest}).Error()})
		default:
			checks = append(checks, check{Name: "destination", Status: "error", Message: err.Error()})
		}
	}
	return checks
}
