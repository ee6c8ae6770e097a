package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kjourdan1/fsdist/internal/config"
	"github.com/kjourdan1/fsdist/internal/exitcode"
	"github.com/kjourdan1/fsdist/internal/output"
	"github.com/kjourdan1/fsdist/internal/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a distributor config file",
	Long: `Creates fsdist.yaml (or fsdist.hcl with --format hcl).

Without --path, launches an interactive wizard. With --path (or in --ci
mode) the file is written from flags only.

Refuses to overwrite an existing file unless --force is specified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

var (
	initPaths         []string
	initCreateParents bool
	initFormat        string
	initForce         bool
)

func init() {
	initCmd.Flags().StringArrayVar(&initPaths, "path", nil, "destination path, repeatable")
	initCmd.Flags().BoolVar(&initCreateParents, "create-parents", false, "create missing destination directories")
	initCmd.Flags().StringVar(&initFormat, "format", wizard.FormatYAML, "config file format (yaml|hcl)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command) error {
	format := strings.ToLower(strings.TrimSpace(initFormat))
	if format != wizard.FormatYAML && format != wizard.FormatHCL {
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("invalid value for --format: %q (allowed: yaml, hcl)", initFormat))
	}

	var wizardCfg *wizard.InitConfig
	if cmd.Flags().Changed("path") || effectiveCIMode() {
		wizardCfg = &wizard.InitConfig{
			Paths:         initPaths,
			CreateParents: initCreateParents,
			Format:        format,
		}
	} else {
		var runErr error
		wizardCfg, runErr = wizard.NewInitWizard(nil).Run()
		if runErr != nil {
			if errors.Is(runErr, wizard.ErrCancelled) {
				output.Warn("init wizard cancelled")
				return nil
			}
			return fmt.Errorf("running init wizard: %w", runErr)
		}
	}

	target := strings.TrimSpace(viper.GetString("config"))
	if target == "" {
		target = wizardCfg.FileName()
	}
	if _, err := os.Stat(target); err == nil && !initForce {
		return exitcode.Wrap(exitcode.Validation, output.NewErrorWithFix(
			fmt.Sprintf("%s already exists", target),
			"Use --force to overwrite",
		))
	}

	cfg := wizardCfg.ToConfig()
	validation, err := config.Validate(cfg)
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if !validation.Valid {
		if jsonOutput {
			output.JSON(validation)
		}
		for _, v := range validation.Errors {
			output.Error(fmt.Sprintf("%s: %s", v.Field, v.Description))
		}
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("config validation failed"))
	}

	if err := config.Save(cfg, target); err != nil {
		return exitcode.Wrap(exitcode.IO, err)
	}

	if jsonOutput {
		output.JSON(map[string]interface{}{
			"file":   target,
			"config": cfg,
		})
		return nil
	}
	output.Success(fmt.Sprintf("Wrote %s", target))
	return nil
}
