package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/kjourdan1/fsdist/internal/config"
	"github.com/kjourdan1/fsdist/internal/distributor"
	"github.com/kjourdan1/fsdist/internal/exitcode"
	"github.com/kjourdan1/fsdist/internal/output"
	"github.com/kjourdan1/fsdist/internal/plugin"
)

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "Write a generated file to every configured destination",
	Long: `Writes rendered content to <dir of --input>/<path>/<file name> for each
destination path of the distributor config, in order.

Content is read from --data, --data-file, or stdin. The first failing
destination stops the run; files already written are kept.

Examples:
  fsdist distribute --input proj/config.nb --file-name app.conf --data-file rendered.conf
  render | fsdist distribute --input proj/config.nb --file-name app.conf
  fsdist distribute --input proj/config.nb --path out --path ../shared --create-parents --dry-run`,
	Args: cobra.NoArgs,
	RunE: runDistribute,
}

var (
	distInput         string
	distFileName      string
	distData          string
	distDataFile      string
	distPaths         []string
	distCreateParents bool
	distDryRun        bool
)

func init() {
	distributeCmd.Flags().StringVar(&distInput, "input", "", "path of the config the output was generated from (required)")
	distributeCmd.Flags().StringVar(&distFileName, "file-name", "", "output file name (default: base name of --input)")
	distributeCmd.Flags().StringVar(&distData, "data", "", "rendered content to write")
	distributeCmd.Flags().StringVar(&distDataFile, "data-file", "", "read rendered content from file ('-' for stdin)")
	distributeCmd.Flags().StringArrayVar(&distPaths, "path", nil, "destination path, repeatable (replaces paths from the config file)")
	distributeCmd.Flags().BoolVar(&distCreateParents, "create-parents", false, "create missing destination directories (env: FSDIST_CREATE_PARENTS)")
	distributeCmd.Flags().BoolVar(&distDryRun, "dry-run", false, "resolve and check destinations without writing to disk")

	rootCmd.AddCommand(distributeCmd)
}

func runDistribute(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(distInput) == "" {
		return exitcode.Wrap(exitcode.Validation, output.NewErrorWithFix(
			"--input is required",
			"Pass the path of the config file the output was generated from",
		))
	}

	cfg, err := loadDistributorConfig(cmd)
	if err != nil {
		return err
	}

	data, err := readDistributeData(cmd)
	if err != nil {
		return exitcode.Wrap(exitcode.IO, err)
	}

	fileName := distFileName
	if fileName == "" {
		fileName = filepath.Base(distInput)
	}

	var opts []distributor.Option
	if distDryRun {
		// Writes land in memory on top of a read-only view of the disk.
		opts = append(opts, distributor.WithFs(afero.NewCopyOnWriteFs(
			afero.NewReadOnlyFs(afero.NewOsFs()),
			afero.NewMemMapFs(),
		)))
	}

	p, err := plugin.Default(output.Logger(), opts...).New(plugin.FilesystemName, cfg, nil)
	if err != nil {
		return wrapDistributorErr(err)
	}
	d, _ := plugin.Unwrap(p)

	dests, err := d.Destinations(distInput)
	if err != nil {
		return err
	}
	files := make([]string, len(dests))
	for i, dest := range dests {
		files[i] = filepath.Join(dest, fileName)
	}

	output.Debug("distributing", "input", distInput, "file", fileName, "destinations", len(dests), "create_parents", d.CreateParents())

	for _, f := range files {
		output.Step("writing " + f)
	}
	info := distributor.Info{Data: data, FileName: fileName, InputPath: distInput}
	if err := p.Distribute(info); err != nil {
		return wrapDistributorErr(err)
	}

	if jsonOutput {
		output.JSON(map[string]interface{}{
			"dryRun": distDryRun,
			"files":  files,
		})
		return nil
	}

	if len(files) == 0 {
		output.Warn("no destinations configured; nothing was written")
		return nil
	}

	title := fmt.Sprintf("Wrote %s to %d destination(s)", fileName, len(files))
	if distDryRun {
		title = fmt.Sprintf("Dry-run: %s would be written to %d destination(s)", fileName, len(files))
	}
	fmt.Fprint(cmd.ErrOrStderr(), output.Section(title, files))
	color.New(color.FgGreen, color.Bold).Fprintln(cmd.ErrOrStderr(), "✅ Distribution complete")
	return nil
}

// loadDistributorConfig reads the config file and applies --path and
// --create-parents overrides. Without a config file, --path is required.
func loadDistributorConfig(cmd *cobra.Command) (distributor.Config, error) {
	path := configPath()

	var cfg distributor.Config
	if fileExists(path) {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, exitcode.Wrap(exitcode.Validation, fmt.Errorf("loading config %q: %w", path, err))
		}
		cfg = loaded
	} else if len(distPaths) == 0 {
		return nil, exitcode.Wrap(exitcode.Validation, output.NewErrorWithFix(
			fmt.Sprintf("config file %s not found", path),
			"Run: fsdist init, or pass destinations with --path",
		))
	} else {
		cfg = distributor.Config{}
	}

	if cmd.Flags().Changed("path") {
		paths := make([]interface{}, len(distPaths))
		for i, p := range distPaths {
			paths[i] = p
		}
		cfg[distributor.KeyPaths] = paths
	}

	if cmd.Flags().Changed("create-parents") {
		cfg[distributor.KeyCreateParents] = distCreateParents
	} else if env, ok := os.LookupEnv("FSDIST_CREATE_PARENTS"); ok {
		v, err := cast.ToBoolE(strings.TrimSpace(env))
		if err != nil {
			return nil, exitcode.Wrap(exitcode.Validation, fmt.Errorf("invalid FSDIST_CREATE_PARENTS %q: %w", env, err))
		}
		cfg[distributor.KeyCreateParents] = v
	}
	return cfg, nil
}

func readDistributeData(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("data") {
		return distData, nil
	}
	if distDataFile != "" && distDataFile != "-" {
		b, err := os.ReadFile(distDataFile)
		if err != nil {
			return "", fmt.Errorf("reading data file: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading data from stdin: %w", err)
	}
	return string(b), nil
}

// wrapDistributorErr attaches a fix hint to distributor errors while keeping
// them reachable through errors.As for exit code mapping.
func wrapDistributorErr(err error) error {
	var notExist *distributor.DestinationNotExistError
	if errors.As(err, &notExist) {
		return output.WrapErrorWithFix(err, "distribution failed",
			"Create "+notExist.Destination+" or set create_parents: true (or pass --create-parents)")
	}
	if errors.Is(err, distributor.ErrNoPaths) {
		return output.WrapErrorWithFix(err, "invalid distributor config",
			"Add a paths entry to "+configPath())
	}
	return err
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
