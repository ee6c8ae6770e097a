// Package cmd implements the Cobra-based CLI for fsdist.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kjourdan1/fsdist/internal/config"
	"github.com/kjourdan1/fsdist/internal/output"
)

var (
	cfgFile    string
	verbosity  int
	jsonOutput bool // --json flag for machine-readable output
	ciMode     bool
)

// rootCmd is the top-level command for fsdist.
var rootCmd = &cobra.Command{
	Use:   "fsdist",
	Short: "Filesystem distributor for generated configuration files",
	Long: `fsdist copies a generated configuration file into one or more
directories on the local filesystem.

Destinations are read from a distributor config file (fsdist.yaml or
fsdist.hcl) and resolved relative to the directory of the config the
output was generated from:

  paths:
    - out
    - ../shared/conf
  create_parents: true

Workflow: init → validate → distribute`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.Init(verbosity > 0, jsonOutput)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "distributor config file (default: fsdist.yaml or fsdist.hcl)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v, -vv)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON (machine-readable)")
	rootCmd.PersistentFlags().BoolVar(&ciMode, "ci", false, "strict non-interactive mode (fails when required inputs are missing)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("ci", rootCmd.PersistentFlags().Lookup("ci"))
}

func effectiveCIMode() bool {
	if ciMode {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(os.Getenv("CI")), "true")
}

// discoveredConfig is the config file found by initConfig when --config is
// not given.
var discoveredConfig string

// initConfig locates the distributor config file. The file itself is parsed
// by the config package, which keeps keys that are present with null values.
func initConfig() {
	viper.SetEnvPrefix("FSDIST")
	viper.AutomaticEnv()

	discoveredConfig = ""
	if viper.GetString("config") != "" {
		return
	}

	finder := viper.New()
	finder.SetConfigName("fsdist")
	finder.AddConfigPath(".")
	err := finder.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return
	}
	// Parse errors from viper are ignored; config.Load reports them.
	discoveredConfig = finder.ConfigFileUsed()
	if verbosity > 0 {
		fmt.Fprintln(os.Stderr, "Using config file:", discoveredConfig)
	}
}

// configPath returns the distributor config file to use.
func configPath() string {
	if p := strings.TrimSpace(viper.GetString("config")); p != "" {
		return p
	}
	if discoveredConfig != "" {
		return discoveredConfig
	}
	return config.DefaultFileName
}
