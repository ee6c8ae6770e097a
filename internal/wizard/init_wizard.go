package wizard

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/kjourdan1/fsdist/internal/config"
	"github.com/kjourdan1/fsdist/internal/distributor"
)

// Format choices offered by the init wizard.
const (
	FormatYAML = "yaml"
	FormatHCL  = "hcl"
)

// InitConfig captures all inputs collected by the init wizard.
type InitConfig struct {
	Paths         []string
	CreateParents bool
	Format        string
}

// ToConfig converts wizard input to a distributor configuration.
func (c InitConfig) ToConfig() distributor.Config {
	paths := c.Paths
	if len(paths) == 0 {
		paths = []string{distributor.DefaultPath}
	}
	return distributor.Config{
		distributor.KeyPaths:         paths,
		distributor.KeyCreateParents: c.CreateParents,
	}
}

// FileName returns the config file name matching the chosen format.
func (c InitConfig) FileName() string {
	if c.Format == FormatHCL {
		return "fsdist.hcl"
	}
	return config.DefaultFileName
}

// InitWizard drives the interactive init flow.
type InitWizard struct {
	prompter Prompter
}

// NewInitWizard returns an init wizard; if p is nil, survey is used.
func NewInitWizard(p Prompter) *InitWizard {
	if p == nil {
		p = NewSurveyPrompter()
	}
	return &InitWizard{prompter: p}
}

// Run collects wizard input in the required order.
func (w *InitWizard) Run() (*InitConfig, error) {
	cfg := &InitConfig{}

	raw, err := w.prompter.Input(
		"Destination directories (comma separated, relative to the input config)",
		distributor.DefaultPath,
		survey.ComposeValidators(ValidateNonEmpty, ValidatePathList),
	)
	if err != nil {
		return nil, handlePromptErr(err)
	}
	cfg.Paths = SplitPaths(raw)

	cfg.CreateParents, err = w.prompter.Confirm("Create missing destination directories?", false)
	if err != nil {
		return nil, handlePromptErr(err)
	}

	cfg.Format, err = w.prompter.Select("Config file format", []string{FormatYAML, FormatHCL}, FormatYAML)
	if err != nil {
		return nil, handlePromptErr(err)
	}
	if cfg.Format == "" {
		cfg.Format = FormatYAML
	}

	return cfg, nil
}

func handlePromptErr(err error) error {
	if errors.Is(err, ErrCancelled) {
		return fmt.Errorf("wizard cancelled: %w", ErrCancelled)
	}
	return err
}
