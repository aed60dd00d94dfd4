package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/enumerize/cmd/enumerize/opts"
	"github.com/walteh/enumerize/pkg/config"
	"github.com/walteh/enumerize/pkg/enumgen"
	"github.com/walteh/enumerize/pkg/operation"
	"github.com/walteh/enumerize/pkg/prompt"
	"gitlab.com/tozd/go/errors"
)

// generateFlags are the flags shared by every enumerize command
type generateFlags struct {
	name     string
	keys     string
	sort     string
	tabSize  int
	onCancel string
	dryRun   bool
	noInput  bool
	backup   bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "enum name, skips the name prompt")
	cmd.Flags().StringVarP(&f.keys, "keys", "k", "", "data keys separated by commas or spaces, skips the keys prompt")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort mode (asc, desc, none), skips the sort prompt")
	cmd.Flags().IntVarP(&f.tabSize, "tab-size", "t", 0, "spaces per indentation level (default from config)")
	cmd.Flags().StringVar(&f.onCancel, "on-cancel", "", "what a cancelled prompt does: abort or default (default from config)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print the generated code instead of replacing the text")
	cmd.Flags().BoolVar(&f.noInput, "no-input", false, "never prompt, fail when a value is missing")
	cmd.Flags().BoolVar(&f.backup, "backup", false, "write <file>.bak before replacing (default from config)")
}

// presets returns the prompt answers given on the command line
func (f *generateFlags) presets(cmd *cobra.Command) (map[string]string, error) {
	var name, keys *string
	var sort *enumgen.SortMode

	if cmd.Flags().Changed("name") {
		name = &f.name
	}
	if cmd.Flags().Changed("keys") {
		keys = &f.keys
	}
	if cmd.Flags().Changed("sort") {
		mode, err := enumgen.ParseSortMode(f.sort)
		if err != nil {
			return nil, errors.Errorf("--sort: %w", err)
		}
		sort = &mode
	}

	return operation.PresetAnswers(name, keys, sort), nil
}

// prompter layers the flag answers over the interactive prompter
func (f *generateFlags) prompter(cmd *cobra.Command, root *opts.RootOpts) (prompt.Prompter, error) {
	answers, err := f.presets(cmd)
	if err != nil {
		return nil, err
	}
	if f.noInput {
		// Without prompts the config supplies keys and sort
		fillFromConfig(answers, root.Config)
		return prompt.NewPreset(answers, nil), nil
	}
	return prompt.NewPreset(answers, root.Interactive()), nil
}

// options merges flags over the loaded config
func (f *generateFlags) options(cmd *cobra.Command, cfg *config.Config) (operation.Options, error) {
	o := operation.Options{
		TabSize:  cfg.TabSize,
		OnCancel: cfg.OnCancel,
		DryRun:   f.dryRun,
	}
	if cmd.Flags().Changed("tab-size") {
		if f.tabSize < 1 {
			return operation.Options{}, errors.Errorf("--tab-size must be at least 1, got %d", f.tabSize)
		}
		o.TabSize = f.tabSize
	}
	if cmd.Flags().Changed("on-cancel") {
		o.OnCancel = config.CancelPolicy(f.onCancel)
	}
	return o, nil
}

func fillFromConfig(answers map[string]string, cfg *config.Config) {
	if _, ok := answers[operation.PromptKeys]; !ok {
		answers[operation.PromptKeys] = cfg.DataKeys
	}
	if _, ok := answers[operation.PromptSort]; !ok {
		answers[operation.PromptSort] = cfg.SortMode().Label()
	}
}

func (f *generateFlags) wantBackup(cmd *cobra.Command, cfg *config.Config) bool {
	if cmd.Flags().Changed("backup") {
		return f.backup
	}
	return cfg.Backup
}
