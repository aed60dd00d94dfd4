package prompt

import (
	"context"
	"fmt"
	"slices"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🖥️ Terminal prompts interactively with pterm. Ctrl-C cancels the prompt
// instead of exiting the process.
type Terminal struct{}

var _ Prompter = (*Terminal)(nil)

// NewTerminal creates a terminal prompter
func NewTerminal() *Terminal {
	return &Terminal{}
}

func inputLabel(opts InputOptions) string {
	if opts.Placeholder == "" {
		return opts.Prompt
	}
	return fmt.Sprintf("%s (e.g. %s)", opts.Prompt, opts.Placeholder)
}

// Input implements Prompter.Input
func (p *Terminal) Input(ctx context.Context, opts InputOptions) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, errors.Errorf("prompting for %s: %w", opts.ID, err)
	}

	interrupted := false
	value, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText(inputLabel(opts)).
		WithOnInterruptFunc(func() { interrupted = true }).
		Show()
	if err != nil {
		return "", false, errors.Errorf("prompting for %s: %w", opts.ID, err)
	}
	if interrupted {
		zerolog.Ctx(ctx).Debug().Str("prompt", opts.ID).Msg("input prompt cancelled")
		return "", false, nil
	}

	return value, true, nil
}

// Select implements Prompter.Select
func (p *Terminal) Select(ctx context.Context, opts SelectOptions) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, errors.Errorf("prompting for %s: %w", opts.ID, err)
	}
	if len(opts.Options) == 0 {
		return "", false, errors.Errorf("prompting for %s: no options", opts.ID)
	}

	interrupted := false
	choice, err := pterm.DefaultInteractiveSelect.
		WithDefaultText(opts.Prompt).
		WithOptions(opts.Options).
		WithOnInterruptFunc(func() { interrupted = true }).
		Show()
	if err != nil {
		return "", false, errors.Errorf("prompting for %s: %w", opts.ID, err)
	}
	if interrupted || !slices.Contains(opts.Options, choice) {
		zerolog.Ctx(ctx).Debug().Str("prompt", opts.ID).Msg("select prompt cancelled")
		return "", false, nil
	}

	return choice, true, nil
}
