package prompt

import (
	"context"
	"slices"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrNotAnswered is returned by a Preset without a fallback when a prompt has
// no preset answer.
var ErrNotAnswered = errors.Base("prompt has no preset answer")

// 📌 Preset answers prompts by ID from fixed values and defers the rest to
// Next. With a nil Next, unanswered prompts fail with ErrNotAnswered.
type Preset struct {
	Answers map[string]string
	Next    Prompter
}

var _ Prompter = (*Preset)(nil)

// NewPreset creates a preset prompter
func NewPreset(answers map[string]string, next Prompter) *Preset {
	if answers == nil {
		answers = map[string]string{}
	}
	return &Preset{Answers: answers, Next: next}
}

// Input implements Prompter.Input
func (p *Preset) Input(ctx context.Context, opts InputOptions) (string, bool, error) {
	if v, ok := p.Answers[opts.ID]; ok {
		zerolog.Ctx(ctx).Debug().Str("prompt", opts.ID).Str("value", v).Msg("using preset answer")
		return v, true, nil
	}
	if p.Next == nil {
		return "", false, errors.Errorf("%s: %w", opts.ID, ErrNotAnswered)
	}
	return p.Next.Input(ctx, opts)
}

// Select implements Prompter.Select. A preset answer must be one of the options.
func (p *Preset) Select(ctx context.Context, opts SelectOptions) (string, bool, error) {
	if v, ok := p.Answers[opts.ID]; ok {
		if !slices.Contains(opts.Options, v) {
			return "", false, errors.Errorf("%s: preset answer %q is not one of %q", opts.ID, v, opts.Options)
		}
		zerolog.Ctx(ctx).Debug().Str("prompt", opts.ID).Str("value", v).Msg("using preset answer")
		return v, true, nil
	}
	if p.Next == nil {
		return "", false, errors.Errorf("%s: %w", opts.ID, ErrNotAnswered)
	}
	return p.Next.Select(ctx, opts)
}
