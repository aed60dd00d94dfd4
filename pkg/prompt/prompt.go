// Package prompt collects single values from the user.
package prompt

import (
	"context"
)

// InputOptions describes a single-line text prompt
type InputOptions struct {
	ID          string // Stable identifier used to pre-answer the prompt
	Prompt      string // Label shown to the user
	Placeholder string // Example value
}

// SelectOptions describes a single-choice prompt
type SelectOptions struct {
	ID      string
	Prompt  string
	Options []string
}

// 🗨️ Prompter asks the user for values. A false ok means the user cancelled.
type Prompter interface {
	Input(ctx context.Context, opts InputOptions) (value string, ok bool, err error)
	Select(ctx context.Context, opts SelectOptions) (choice string, ok bool, err error)
}
