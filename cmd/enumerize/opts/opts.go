package opts

import (
	"github.com/walteh/enumerize/pkg/config"
	"github.com/walteh/enumerize/pkg/log"
	"github.com/walteh/enumerize/pkg/prompt"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config *config.Config
	// Console is the logger also stored on the command context, kept here
	// so errors can be reported after the command returns
	Console *log.Logger
	// Prompter answers prompts that no flag answered, nil for the terminal
	Prompter prompt.Prompter
}

// Interactive returns the prompter used when a command may prompt
func (o *RootOpts) Interactive() prompt.Prompter {
	if o.Prompter != nil {
		return o.Prompter
	}
	return prompt.NewTerminal()
}
