// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/enumerize/cmd/enumerize/opts"
	"github.com/walteh/enumerize/pkg/document"
	"github.com/walteh/enumerize/pkg/log"
	"github.com/walteh/enumerize/pkg/operation"
	"github.com/walteh/enumerize/pkg/prompt"
	"gitlab.com/tozd/go/errors"
)

type batchCmd struct {
	generateFlags
	ignore []string
	jobs   int
}

// NewBatchCmd creates the command that enumerizes many files at once
func NewBatchCmd(root *opts.RootOpts) *cobra.Command {
	c := &batchCmd{}

	cmd := &cobra.Command{
		Use:   "batch <pattern>...",
		Short: "Enumerize every file matching the patterns without prompting",
		Long: `Batch replaces each matching file with its generated enum. Patterns support
** and are matched against regular files only. Nothing is prompted: the enum
name defaults to the file name without its extension, keys and sort come from
flags or the config file.`,
		Example: `  enumerize batch 'enums/**/*.txt'
  enumerize batch 'enums/*.txt' --keys label --sort asc --ignore '*.draft.txt'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, root, args)
		},
	}

	c.register(cmd)
	cmd.Flags().StringSliceVar(&c.ignore, "ignore", nil, "patterns to skip, added to the config ignore_patterns")
	cmd.Flags().IntVarP(&c.jobs, "jobs", "j", 0, "files processed at once (default from config)")
	_ = cmd.Flags().MarkHidden("no-input")

	return cmd
}

func (c *batchCmd) run(cmd *cobra.Command, root *opts.RootOpts, args []string) error {
	ctx := zerolog.Ctx(cmd.Context()).With().Str("command", cmd.Name()).Logger().WithContext(cmd.Context())
	console := log.FromContext(ctx)
	cfg := root.Config

	ignores := append(append([]string{}, cfg.IgnorePatterns...), c.ignore...)
	files, err := operation.ExpandPatterns(ctx, args, ignores)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		console.Warningf("No files matched %s", strings.Join(args, " "))
		return nil
	}

	answers, err := c.presets(cmd)
	if err != nil {
		return err
	}
	fillFromConfig(answers, cfg)

	base, err := c.options(cmd, cfg)
	if err != nil {
		return err
	}
	base.Notifier = console

	jobs := cfg.Jobs
	if cmd.Flags().Changed("jobs") {
		if c.jobs < 1 {
			return errors.Errorf("--jobs must be at least 1, got %d", c.jobs)
		}
		jobs = c.jobs
	}

	fileOpts := document.FileOptions{Backup: c.wantBackup(cmd, cfg)}
	batch := make([]operation.Job, 0, len(files))
	for _, path := range files {
		fileAnswers := map[string]string{operation.PromptName: operation.NameFromPath(path)}
		for k, v := range answers {
			fileAnswers[k] = v
		}
		batch = append(batch, operation.Job{
			Name:     path,
			Mode:     operation.ModeDocument,
			Prompter: prompt.NewPreset(fileAnswers, nil),
			Open: func(ctx context.Context) (document.Document, error) {
				return document.OpenFile(ctx, path, fileOpts)
			},
		})
	}

	console.Header(fmt.Sprintf("Enumerizing %d files", len(batch)))
	console.Infof("Found %d files in %d patterns, %d at a time", len(batch), len(args), jobs)
	outcomes, err := operation.NewRunner(base, jobs).Run(ctx, batch...)

	if c.dryRun {
		out := cmd.OutOrStdout()
		for i, outcome := range outcomes {
			if outcome == nil {
				continue
			}
			fmt.Fprintf(out, "// %s\n%s\n\n", files[i], outcome.Result.Output)
		}
	}

	summarize(console, len(batch), c.dryRun)
	return err
}

// summarize prints the batch totals from the operations the runner logged
func summarize(console *log.Logger, total int, dryRun bool) {
	done, failed := 0, 0
	for _, op := range console.Operations() {
		switch {
		case op.IsFailed:
			failed++
		case !op.IsSkipped:
			done++
		}
	}

	console.LogNewline()
	verb := "Enumerized"
	if dryRun {
		verb = "Rendered"
	}
	if failed > 0 {
		console.Errorf("%d of %d files failed", failed, total)
	}
	if done > 0 {
		console.Successf("%s %d of %d files", verb, done, total)
	}
}
