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

package operation

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/enumerize/pkg/document"
	"github.com/walteh/enumerize/pkg/log"
	"github.com/walteh/enumerize/pkg/prompt"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📋 Job is one operation over one document
type Job struct {
	// Name identifies the document before it is opened
	Name string
	// Open loads the document
	Open func(ctx context.Context) (document.Document, error)
	// Mode selects the trigger
	Mode Mode
	// Prompter overrides the runner's prompter for this job
	Prompter prompt.Prompter
}

// 🏃 Runner executes jobs and logs their outcomes to the console logger
// carried by the context
type Runner struct {
	opts Options
	jobs int
}

// 🏗️ NewRunner creates a new runner. opts supplies everything but the
// document; jobs bounds how many documents are processed at once.
func NewRunner(opts Options, jobs int) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{
		opts: opts,
		jobs: jobs,
	}
}

// 🏃 Run executes jobs and returns their outcomes in job order. A failed job
// leaves a nil outcome; the first error is returned after all jobs finish.
func (r *Runner) Run(ctx context.Context, jobs ...Job) ([]*Outcome, error) {
	outcomes := make([]*Outcome, len(jobs))

	if r.jobs == 1 || len(jobs) == 1 {
		return outcomes, r.runSync(ctx, jobs, outcomes)
	}
	return outcomes, r.runAsync(ctx, jobs, outcomes)
}

// 🔄 runSync runs jobs one after another, stopping at the first error
func (r *Runner) runSync(ctx context.Context, jobs []Job, outcomes []*Outcome) error {
	for i, job := range jobs {
		outcome, err := r.runJob(ctx, job)
		if err != nil {
			return err
		}
		outcomes[i] = outcome
	}
	return nil
}

// ⚡ runAsync runs jobs concurrently up to the job limit
func (r *Runner) runAsync(ctx context.Context, jobs []Job, outcomes []*Outcome) error {
	var (
		g        errgroup.Group
		mu       sync.Mutex
		firstErr error
	)
	g.SetLimit(r.jobs)

	for i, job := range jobs {
		g.Go(func() error {
			outcome, err := r.runJob(ctx, job)
			mu.Lock()
			defer mu.Unlock()
			if err != nil && firstErr == nil {
				firstErr = err
			}
			outcomes[i] = outcome
			return nil
		})
	}

	_ = g.Wait()
	return firstErr
}

func (r *Runner) runJob(ctx context.Context, job Job) (*Outcome, error) {
	console := log.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("running %s: %w", job.Name, err)
	}

	doc, err := job.Open(ctx)
	if err != nil {
		r.logFailure(ctx, job.Name, err)
		return nil, errors.Errorf("opening %s: %w", job.Name, err)
	}

	opts := r.opts
	opts.Document = doc
	if job.Prompter != nil {
		opts.Prompter = job.Prompter
	}

	op, err := New(opts)
	if err != nil {
		return nil, errors.Errorf("creating operator: %w", err)
	}

	var outcome *Outcome
	switch job.Mode {
	case ModeSelection:
		outcome, err = op.Selection(ctx)
	default:
		outcome, err = op.Document(ctx)
	}

	if err != nil {
		if errors.Is(err, ErrCancelled) {
			console.LogDocumentOperation(ctx, log.DocumentOperation{
				Document:  doc.Name(),
				Status:    "cancelled",
				IsSkipped: true,
			})
			return nil, err
		}
		r.logFailure(ctx, doc.Name(), err)
		return nil, errors.Errorf("enumerizing %s: %w", doc.Name(), err)
	}

	status := "replaced"
	if !outcome.Applied {
		status = "dry run"
	}
	console.LogDocumentOperation(ctx, log.DocumentOperation{
		Document:  doc.Name(),
		Range:     outcome.Range.String(),
		Members:   len(outcome.Result.Members),
		Keys:      len(outcome.Params.DataKeys),
		Sort:      outcome.Params.Sort.String(),
		Status:    status,
		IsApplied: outcome.Applied,
	})

	return outcome, nil
}

func (r *Runner) logFailure(ctx context.Context, name string, err error) {
	zerolog.Ctx(ctx).Debug().Err(err).Str("document", name).Msg("job failed")
	log.FromContext(ctx).LogDocumentOperation(ctx, log.DocumentOperation{
		Document: name,
		Status:   "failed",
		IsFailed: true,
	})
}
