package operation

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/enumerize/pkg/document"
	"github.com/walteh/enumerize/pkg/enumgen"
	"github.com/walteh/enumerize/pkg/log"
	"github.com/walteh/enumerize/pkg/prompt"
	"github.com/walteh/enumerize/pkg/text"
	"gitlab.com/tozd/go/errors"
)

func memoryJob(name, content string) (Job, *document.Memory) {
	doc := document.NewMemory(name, content, text.Range{})
	return Job{
		Name: name,
		Open: func(ctx context.Context) (document.Document, error) { return doc, nil },
		Prompter: prompt.NewPreset(map[string]string{
			PromptName: name,
			PromptKeys: "",
			PromptSort: enumgen.SortAscendingLabel,
		}, nil),
	}, doc
}

func TestRunner(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	for _, jobs := range []int{1, 3} {
		t.Run(fmt.Sprintf("jobs_%d", jobs), func(t *testing.T) {
			buf := &bytes.Buffer{}
			console := log.New(buf, zerolog.Nop())
			ctx := log.NewContext(testContext(t), console)
			runner := NewRunner(Options{}, jobs)

			var all []Job
			var docs []*document.Memory
			for i := 0; i < 5; i++ {
				job, doc := memoryJob(fmt.Sprintf("E%d", i), "b\na")
				all = append(all, job)
				docs = append(docs, doc)
			}

			outcomes, err := runner.Run(ctx, all...)
			require.NoError(t, err)
			require.Len(t, outcomes, 5)

			for i, doc := range docs {
				want := fmt.Sprintf("export enum E%d {\n    a = 'a',\n    b = 'b'\n}", i)
				assert.Equal(t, want, doc.Text(), "document %d should be rewritten", i)
				assert.True(t, outcomes[i].Applied)
			}
			assert.Len(t, console.Operations(), 5, "every job should be logged")
		})
	}
}

func TestRunner_Failures(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	buf := &bytes.Buffer{}
	console := log.New(buf, zerolog.Nop())
	ctx := log.NewContext(testContext(t), console)
	runner := NewRunner(Options{}, 2)

	good, goodDoc := memoryJob("Good", "x")
	bad := Job{
		Name: "missing.txt",
		Open: func(ctx context.Context) (document.Document, error) {
			return nil, errors.New("no such file")
		},
	}

	outcomes, err := runner.Run(ctx, bad, good)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such file")
	assert.Nil(t, outcomes[0])
	require.NotNil(t, outcomes[1], "other jobs still run")
	assert.Equal(t, "export enum Good {\n    x = 'x'\n}", goodDoc.Text())

	ops := console.Operations()
	require.Len(t, ops, 2)
	statuses := []string{ops[0].Status, ops[1].Status}
	assert.ElementsMatch(t, []string{"failed", "replaced"}, statuses)
}

func TestRunner_Cancelled(t *testing.T) {
	console := log.New(&bytes.Buffer{}, zerolog.Nop())
	ctx := log.NewContext(testContext(t), console)

	prompter := &MockPrompter{}
	prompter.On("Input", ctx, nameInput).Return("", false, nil).Once()

	doc := document.NewMemory("colors", "red", text.Range{})
	runner := NewRunner(Options{Prompter: prompter}, 1)

	_, err := runner.Run(ctx, Job{
		Name: "colors",
		Mode: ModeSelection,
		Open: func(ctx context.Context) (document.Document, error) { return doc, nil },
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCancelled))
	assert.Equal(t, "red", doc.Text())

	ops := console.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, "cancelled", ops[0].Status)
	assert.True(t, ops[0].IsSkipped)
}
