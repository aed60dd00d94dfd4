package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/enumerize/pkg/config"
	"github.com/walteh/enumerize/pkg/document"
	"github.com/walteh/enumerize/pkg/enumgen"
	"github.com/walteh/enumerize/pkg/prompt"
	"github.com/walteh/enumerize/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrCancelled is returned when the user cancels a prompt under the abort policy.
var ErrCancelled = errors.Base("enumerize cancelled")

// FallbackNotice is shown when the selection trigger falls back to the whole document.
const FallbackNotice = "Selection is empty, enumerizing the whole document"

// 📢 Notifier shows transient messages to the user
type Notifier interface {
	Notice(ctx context.Context, msg string)
}

// 🎯 Mode selects which trigger started the operation
type Mode int

const (
	// ModeDocument always targets the whole document when nothing is selected
	ModeDocument Mode = iota
	// ModeSelection targets the selection and announces the whole-document fallback
	ModeSelection
)

func (m Mode) String() string {
	if m == ModeSelection {
		return "selection"
	}
	return "document"
}

// 🎯 Operator defines the enumerize operations exposed to the host
type Operator interface {
	// Document enumerizes the selection, or the whole document when it is empty
	Document(ctx context.Context) (*Outcome, error)
	// Selection behaves like Document and notifies when it falls back
	Selection(ctx context.Context) (*Outcome, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Document is the text being rewritten
	Document document.Document
	// Prompter collects the generator parameters
	Prompter prompt.Prompter
	// Notifier receives the fallback notice, may be nil
	Notifier Notifier
	// TabSize is the indentation width, 0 for the default
	TabSize int
	// OnCancel decides what a cancelled prompt does, empty for abort
	OnCancel config.CancelPolicy
	// DryRun renders without replacing
	DryRun bool
}

// 📄 Outcome describes a finished operation
type Outcome struct {
	Range    text.Range
	FellBack bool
	Params   enumgen.Params
	Result   *enumgen.Result
	Applied  bool
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Document == nil {
		return nil, errors.Errorf("document is required")
	}
	if opts.Prompter == nil {
		return nil, errors.Errorf("prompter is required")
	}
	if opts.TabSize < 0 {
		return nil, errors.Errorf("tab size must be positive, got %d", opts.TabSize)
	}
	switch opts.OnCancel {
	case "":
		opts.OnCancel = config.CancelAbort
	case config.CancelAbort, config.CancelDefault:
	default:
		return nil, errors.Errorf("unknown cancel policy %q", opts.OnCancel)
	}
	return &operator{opts: opts}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	opts Options
}

func (o *operator) Document(ctx context.Context) (*Outcome, error) {
	return o.run(ctx, ModeDocument)
}

func (o *operator) Selection(ctx context.Context) (*Outcome, error) {
	return o.run(ctx, ModeSelection)
}

// ResolveRange returns the validated selection, or the whole document when
// the selection spans no text once clamped to the document. The bool
// reports the fallback.
func ResolveRange(doc document.Document) (text.Range, bool, error) {
	sel, err := doc.Validate(doc.Selection())
	if err != nil {
		return text.Range{}, false, errors.Errorf("invalid selection: %w", err)
	}
	if !sel.IsEmpty() {
		return sel, false, nil
	}

	last, err := doc.LineAt(doc.LineCount() - 1)
	if err != nil {
		return text.Range{}, false, errors.Errorf("reading last line: %w", err)
	}
	return text.Range{
		Start: text.Position{Line: 0, Character: 0},
		End:   last.Range.End,
	}, true, nil
}

func (o *operator) run(ctx context.Context, mode Mode) (*Outcome, error) {
	doc := o.opts.Document
	logger := zerolog.Ctx(ctx).With().Str("document", doc.Name()).Stringer("mode", mode).Logger()

	rng, fellBack, err := ResolveRange(doc)
	if err != nil {
		return nil, errors.Errorf("resolving range: %w", err)
	}
	if fellBack && mode == ModeSelection && o.opts.Notifier != nil {
		o.opts.Notifier.Notice(ctx, FallbackNotice)
	}

	// Read the range before prompting so a bad selection fails fast
	source, err := doc.TextIn(rng)
	if err != nil {
		return nil, errors.Errorf("reading range %s: %w", rng, err)
	}
	logger.Debug().Stringer("range", rng).Bool("fell_back", fellBack).Msg("resolved range")

	params, err := CollectParams(ctx, o.opts.Prompter, o.opts.OnCancel)
	if err != nil {
		return nil, err
	}
	params.TabSize = o.opts.TabSize

	res, err := enumgen.Generate(source, params)
	if err != nil {
		return nil, errors.Errorf("generating enum: %w", err)
	}

	outcome := &Outcome{
		Range:    rng,
		FellBack: fellBack,
		Params:   params,
		Result:   res,
	}

	if o.opts.DryRun {
		logger.Debug().Int("members", len(res.Members)).Msg("dry run, document left unchanged")
		return outcome, nil
	}

	if err := doc.Replace(ctx, rng, res.Output); err != nil {
		return nil, errors.Errorf("replacing range: %w", err)
	}
	outcome.Applied = true

	logger.Debug().
		Int("members", len(res.Members)).
		Strs("keys", params.DataKeys).
		Stringer("sort", params.Sort).
		Msg("replaced range with generated enum")

	return outcome, nil
}
