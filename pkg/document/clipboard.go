package document

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"github.com/walteh/enumerize/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// swapped in tests
var (
	readClipboard        = clipboard.ReadAll
	writeClipboard       = clipboard.WriteAll
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
)

// 📋 Clipboard is a document backed by the system clipboard
type Clipboard struct {
	*base
}

var _ Document = (*Clipboard)(nil)

// ReadClipboard snapshots the clipboard into a new document
func ReadClipboard(ctx context.Context, selection text.Range) (*Clipboard, error) {
	if clipboardUnsupported() {
		return nil, errors.Errorf("clipboard is not supported on this system")
	}

	content, err := readClipboard()
	if err != nil {
		return nil, errors.Errorf("reading clipboard: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int("bytes", len(content)).Msg("read clipboard document")

	return &Clipboard{base: newBase("clipboard", content, selection)}, nil
}

// Replace implements Document.Replace with a single clipboard write
func (c *Clipboard) Replace(ctx context.Context, r text.Range, s string) error {
	res, err := c.buffer().Replace(r, s)
	if err != nil {
		return errors.Errorf("replacing %s in clipboard: %w", r, err)
	}

	if err := writeClipboard(res.ModifiedContent); err != nil {
		return errors.Errorf("writing clipboard: %w", err)
	}

	c.commit(res, s)

	zerolog.Ctx(ctx).Debug().Stringer("range", res.Range).Msg("replaced range in clipboard")
	return nil
}
