package document

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/walteh/enumerize/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// Memory is a document held entirely in memory
type Memory struct {
	*base
	edits atomic.Int32
}

var _ Document = (*Memory)(nil)

// NewMemory creates an in-memory document with the given selection
func NewMemory(name, content string, selection text.Range) *Memory {
	return &Memory{base: newBase(name, content, selection)}
}

// Replace implements Document.Replace
func (m *Memory) Replace(ctx context.Context, r text.Range, s string) error {
	res, err := m.buffer().Replace(r, s)
	if err != nil {
		return errors.Errorf("replacing %s in %s: %w", r, m.name, err)
	}

	m.commit(res, s)
	m.edits.Add(1)

	zerolog.Ctx(ctx).Debug().Str("document", m.name).Stringer("range", res.Range).Msg("replaced range in memory")
	return nil
}

// Edits returns how many replacements were applied
func (m *Memory) Edits() int {
	return int(m.edits.Load())
}
