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

package document

import (
	"context"
	"sync"

	"github.com/walteh/enumerize/pkg/text"
)

// 📄 Document is the editable text an operation reads from and writes to
type Document interface {
	// Name identifies the document in logs
	Name() string
	// Text returns the full current content
	Text() string
	// LineCount returns the number of lines, at least 1
	LineCount() int
	// LineAt returns line n (zero-based)
	LineAt(n int) (text.Line, error)
	// Selection returns the current selection, possibly collapsed
	Selection() text.Range
	// Validate resolves EndOfLine and clamps columns past the end of a line.
	// Lines out of range and reversed ranges are errors.
	Validate(r text.Range) (text.Range, error)
	// TextIn returns the text within r
	TextIn(r text.Range) (string, error)
	// Replace swaps r for s as a single edit. On error the document is unchanged.
	Replace(ctx context.Context, r text.Range, s string) error
}

// base implements the read side of Document over a text.Buffer
type base struct {
	name      string
	mu        sync.RWMutex
	buf       *text.Buffer
	selection text.Range
}

func newBase(name, content string, selection text.Range) *base {
	return &base{
		name:      name,
		buf:       text.NewBuffer(content),
		selection: selection,
	}
}

func (b *base) Name() string {
	return b.name
}

func (b *base) buffer() *text.Buffer {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buf
}

func (b *base) Text() string {
	return b.buffer().String()
}

func (b *base) LineCount() int {
	return b.buffer().LineCount()
}

func (b *base) LineAt(n int) (text.Line, error) {
	return b.buffer().LineAt(n)
}

func (b *base) Selection() text.Range {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selection
}

func (b *base) Validate(r text.Range) (text.Range, error) {
	return b.buffer().Validate(r)
}

func (b *base) TextIn(r text.Range) (string, error) {
	return b.buffer().Slice(r)
}

// commit installs content after a successful write and collapses the
// selection to the end of the replacement.
func (b *base) commit(res *text.ReplacementResult, inserted string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf = text.NewBuffer(res.ModifiedContent)
	end := text.NewBuffer(inserted).FullRange().End
	if end.Line == 0 {
		end.Character += res.Range.Start.Character
	}
	end.Line += res.Range.Start.Line
	b.selection = text.Range{Start: end, End: end}
}
