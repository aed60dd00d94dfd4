// Package text models a document as lines addressed by editor positions and
// replaces ranges of it.
package text

import (
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// Buffer is an immutable snapshot of document content split on line feeds.
// A buffer always has at least one line.
type Buffer struct {
	lines []string
}

// NewBuffer creates a buffer from content
func NewBuffer(content string) *Buffer {
	return &Buffer{lines: strings.Split(content, "\n")}
}

// String returns the full content
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of lines, which is at least 1
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineAt returns line n (zero-based)
func (b *Buffer) LineAt(n int) (Line, error) {
	if n < 0 || n >= len(b.lines) {
		return Line{}, errors.Errorf("line %d out of range [0, %d)", n, len(b.lines))
	}
	text := b.lines[n]
	return Line{
		Number: n,
		Text:   text,
		Range: Range{
			Start: Position{Line: n},
			End:   Position{Line: n, Character: utf8.RuneCountInString(text)},
		},
	}, nil
}

// FullRange spans from the start of the first line to the end of the last
func (b *Buffer) FullRange() Range {
	last := len(b.lines) - 1
	return Range{
		Start: Position{Line: 0, Character: 0},
		End:   Position{Line: last, Character: utf8.RuneCountInString(b.lines[last])},
	}
}

// Validate resolves EndOfLine characters, clamps characters past the end of
// their line and rejects ranges outside the buffer or running backwards.
func (b *Buffer) Validate(r Range) (Range, error) {
	start, err := b.validatePosition(r.Start)
	if err != nil {
		return Range{}, errors.Errorf("range start: %w", err)
	}
	end, err := b.validatePosition(r.End)
	if err != nil {
		return Range{}, errors.Errorf("range end: %w", err)
	}
	if end.Before(start) {
		return Range{}, errors.Errorf("range end %s is before start %s", end, start)
	}
	return Range{Start: start, End: end}, nil
}

func (b *Buffer) validatePosition(p Position) (Position, error) {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return Position{}, errors.Errorf("line %d out of range, document has %d lines", p.Line+1, len(b.lines))
	}
	width := utf8.RuneCountInString(b.lines[p.Line])
	if p.Character == EndOfLine || p.Character > width {
		p.Character = width
	}
	if p.Character < 0 {
		return Position{}, errors.Errorf("column %d out of range", p.Character+1)
	}
	return p, nil
}

// offset converts a validated position to a byte offset into String()
func (b *Buffer) offset(p Position) int {
	off := 0
	for i := 0; i < p.Line; i++ {
		off += len(b.lines[i]) + 1
	}
	line := b.lines[p.Line]
	chars := 0
	for i := range line {
		if chars == p.Character {
			return off + i
		}
		chars++
	}
	return off + len(line)
}

// Slice returns the text within r
func (b *Buffer) Slice(r Range) (string, error) {
	r, err := b.Validate(r)
	if err != nil {
		return "", err
	}
	content := b.String()
	return content[b.offset(r.Start):b.offset(r.End)], nil
}

// Replace returns the result of replacing r with s. The buffer itself is
// left untouched.
func (b *Buffer) Replace(r Range, s string) (*ReplacementResult, error) {
	r, err := b.Validate(r)
	if err != nil {
		return nil, err
	}

	original := b.String()
	modified := original[:b.offset(r.Start)] + s + original[b.offset(r.End):]

	return &ReplacementResult{
		Range:           r,
		WasModified:     modified != original,
		OriginalContent: original,
		ModifiedContent: modified,
	}, nil
}
