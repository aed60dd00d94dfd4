package text

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// EndOfLine as a Character means the end of the position's line.
const EndOfLine = -1

// Position is a zero-based line and rune offset within that line
type Position struct {
	Line      int
	Character int
}

// Before reports whether p comes strictly before o
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Character < o.Character
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Character+1)
}

// Range is a half-open span between two positions
type Range struct {
	Start Position
	End   Position
}

// IsEmpty reports whether the range is collapsed to a single position
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// Line is one line of a buffer without its line feed
type Line struct {
	Number int
	Text   string
	Range  Range
}

// ReplacementResult describes a range replacement
type ReplacementResult struct {
	// Range is the validated range that was replaced
	Range Range

	// WasModified indicates the content changed
	WasModified bool

	// OriginalContent is the content before the replacement
	OriginalContent string

	// ModifiedContent is the content after the replacement
	ModifiedContent string
}

// ParseRange parses a selection written the way editors display it, with
// one-based lines and columns:
//
//	3:1-5:10   line 3 column 1 up to line 5 column 10
//	3-5        whole lines 3 through 5
//	4          the whole of line 4
//
// An empty string is a collapsed selection at the start of the document.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, nil
	}

	startStr, endStr, hasEnd := strings.Cut(s, "-")
	if !hasEnd {
		endStr = startStr
	}

	start, err := parsePosition(startStr, 0)
	if err != nil {
		return Range{}, errors.Errorf("parsing range start %q: %w", startStr, err)
	}
	end, err := parsePosition(endStr, EndOfLine)
	if err != nil {
		return Range{}, errors.Errorf("parsing range end %q: %w", endStr, err)
	}

	return Range{Start: start, End: end}, nil
}

func parsePosition(s string, defaultCharacter int) (Position, error) {
	lineStr, charStr, hasChar := strings.Cut(strings.TrimSpace(s), ":")

	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return Position{}, errors.Errorf("invalid line: %w", err)
	}
	if line < 1 {
		return Position{}, errors.Errorf("line must be at least 1, got %d", line)
	}

	pos := Position{Line: line - 1, Character: defaultCharacter}
	if !hasChar {
		return pos, nil
	}

	char, err := strconv.Atoi(charStr)
	if err != nil {
		return Position{}, errors.Errorf("invalid column: %w", err)
	}
	if char < 1 {
		return Position{}, errors.Errorf("column must be at least 1, got %d", char)
	}
	pos.Character = char - 1
	return pos, nil
}
