package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Lines(t *testing.T) {
	b := NewBuffer("red\nblüe\n")
	assert.Equal(t, 3, b.LineCount(), "trailing newline leaves an empty last line")

	line, err := b.LineAt(1)
	require.NoError(t, err)
	assert.Equal(t, "blüe", line.Text)
	assert.Equal(t, Range{Start: Position{Line: 1}, End: Position{Line: 1, Character: 4}}, line.Range)

	_, err = b.LineAt(3)
	require.Error(t, err)

	assert.Equal(t, Range{End: Position{Line: 2, Character: 0}}, b.FullRange())
	assert.Equal(t, "red\nblüe\n", b.String())
}

func TestBuffer_EmptyDocument(t *testing.T) {
	b := NewBuffer("")
	assert.Equal(t, 1, b.LineCount())
	assert.True(t, b.FullRange().IsEmpty(), "empty document has a collapsed full range")

	res, err := b.Replace(b.FullRange(), "export enum X {\n\n}")
	require.NoError(t, err)
	assert.Equal(t, "export enum X {\n\n}", res.ModifiedContent)
	assert.True(t, res.WasModified)
}

func TestBuffer_Replace(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		rng         Range
		with        string
		want        string
		wantSlice   string
		errContains string
	}{
		{
			name:      "whole_document",
			content:   "a\nb",
			rng:       Range{End: Position{Line: 1, Character: 1}},
			with:      "X",
			want:      "X",
			wantSlice: "a\nb",
		},
		{
			name:      "middle_lines",
			content:   "keep\nred\nblue\nkeep",
			rng:       Range{Start: Position{Line: 1}, End: Position{Line: 2, Character: EndOfLine}},
			with:      "X",
			want:      "keep\nX\nkeep",
			wantSlice: "red\nblue",
		},
		{
			name:      "multibyte_columns",
			content:   "héllo wörld",
			rng:       Range{Start: Position{Character: 6}, End: Position{Character: 11}},
			with:      "there",
			want:      "héllo there",
			wantSlice: "wörld",
		},
		{
			name:      "column_clamped",
			content:   "abc\ndef",
			rng:       Range{Start: Position{Line: 0, Character: 1}, End: Position{Line: 0, Character: 99}},
			with:      "",
			want:      "a\ndef",
			wantSlice: "bc",
		},
		{
			name:        "line_out_of_range",
			content:     "abc",
			rng:         Range{End: Position{Line: 4}},
			errContains: "out of range",
		},
		{
			name:        "backwards",
			content:     "abc\ndef",
			rng:         Range{Start: Position{Line: 1}, End: Position{Line: 0}},
			errContains: "before start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.content)

			res, err := b.Replace(tt.rng, tt.with)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.content, res.OriginalContent)
			assert.Equal(t, tt.want, res.ModifiedContent)
			assert.Equal(t, tt.content, b.String(), "buffer should be unchanged")

			got, err := b.Slice(tt.rng)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSlice, got)
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		input   string
		want    Range
		wantErr bool
	}{
		{input: "", want: Range{}},
		{input: "3:1-5:10", want: Range{Start: Position{Line: 2}, End: Position{Line: 4, Character: 9}}},
		{input: "3-5", want: Range{Start: Position{Line: 2}, End: Position{Line: 4, Character: EndOfLine}}},
		{input: "4", want: Range{Start: Position{Line: 3}, End: Position{Line: 3, Character: EndOfLine}}},
		{input: "0:1-2:1", wantErr: true},
		{input: "a-b", wantErr: true},
		{input: "2:0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRange(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
