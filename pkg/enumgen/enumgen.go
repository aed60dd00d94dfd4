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

package enumgen

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// DefaultTabSize is used when no indentation width is configured.
const DefaultTabSize = 4

// 🔀 SortMode is the ordering applied to the normalized lines
type SortMode int

const (
	SortNone SortMode = iota
	SortAscending
	SortDescending
)

// Labels shown by the sort prompt, in prompt order.
const (
	SortAscendingLabel  = "Sort values alphabetically"
	SortDescendingLabel = "Sort values alphabetically in reverse"
	SortNoneLabel       = "Do not sort"
)

// SortLabels returns the sort prompt options in their fixed order.
func SortLabels() []string {
	return []string{SortAscendingLabel, SortDescendingLabel, SortNoneLabel}
}

// String returns the short name used in config files and flags
func (m SortMode) String() string {
	switch m {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return "none"
	}
}

// Label returns the prompt label for the mode
func (m SortMode) Label() string {
	switch m {
	case SortAscending:
		return SortAscendingLabel
	case SortDescending:
		return SortDescendingLabel
	default:
		return SortNoneLabel
	}
}

// ParseSortMode accepts either a short name (asc, desc, none) or a prompt label.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", strings.ToLower(SortNoneLabel):
		return SortNone, nil
	case "asc", "ascending", strings.ToLower(SortAscendingLabel):
		return SortAscending, nil
	case "desc", "descending", strings.ToLower(SortDescendingLabel):
		return SortDescending, nil
	}
	return SortNone, errors.Errorf("unknown sort mode %q", s)
}

// 📦 Params holds the user supplied values for one generation
type Params struct {
	Name     string   // Enum identifier, used verbatim
	DataKeys []string // Field names for the data table, in entry order
	Sort     SortMode // Ordering applied before rendering
	TabSize  int      // Spaces per indentation level
}

// 📄 Result is the rendered output of one generation
type Result struct {
	Members []string // Final member order
	Enum    string   // Enum block
	Data    string   // Data table block, empty when omitted
	Output  string   // Enum and data joined the way they replace the source range
}

var keySeparator = regexp.MustCompile(`[ ,]+`)

// NormalizeLines splits text on line feeds, trims every line and drops the
// lines that are empty after trimming.
func NormalizeLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ParseDataKeys splits free text on runs of commas and spaces.
func ParseDataKeys(input string) []string {
	keys := []string{}
	for _, key := range keySeparator.Split(input, -1) {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// SortLines returns a sorted copy of lines. Descending is the ascending
// order reversed.
func SortLines(lines []string, mode SortMode) []string {
	sorted := slices.Clone(lines)
	switch mode {
	case SortAscending:
		slices.SortStableFunc(sorted, strings.Compare)
	case SortDescending:
		slices.SortStableFunc(sorted, strings.Compare)
		slices.Reverse(sorted)
	}
	return sorted
}

// Decapitalize lower-cases the first rune of s.
func Decapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func indent(tabSize, level int) string {
	return strings.Repeat(" ", tabSize*level)
}

// RenderEnum renders the enum declaration for members.
func RenderEnum(name string, members []string, tabSize int) string {
	entries := make([]string, 0, len(members))
	for _, member := range members {
		entries = append(entries, indent(tabSize, 1)+member+" = '"+member+"'")
	}

	var b strings.Builder
	b.WriteString("export enum " + name + " {\n")
	b.WriteString(strings.Join(entries, ",\n"))
	b.WriteString("\n}")
	return b.String()
}

// RenderData renders the data table for members. It returns an empty string
// when there are no keys or no members.
func RenderData(name string, members []string, keys []string, tabSize int) string {
	if len(keys) == 0 || len(members) == 0 {
		return ""
	}

	fields := make([]string, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, indent(tabSize, 2)+key+": '"+key+"Value'")
	}
	body := strings.Join(fields, ",\n")

	entries := make([]string, 0, len(members))
	for _, member := range members {
		entries = append(entries, indent(tabSize, 1)+"["+name+"."+member+"]: {\n"+body+"\n"+indent(tabSize, 1)+"}")
	}

	var b strings.Builder
	b.WriteString("export const " + Decapitalize(name) + "Data = {\n")
	b.WriteString(strings.Join(entries, ",\n"))
	b.WriteString("\n};")
	return b.String()
}

// 🏭 Generate runs normalization, sorting and rendering over text
func Generate(text string, params Params) (*Result, error) {
	tabSize := params.TabSize
	if tabSize == 0 {
		tabSize = DefaultTabSize
	}
	if tabSize < 0 {
		return nil, errors.Errorf("tab size must be positive, got %d", tabSize)
	}

	members := SortLines(NormalizeLines(text), params.Sort)

	res := &Result{
		Members: members,
		Enum:    RenderEnum(params.Name, members, tabSize),
		Data:    RenderData(params.Name, members, params.DataKeys, tabSize),
	}

	res.Output = res.Enum
	if res.Data != "" {
		res.Output += "\n\n" + res.Data
	}

	return res, nil
}
