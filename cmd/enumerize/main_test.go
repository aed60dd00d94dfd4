package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/enumerize/cmd/enumerize/opts"
	"github.com/walteh/enumerize/pkg/operation"
	"github.com/walteh/enumerize/pkg/prompt"
)

const colorWant = `export enum Color {
    red = 'red',
    blue = 'blue'
}

export const colorData = {
    [Color.red]: {
        hex: 'hexValue'
    },
    [Color.blue]: {
        hex: 'hexValue'
    }
};`

// cancellingPrompter dismisses every prompt
type cancellingPrompter struct{}

func (cancellingPrompter) Input(ctx context.Context, opts prompt.InputOptions) (string, bool, error) {
	return "", false, nil
}

func (cancellingPrompter) Select(ctx context.Context, opts prompt.SelectOptions) (string, bool, error) {
	return "", false, nil
}

type runResult struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, root *opts.RootOpts, args ...string) runResult {
	t.Helper()
	if root == nil {
		root = &opts.RootOpts{}
	}
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr, root)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "creating dir")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "writing %s", name)
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, dir string) []string
		prompter prompt.Prompter
		wantCode int
		validate func(t *testing.T, dir string, res runResult)
	}{
		{
			name: "document_round_trip",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "colors.txt", "red\nblue\n")
				return []string{"document", path, "--name", "Color", "--keys", "hex", "--no-input"}
			},
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Equal(t, colorWant, readFile(t, filepath.Join(dir, "colors.txt")))
				assert.Contains(t, res.stderr, "replaced")
			},
		},
		{
			name: "document_prompts_through_root_prompter",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "colors.txt", "red\nblue\n")
				return []string{"document", path}
			},
			prompter: prompt.NewPreset(operation.PresetAnswers(ptr("Color"), ptr("hex"), nil), prompt.NewPreset(map[string]string{
				operation.PromptSort: "Do not sort",
			}, nil)),
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Equal(t, colorWant, readFile(t, filepath.Join(dir, "colors.txt")))
			},
		},
		{
			name: "selection_falls_back_with_notice",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "colors.txt", "red\nblue\n")
				return []string{"selection", path, "--name", "Color", "--keys", "hex", "--no-input"}
			},
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Equal(t, colorWant, readFile(t, filepath.Join(dir, "colors.txt")))
				assert.Contains(t, res.stderr, operation.FallbackNotice)
			},
		},
		{
			name: "selection_replaces_range_only",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "colors.ts", "// colors\nred\nblue\n// end\n")
				return []string{"selection", path, "-s", "2:1-3:5", "--name", "Color", "--no-input"}
			},
			validate: func(t *testing.T, dir string, res runResult) {
				want := "// colors\nexport enum Color {\n    red = 'red',\n    blue = 'blue'\n}\n// end\n"
				assert.Equal(t, want, readFile(t, filepath.Join(dir, "colors.ts")))
				assert.NotContains(t, res.stderr, operation.FallbackNotice)
			},
		},
		{
			name: "dry_run_leaves_file",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "colors.txt", "red\nblue\n")
				return []string{"document", path, "-n", "Color", "-k", "hex", "--no-input", "--dry-run"}
			},
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Equal(t, "red\nblue\n", readFile(t, filepath.Join(dir, "colors.txt")))
				assert.Equal(t, colorWant+"\n", res.stdout)
			},
		},
		{
			name: "sort_and_tab_size_flags",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "letters.txt", "b\na\nc\n")
				return []string{"document", path, "-n", "Letter", "--sort", "desc", "-t", "2", "--no-input"}
			},
			validate: func(t *testing.T, dir string, res runResult) {
				want := "export enum Letter {\n  c = 'c',\n  b = 'b',\n  a = 'a'\n}"
				assert.Equal(t, want, readFile(t, filepath.Join(dir, "letters.txt")))
			},
		},
		{
			name: "config_supplies_defaults",
			setup: func(t *testing.T, dir string) []string {
				cfg := writeFile(t, dir, "enumerize.yaml", "tab_size: 2\nsort: asc\ndata_keys: hex\nbackup: true\n")
				path := writeFile(t, dir, "colors.txt", "red\nblue\n")
				return []string{"--config", cfg, "document", path, "-n", "Color", "--no-input"}
			},
			validate: func(t *testing.T, dir string, res runResult) {
				got := readFile(t, filepath.Join(dir, "colors.txt"))
				assert.Contains(t, got, "export enum Color {\n  blue = 'blue',\n  red = 'red'\n}")
				assert.Contains(t, got, "    hex: 'hexValue'")
				assert.Equal(t, "red\nblue\n", readFile(t, filepath.Join(dir, "colors.txt.bak")), "backup should hold the original")
				assert.Contains(t, res.stderr, "Backup written to "+filepath.Join(dir, "colors.txt")+".bak")
			},
		},
		{
			name: "missing_name_without_input",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "colors.txt", "red\n")
				return []string{"document", path, "--no-input"}
			},
			wantCode: 1,
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Equal(t, "red\n", readFile(t, filepath.Join(dir, "colors.txt")))
				assert.Contains(t, res.stderr, "prompt has no preset answer")
			},
		},
		{
			name: "cancelled_prompt_exits_cleanly",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "colors.txt", "red\n")
				return []string{"document", path}
			},
			prompter: cancellingPrompter{},
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Equal(t, "red\n", readFile(t, filepath.Join(dir, "colors.txt")))
				assert.Contains(t, res.stderr, "Cancelled, document left unchanged")
			},
		},
		{
			name: "cancel_policy_default_substitutes",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "colors.txt", "red\n")
				return []string{"document", path, "--on-cancel", "default"}
			},
			prompter: cancellingPrompter{},
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Equal(t, "export enum  {\n    red = 'red'\n}", readFile(t, filepath.Join(dir, "colors.txt")))
			},
		},
		{
			name: "invalid_selection",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "colors.txt", "red\n")
				return []string{"selection", path, "-s", "9-10", "-n", "Color", "--no-input"}
			},
			wantCode: 1,
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Equal(t, "red\n", readFile(t, filepath.Join(dir, "colors.txt")))
				assert.Contains(t, res.stderr, "out of range")
			},
		},
		{
			name: "file_and_clipboard_conflict",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "colors.txt", "red\n")
				return []string{"document", path, "--clipboard"}
			},
			wantCode: 1,
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Contains(t, res.stderr, "exactly one of a file argument or --clipboard")
			},
		},
		{
			name: "explicit_config_must_exist",
			setup: func(t *testing.T, dir string) []string {
				path := writeFile(t, dir, "colors.txt", "red\n")
				return []string{"-c", filepath.Join(dir, "missing.yaml"), "document", path}
			},
			wantCode: 1,
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Contains(t, res.stderr, "loading config")
			},
		},
		{
			name: "batch_uses_file_stems",
			setup: func(t *testing.T, dir string) []string {
				writeFile(t, dir, "enums/Color.txt", "red\nblue\n")
				writeFile(t, dir, "enums/nested/Size.txt", "small\n")
				writeFile(t, dir, "enums/Skip.draft.txt", "x\n")
				return []string{"batch", filepath.Join(dir, "enums", "**", "*.txt"), "--keys", "hex", "--ignore", "*.draft.txt", "-j", "2"}
			},
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Equal(t, colorWant, readFile(t, filepath.Join(dir, "enums", "Color.txt")))
				assert.Contains(t, readFile(t, filepath.Join(dir, "enums", "nested", "Size.txt")), "export enum Size {\n    small = 'small'\n}")
				assert.Equal(t, "x\n", readFile(t, filepath.Join(dir, "enums", "Skip.draft.txt")), "ignored file should be untouched")
				assert.Contains(t, res.stderr, "Found 2 files in 1 patterns, 2 at a time")
				assert.Contains(t, res.stderr, "Enumerized 2 of 2 files")
			},
		},
		{
			name: "batch_dry_run",
			setup: func(t *testing.T, dir string) []string {
				writeFile(t, dir, "enums/Color.txt", "red\nblue\n")
				return []string{"batch", filepath.Join(dir, "enums", "*.txt"), "--keys", "hex", "--dry-run"}
			},
			validate: func(t *testing.T, dir string, res runResult) {
				path := filepath.Join(dir, "enums", "Color.txt")
				assert.Equal(t, "red\nblue\n", readFile(t, path), "dry run should not write")
				assert.Equal(t, "// "+path+"\n"+colorWant+"\n\n", res.stdout)
				assert.Contains(t, res.stderr, "Rendered 1 of 1 files")
			},
		},
		{
			name: "batch_without_matches",
			setup: func(t *testing.T, dir string) []string {
				return []string{"batch", filepath.Join(dir, "*.nothing")}
			},
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Contains(t, res.stderr, "No files matched "+filepath.Join(dir, "*.nothing"))
			},
		},
		{
			name: "version",
			setup: func(t *testing.T, dir string) []string {
				return []string{"version"}
			},
			validate: func(t *testing.T, dir string, res runResult) {
				assert.Contains(t, res.stdout, "🚀 enumerize version info:")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := tt.setup(t, dir)

			// Keep the working directory's config out of the run
			if !hasConfigFlag(args) {
				cfg := writeFile(t, dir, ".enumerize.yaml", "tab_size: 4\n")
				args = append([]string{"--config", cfg}, args...)
			}

			res := run(t, &opts.RootOpts{Prompter: tt.prompter}, args...)
			assert.Equal(t, tt.wantCode, res.code, "exit code, stderr:\n%s", res.stderr)

			if tt.validate != nil {
				tt.validate(t, dir, res)
			}
		})
	}
}

func hasConfigFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--config" || arg == "-c" {
			return true
		}
	}
	return false
}

func ptr[T any](v T) *T {
	return &v
}

func TestFormatVersion(t *testing.T) {
	got := FormatVersion(&VersionInfo{
		Version:   "v1.2.3",
		GoVersion: "go1.23.5",
		Platform:  "linux/amd64",
		Revision:  "abc123",
		Time:      "2025-01-01T00:00:00Z",
		Modified:  true,
	})

	assert.Contains(t, got, "Version:   v1.2.3\n")
	assert.Contains(t, got, "Revision:  abc123 (modified)\n")
	assert.Contains(t, got, "Platform:  linux/amd64\n")
}
