package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hongdown/hongdown/internal/options"
)

func TestDiscover_FindsFileInParent(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(""), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got := Discover(nested)
	want := filepath.Join(root, FileName)
	if got != want {
		t.Errorf("Discover(%q) = %q, want %q", nested, got, want)
	}
}

func TestDiscover_NoFile(t *testing.T) {
	dir := t.TempDir()
	if got := Discover(dir); got != "" {
		t.Errorf("Discover(%q) = %q, want empty", dir, got)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	want := options.Default()
	if got.LineWidth != want.LineWidth || got.Heading.SentenceCase != want.Heading.SentenceCase ||
		got.List.UnorderedMarker != want.List.UnorderedMarker || got.CodeBlock.FenceChar != want.CodeBlock.FenceChar {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", got, want)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `line_width = 100

[heading]
sentence_case = true
proper_nouns = ["Foo", "Bar"]

[list]
unordered_marker = "*"
indent_width = 4

[code_block]
fence_char = "` + "`" + `"

[code_block.formatters.go]
command = "gofmt"
args = []
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if got.LineWidth != 100 {
		t.Errorf("LineWidth = %d, want 100", got.LineWidth)
	}
	if !got.Heading.SentenceCase {
		t.Error("Heading.SentenceCase = false, want true")
	}
	if len(got.Heading.ProperNouns) != 2 {
		t.Errorf("Heading.ProperNouns = %v, want 2 entries", got.Heading.ProperNouns)
	}
	if got.List.UnorderedMarker != options.MarkerAsterisk {
		t.Errorf("List.UnorderedMarker = %q, want %q", got.List.UnorderedMarker, options.MarkerAsterisk)
	}
	if got.List.IndentWidth != 4 {
		t.Errorf("List.IndentWidth = %d, want 4", got.List.IndentWidth)
	}
	if got.CodeBlock.FenceChar != options.FenceBacktick {
		t.Errorf("CodeBlock.FenceChar = %q, want %q", got.CodeBlock.FenceChar, options.FenceBacktick)
	}
	spec, ok := got.CodeBlock.Formatters["go"]
	if !ok {
		t.Fatal("CodeBlock.Formatters[\"go\"] missing")
	}
	if spec.Command != "gofmt" {
		t.Errorf("Formatters[go].Command = %q, want gofmt", spec.Command)
	}
	// Untouched sections keep their defaults.
	if got.OrderedList.IndentWidth != options.Default().OrderedList.IndentWidth {
		t.Errorf("OrderedList.IndentWidth changed unexpectedly: %d", got.OrderedList.IndentWidth)
	}
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := "not_a_real_key = true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
	var cfgErr *ConfigError
	if !asConfigError(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func asConfigError(err error, target **ConfigError) bool {
	if ce, ok := err.(*ConfigError); ok {
		*target = ce
		return true
	}
	return false
}
