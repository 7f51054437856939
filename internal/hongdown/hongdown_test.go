package hongdown

import (
	"strings"
	"testing"

	"github.com/hongdown/hongdown/internal/options"
)

func TestFormat_RoundTripsSimpleDocument(t *testing.T) {
	source := []byte("# Title\n\nSome body text   with extra spaces.\n")
	out, err := Format(source, options.Default())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if out == "" {
		t.Fatal("Format() returned empty output")
	}
}

func TestFormat_ExactOutputForHeadingAndParagraph(t *testing.T) {
	source := []byte("# Title\n\nSome body text   with extra spaces.\n")
	out, err := Format(source, options.Default())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	want := "Title\n=====\n\nSome body text with extra spaces.\n"
	if out != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestIsIdempotent_TrueForAlreadyFormattedDocument(t *testing.T) {
	opts := options.Default()
	source := []byte("# Title\n\nSome body text.\n")
	first, err := Format(source, opts)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	ok, err := IsIdempotent([]byte(first), opts)
	if err != nil {
		t.Fatalf("IsIdempotent() failed: %v", err)
	}
	if !ok {
		t.Errorf("expected already-formatted output to be idempotent, got two different passes")
	}
}

func TestFormatWithWarnings_SurfacesDirectiveWarnings(t *testing.T) {
	source := []byte("<!-- hongdown-proper-nouns: -->\n\nSome text.\n")
	_, warnings, err := FormatWithWarnings(source, options.Default())
	if err != nil {
		t.Fatalf("FormatWithWarnings() failed: %v", err)
	}
	if len(warnings) == 0 {
		t.Error("expected a warning for an empty proper-nouns directive argument")
	}
}

func TestFormatWithCodeFormatter_NilHookLeavesCodeUnchanged(t *testing.T) {
	source := []byte("```go\nfunc main(){}\n```\n")
	out, _, err := FormatWithCodeFormatter(source, options.Default(), nil)
	if err != nil {
		t.Fatalf("FormatWithCodeFormatter() failed: %v", err)
	}
	if out == "" {
		t.Fatal("expected non-empty output")
	}
	if !strings.Contains(out, "\nfunc main(){}\n") {
		t.Errorf("FormatWithCodeFormatter() = %q, want the code line unchanged", out)
	}
}
