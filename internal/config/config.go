// Package config loads Hongdown's TOML configuration file and resolves
// it, merged with defaults, into an internal/options.Options. It follows
// the teacher's BurntSushi/toml-based cmd/tdx/userconfig.go in spirit —
// multi-path discovery, decode-then-merge-with-defaults — generalized
// from tdx's fixed XDG search to an upward walk from the target file's
// own directory, since Hongdown's config is project-local rather than a
// single global user preference file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/hongdown/hongdown/internal/options"
)

// FileName is the configuration file Hongdown looks for.
const FileName = "hongdown.toml"

// ConfigError reports a problem loading or decoding the configuration
// file (spec.md §7: surfaced to the CLI as exit code 2).
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("hongdown: config error in %s: %s", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// fileConfig mirrors the TOML section layout of spec.md §3/§6 with
// pointer fields so we can distinguish "not set" from "set to zero".
type fileConfig struct {
	LineWidth *int `toml:"line_width"`

	Heading *struct {
		SetextH1     *bool    `toml:"setext_h1"`
		SetextH2     *bool    `toml:"setext_h2"`
		SentenceCase *bool    `toml:"sentence_case"`
		ProperNouns  []string `toml:"proper_nouns"`
		CommonNouns  []string `toml:"common_nouns"`
	} `toml:"heading"`

	List *struct {
		UnorderedMarker *string `toml:"unordered_marker"`
		LeadingSpaces   *int    `toml:"leading_spaces"`
		TrailingSpaces  *int    `toml:"trailing_spaces"`
		IndentWidth     *int    `toml:"indent_width"`
	} `toml:"list"`

	OrderedList *struct {
		OddLevelMarker  *string `toml:"odd_level_marker"`
		EvenLevelMarker *string `toml:"even_level_marker"`
		Pad             *string `toml:"pad"`
		IndentWidth     *int    `toml:"indent_width"`
	} `toml:"ordered_list"`

	CodeBlock *struct {
		FenceChar       *string                  `toml:"fence_char"`
		MinFenceLength  *int                     `toml:"min_fence_length"`
		SpaceAfterFence *bool                    `toml:"space_after_fence"`
		DefaultLanguage *string                  `toml:"default_language"`
		Formatters      map[string]formatterSpec `toml:"formatters"`
	} `toml:"code_block"`

	ThematicBreak *struct {
		Style         *string `toml:"style"`
		LeadingSpaces *int    `toml:"leading_spaces"`
	} `toml:"thematic_break"`

	Punctuation *struct {
		CurlyDoubleQuotes *bool   `toml:"curly_double_quotes"`
		CurlySingleQuotes *bool   `toml:"curly_single_quotes"`
		CurlyApostrophes  *bool   `toml:"curly_apostrophes"`
		Ellipsis          *bool   `toml:"ellipsis"`
		EnDash            *string `toml:"en_dash"`
		EmDash            *string `toml:"em_dash"`
	} `toml:"punctuation"`
}

type formatterSpec struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	Timeout int      `toml:"timeout"`
}

// Discover walks upward from dir looking for hongdown.toml, returning
// the empty string if none is found by the filesystem root.
func Discover(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load reads and resolves path into Options, starting from
// options.Default() and overlaying every field the file sets. Unknown
// keys are rejected (spec.md §6: "Unknown keys are rejected by the
// loader").
func Load(path string) (options.Options, error) {
	resolved := options.Default()
	if path == "" {
		return resolved, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return resolved, &ConfigError{Path: path, Err: err}
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if _, err := dec.Decode(&fc); err != nil {
		return resolved, &ConfigError{Path: path, Err: err}
	}

	applyFileConfig(&resolved, &fc)
	return resolved, nil
}

func applyFileConfig(o *options.Options, fc *fileConfig) {
	if fc.LineWidth != nil {
		o.LineWidth = *fc.LineWidth
	}
	if h := fc.Heading; h != nil {
		if h.SetextH1 != nil {
			o.Heading.SetextH1 = *h.SetextH1
		}
		if h.SetextH2 != nil {
			o.Heading.SetextH2 = *h.SetextH2
		}
		if h.SentenceCase != nil {
			o.Heading.SentenceCase = *h.SentenceCase
		}
		o.Heading.ProperNouns = append(o.Heading.ProperNouns, h.ProperNouns...)
		o.Heading.CommonNouns = append(o.Heading.CommonNouns, h.CommonNouns...)
	}
	if l := fc.List; l != nil {
		if l.UnorderedMarker != nil && len(*l.UnorderedMarker) > 0 {
			o.List.UnorderedMarker = options.UnorderedMarker((*l.UnorderedMarker)[0])
		}
		if l.LeadingSpaces != nil {
			o.List.LeadingSpaces = *l.LeadingSpaces
		}
		if l.TrailingSpaces != nil {
			o.List.TrailingSpaces = *l.TrailingSpaces
		}
		if l.IndentWidth != nil {
			o.List.IndentWidth = *l.IndentWidth
		}
	}
	if ol := fc.OrderedList; ol != nil {
		if ol.OddLevelMarker != nil && len(*ol.OddLevelMarker) > 0 {
			o.OrderedList.OddLevelMarker = options.OrderedSeparator((*ol.OddLevelMarker)[0])
		}
		if ol.EvenLevelMarker != nil && len(*ol.EvenLevelMarker) > 0 {
			o.OrderedList.EvenLevelMarker = options.OrderedSeparator((*ol.EvenLevelMarker)[0])
		}
		if ol.Pad != nil {
			if *ol.Pad == "end" {
				o.OrderedList.Pad = options.PadEnd
			} else {
				o.OrderedList.Pad = options.PadStart
			}
		}
		if ol.IndentWidth != nil {
			o.OrderedList.IndentWidth = *ol.IndentWidth
		}
	}
	if cb := fc.CodeBlock; cb != nil {
		if cb.FenceChar != nil && len(*cb.FenceChar) > 0 {
			o.CodeBlock.FenceChar = options.FenceChar((*cb.FenceChar)[0])
		}
		if cb.MinFenceLength != nil {
			o.CodeBlock.MinFenceLength = *cb.MinFenceLength
		}
		if cb.SpaceAfterFence != nil {
			o.CodeBlock.SpaceAfterFence = *cb.SpaceAfterFence
		}
		if cb.DefaultLanguage != nil {
			o.CodeBlock.DefaultLanguage = *cb.DefaultLanguage
		}
		if len(cb.Formatters) > 0 {
			if o.CodeBlock.Formatters == nil {
				o.CodeBlock.Formatters = make(map[string]options.FormatterSpec, len(cb.Formatters))
			}
			for lang, spec := range cb.Formatters {
				o.CodeBlock.Formatters[lang] = options.FormatterSpec{
					Command: spec.Command,
					Args:    spec.Args,
					Timeout: spec.Timeout,
				}
			}
		}
	}
	if tb := fc.ThematicBreak; tb != nil {
		if tb.Style != nil {
			o.ThematicBreak.Style = options.ThematicBreakStyle(*tb.Style)
		}
		if tb.LeadingSpaces != nil {
			o.ThematicBreak.LeadingSpaces = *tb.LeadingSpaces
		}
	}
	if p := fc.Punctuation; p != nil {
		if p.CurlyDoubleQuotes != nil {
			o.Punctuation.CurlyDoubleQuotes = *p.CurlyDoubleQuotes
		}
		if p.CurlySingleQuotes != nil {
			o.Punctuation.CurlySingleQuotes = *p.CurlySingleQuotes
		}
		if p.CurlyApostrophes != nil {
			o.Punctuation.CurlyApostrophes = *p.CurlyApostrophes
		}
		if p.Ellipsis != nil {
			o.Punctuation.Ellipsis = *p.Ellipsis
		}
		if p.EnDash != nil {
			o.Punctuation.EnDash = *p.EnDash
		}
		if p.EmDash != nil {
			o.Punctuation.EmDash = *p.EmDash
		}
	}
}
