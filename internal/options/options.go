// Package options defines Hongdown's resolved configuration (spec.md §3).
// internal/config produces one of these from TOML plus CLI flags;
// internal/serializer never reads a config file directly.
package options

// UnorderedMarker is one of -, *, +.
type UnorderedMarker byte

const (
	MarkerDash      UnorderedMarker = '-'
	MarkerAsterisk  UnorderedMarker = '*'
	MarkerPlus      UnorderedMarker = '+'
)

// OrderedSeparator is the separator following an ordered list's number.
type OrderedSeparator byte

const (
	SeparatorDot    OrderedSeparator = '.'
	SeparatorParen  OrderedSeparator = ')'
)

// Pad controls which side of an ordered-list marker absorbs alignment
// padding (spec.md §4.4).
type Pad int

const (
	PadStart Pad = iota
	PadEnd
)

// FenceChar is one of ~ or `.
type FenceChar byte

const (
	FenceTilde     FenceChar = '~'
	FenceBacktick  FenceChar = '`'
)

// ThematicBreakStyle is the literal character run emitted for a thematic
// break, e.g. "---" or "***".
type ThematicBreakStyle string

// HeadingOptions configures heading style and the sentence-case transform
// (spec.md §4.1, §4.6).
type HeadingOptions struct {
	SetextH1     bool
	SetextH2     bool
	SentenceCase bool
	ProperNouns  []string
	CommonNouns  []string
}

// ListOptions configures unordered list marker geometry (spec.md §4.4).
type ListOptions struct {
	UnorderedMarker UnorderedMarker
	LeadingSpaces   int
	TrailingSpaces  int
	IndentWidth     int
}

// OrderedListOptions configures ordered list marker geometry.
type OrderedListOptions struct {
	OddLevelMarker  OrderedSeparator
	EvenLevelMarker OrderedSeparator
	Pad             Pad
	IndentWidth     int
}

// FormatterSpec names an external code formatter for one language.
type FormatterSpec struct {
	Command string
	Args    []string
	Timeout int // seconds; 0 means use the default (5s, spec.md §4.2)
}

// CodeBlockOptions configures fenced code block emission (spec.md §4.2).
type CodeBlockOptions struct {
	FenceChar       FenceChar
	MinFenceLength  int
	SpaceAfterFence bool
	DefaultLanguage string
	Formatters      map[string]FormatterSpec
}

// ThematicBreakOptions configures thematic break emission.
type ThematicBreakOptions struct {
	Style         ThematicBreakStyle
	LeadingSpaces int // 0-3
}

// PunctuationOptions configures SmartyPants-style substitution (spec.md §4.7).
type PunctuationOptions struct {
	CurlyDoubleQuotes bool
	CurlySingleQuotes bool
	CurlyApostrophes  bool
	Ellipsis          bool
	// EnDash/EmDash: empty string disables the substitution; non-empty is
	// the literal pattern to match in source text (spec.md: "false|string").
	EnDash string
	EmDash string
}

// Options is the fully resolved configuration the serializer consumes.
type Options struct {
	LineWidth    int
	Heading      HeadingOptions
	List         ListOptions
	OrderedList  OrderedListOptions
	CodeBlock    CodeBlockOptions
	ThematicBreak ThematicBreakOptions
	Punctuation  PunctuationOptions
}

// Default returns spec.md's documented defaults.
func Default() Options {
	return Options{
		LineWidth: 80,
		Heading: HeadingOptions{
			SetextH1:     true,
			SetextH2:     true,
			SentenceCase: false,
		},
		List: ListOptions{
			UnorderedMarker: MarkerDash,
			LeadingSpaces:   1,
			TrailingSpaces:  2,
			IndentWidth:     2,
		},
		OrderedList: OrderedListOptions{
			OddLevelMarker:  SeparatorDot,
			EvenLevelMarker: SeparatorParen,
			Pad:             PadStart,
			IndentWidth:     2,
		},
		CodeBlock: CodeBlockOptions{
			FenceChar:      FenceTilde,
			MinFenceLength: 4,
			SpaceAfterFence: true,
		},
		ThematicBreak: ThematicBreakOptions{
			Style:         "---",
			LeadingSpaces: 0,
		},
		Punctuation: PunctuationOptions{
			EmDash: "--",
		},
	}
}
