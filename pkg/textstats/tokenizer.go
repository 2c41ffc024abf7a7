package textstats

import (
	"fmt"
	"regexp"
	"strings"
)

// Delimiter expressions used by the fixed analyses.
const (
	WordsExpr      = `[\s.,/:\n]+`
	WhitespaceExpr = `\s+`
	ParagraphsExpr = `\n\s*\n`
	LinesExpr      = `\r?\n`
)

// Pattern is a named, compiled delimiter.
type Pattern struct {
	Name string
	re   *regexp.Regexp
}

// NewPattern compiles expr. Expressions that match the empty string are
// rejected since they would split between every character.
func NewPattern(name, expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, name, err)
	}
	if re.MatchString("") {
		return Pattern{}, fmt.Errorf("%w: %s: %q matches the empty string", ErrInvalidPattern, name, expr)
	}
	return Pattern{Name: name, re: re}, nil
}

// MustPattern is like NewPattern but panics on error.
func MustPattern(name, expr string) Pattern {
	p, err := NewPattern(name, expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source expression.
func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// Default patterns.
var (
	Words      = MustPattern("words", WordsExpr)
	Whitespace = MustPattern("whitespace", WhitespaceExpr)
	Paragraphs = MustPattern("paragraphs", ParagraphsExpr)
	Lines      = MustPattern("lines", LinesExpr)
)

// Split splits text on every match of p and drops empty and
// whitespace-only tokens. Order is preserved and case is untouched.
func Split(text string, p Pattern) []string {
	parts := p.re.Split(text, -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if isBlank(part) {
			continue
		}
		tokens = append(tokens, part)
	}
	return tokens
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SegmentType identifies the type of segment.
type SegmentType int

const (
	SegmentToken SegmentType = iota
	SegmentDelimiter
)

// Segment is a piece of text between or at delimiter matches.
// Start and End are byte offsets into the source.
type Segment struct {
	Text  string
	Type  SegmentType
	Start int
	End   int
}

// Segments splits text on p but keeps the delimiter runs as their own
// segments. Concatenating every segment's Text yields text.
func Segments(text string, p Pattern) []Segment {
	var segments []Segment
	last := 0
	for _, loc := range p.re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]], Type: SegmentToken, Start: last, End: loc[0]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Type: SegmentDelimiter, Start: loc[0], End: loc[1]})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:], Type: SegmentToken, Start: last, End: len(text)})
	}
	return segments
}

// SplitKeep returns the text of every segment, delimiters included.
func SplitKeep(text string, p Pattern) []string {
	segments := Segments(text, p)
	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = seg.Text
	}
	return parts
}

// TokenFilter transforms a token sequence after splitting.
type TokenFilter func([]string) []string

// Tokenizer splits text with a pattern and runs the result through an
// optional chain of filters.
type Tokenizer struct {
	pattern Pattern
	filter  func([]string) []string
}

// NewTokenizer creates a tokenizer for p.
func NewTokenizer(p Pattern, filters ...TokenFilter) *Tokenizer {
	t := &Tokenizer{pattern: p}
	if len(filters) > 0 {
		stages := make([]func([]string) []string, len(filters))
		for i, f := range filters {
			stages[i] = f
		}
		t.filter = Pipe(stages[0], stages[1:]...)
	}
	return t
}

// Pattern returns the tokenizer's delimiter.
func (t *Tokenizer) Pattern() Pattern {
	return t.pattern
}

// Tokenize splits text and applies the filters.
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := Split(text, t.pattern)
	if t.filter != nil {
		tokens = t.filter(tokens)
	}
	return tokens
}
