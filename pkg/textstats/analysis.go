package textstats

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Report titles, in the order the analyses run.
const (
	TitleTop               = "The top 10 most frequently used:"
	TitleBottom            = "The top 10 least frequently used:"
	TitleChars             = "Total number of chars w/o spaces"
	TitleCharsWithSpaces   = "Total number of chars w/ spaces"
	TitleParagraphs        = "Total number of paragraphs"
	TitleLines             = "Total number of lines"
	TitleLongest           = "The top 10 longest words:"
	TitleShortest          = "The top 10 shortest words:"
	TitleWords             = "Words in text"
	TitleWordsPerParagraph = "Words per paragraph avg:"
	TitleLinesPerParagraph = "Lines per paragraph avg:"
	TitleWordsPerLine      = "Words per line avg:"
)

// Analysis is one named report over the source text.
type Analysis struct {
	Name string
	Run  func(text string) Report
}

// Options configures the analysis battery. Zero values fall back to the
// default patterns, a lower-casing normalizer and DefaultLimit.
type Options struct {
	Words      Pattern
	Whitespace Pattern
	Paragraphs Pattern
	Lines      Pattern
	Normalizer *Normalizer
	Stoplist   *Dictionary
	Limit      int
}

func (o Options) withDefaults() Options {
	if o.Words.re == nil {
		o.Words = Words
	}
	if o.Whitespace.re == nil {
		o.Whitespace = Whitespace
	}
	if o.Paragraphs.re == nil {
		o.Paragraphs = Paragraphs
	}
	if o.Lines.re == nil {
		o.Lines = Lines
	}
	if o.Normalizer == nil {
		o.Normalizer = NewNormalizer()
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	return o
}

// NewAnalyses builds the ordered battery of analyses.
func NewAnalyses(opts Options) []Analysis {
	opts = opts.withDefaults()
	norm := opts.Normalizer
	n := opts.Limit

	var filters []TokenFilter
	if opts.Stoplist != nil {
		filters = append(filters, StopFilter(opts.Stoplist))
	}
	words := NewTokenizer(opts.Words, filters...).Tokenize

	tally := func(tokens []string) *Tally { return NewTally(tokens, norm) }
	lengths := func(tokens []string) *LengthTable { return NewLengthTable(tokens, norm) }
	top := func(t *Tally) []Entry { return Top(t, n) }
	bottom := func(t *Tally) []Entry { return Bottom(t, n) }
	longest := func(lt *LengthTable) []LengthEntry { return Longest(lt, n) }
	shortest := func(lt *LengthTable) []LengthEntry { return Shortest(lt, n) }

	split := func(p Pattern) func(string) []string {
		return func(text string) []string { return Split(text, p) }
	}
	rankAs := func(title string) func([]Entry) Report {
		return func(e []Entry) Report { return RankReport(title, e) }
	}
	lengthAs := func(title string) func([]LengthEntry) Report {
		return func(e []LengthEntry) Report { return LengthReport(title, e) }
	}
	totalAs := func(title string) func(int) Report {
		return func(v int) Report { return TotalReport(title, v) }
	}
	averageAs := func(title string, outer, inner Pattern) func(string) Report {
		return func(text string) Report {
			v, err := Average(UnitCounts(text, outer, inner))
			return StatReport(title, v, err)
		}
	}

	return []Analysis{
		{Name: "top", Run: Then(Then(Then(words, tally), top), rankAs(TitleTop))},
		{Name: "bottom", Run: Then(Then(Then(words, tally), bottom), rankAs(TitleBottom))},
		{Name: "chars", Run: Then(Then(split(opts.Whitespace), SumChars), totalAs(TitleChars))},
		{Name: "chars-with-spaces", Run: Then(Then(func(text string) []string {
			return SplitKeep(text, opts.Whitespace)
		}, SumChars), totalAs(TitleCharsWithSpaces))},
		{Name: "paragraphs", Run: Then(Then(split(opts.Paragraphs), CountUnits), totalAs(TitleParagraphs))},
		{Name: "lines", Run: Then(Then(split(opts.Lines), CountUnits), totalAs(TitleLines))},
		{Name: "longest", Run: Then(Then(Then(words, lengths), longest), lengthAs(TitleLongest))},
		{Name: "shortest", Run: Then(Then(Then(words, lengths), shortest), lengthAs(TitleShortest))},
		{Name: "words", Run: Then(Then(words, Dedupe), func(w []string) Report { return WordListReport(TitleWords, w) })},
		{Name: "words-per-paragraph", Run: averageAs(TitleWordsPerParagraph, opts.Paragraphs, opts.Words)},
		{Name: "lines-per-paragraph", Run: averageAs(TitleLinesPerParagraph, opts.Paragraphs, opts.Lines)},
		{Name: "words-per-line", Run: averageAs(TitleWordsPerLine, opts.Lines, opts.Words)},
	}
}

// Runner prints a battery of analyses to a writer.
type Runner struct {
	Analyses []Analysis
	Out      io.Writer
}

// NewRunner creates a runner over analyses writing to out.
func NewRunner(analyses []Analysis, out io.Writer) *Runner {
	return &Runner{Analyses: analyses, Out: out}
}

// Run trims text and prints every analysis in order. It stops at the first
// write error or when ctx is done.
func (r *Runner) Run(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	emit, emitErr := Printer(r.Out)
	for _, a := range r.Analyses {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", a.Name, err)
		}
		Then(a.Run, emit)(text)
		if err := emitErr(); err != nil {
			return fmt.Errorf("%s: %w", a.Name, err)
		}
	}
	return nil
}
