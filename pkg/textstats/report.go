package textstats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

var separator = strings.Repeat("-", 32)

// Report is the formatted rendering of one analysis.
type Report struct {
	Title string
	Lines []string
}

// WriteTo renders the report: a blank line, the title, a separator and
// the body lines.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.Title)
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")
	for _, line := range r.Lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// String returns the rendered report.
func (r Report) String() string {
	var b strings.Builder
	r.WriteTo(&b)
	return b.String()
}

// RankReport lists entries as "rank. word: count".
func RankReport(title string, entries []Entry) Report {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%d. %s: %d", i+1, e.Word, e.Count)
	}
	return Report{Title: title, Lines: lines}
}

// LengthReport lists length groups as "rank. length: word,word".
func LengthReport(title string, entries []LengthEntry) Report {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%d. %d: %s", i+1, e.Length, strings.Join(e.Words, ","))
	}
	return Report{Title: title, Lines: lines}
}

// TotalReport renders a single "total: n" line.
func TotalReport(title string, total int) Report {
	return Report{Title: title, Lines: []string{"total: " + strconv.Itoa(total)}}
}

// WordListReport prints the words followed by their total.
func WordListReport(title string, words []string) Report {
	return Report{
		Title: title,
		Lines: []string{
			"[" + strings.Join(words, ", ") + "]",
			"total: " + strconv.Itoa(len(words)),
		},
	}
}

// StatReport renders an average. A failed average is shown as undefined.
func StatReport(title string, value float64, err error) Report {
	if err != nil {
		return Report{Title: title, Lines: []string{"undefined"}}
	}
	return Report{Title: title, Lines: []string{strconv.FormatFloat(value, 'f', -1, 64)}}
}

// Printer returns a pass-through stage that writes each report to w.
// The first write error is kept and returned by the error func.
func Printer(w io.Writer) (func(Report) Report, func() error) {
	var werr error
	stage := Tap(func(r Report) {
		if werr != nil {
			return
		}
		_, werr = r.WriteTo(w)
	})
	return stage, func() error { return werr }
}
