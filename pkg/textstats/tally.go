package textstats

import "unicode/utf8"

// Tally is a frequency table of normalized words. Keys remember the order
// in which they were first seen.
type Tally struct {
	counts map[string]int
	order  []string
	total  int
}

// NewTally folds tokens into a frequency table keyed by normalized word.
func NewTally(tokens []string, n *Normalizer) *Tally {
	t := &Tally{counts: make(map[string]int)}
	for _, tok := range tokens {
		word := n.Normalize(tok)
		if _, ok := t.counts[word]; !ok {
			t.order = append(t.order, word)
		}
		t.counts[word]++
		t.total++
	}
	return t
}

// Count returns the number of occurrences of word (already normalized).
func (t *Tally) Count(word string) int {
	return t.counts[word]
}

// Len returns the number of distinct words.
func (t *Tally) Len() int {
	return len(t.order)
}

// Total returns the sum of all counts.
func (t *Tally) Total() int {
	return t.total
}

// Words returns the distinct words in first-seen order.
func (t *Tally) Words() []string {
	return append([]string(nil), t.order...)
}

// Entries returns one entry per word in first-seen order.
func (t *Tally) Entries() []Entry {
	entries := make([]Entry, len(t.order))
	for i, w := range t.order {
		entries[i] = Entry{Word: w, Count: t.counts[w]}
	}
	return entries
}

// LengthTable groups distinct normalized words by their length in runes.
type LengthTable struct {
	groups map[int][]string
	seen   map[string]struct{}
	order  []int
}

// NewLengthTable builds the length table for tokens. Within a length the
// words keep their first-seen order and appear once.
func NewLengthTable(tokens []string, n *Normalizer) *LengthTable {
	lt := &LengthTable{
		groups: make(map[int][]string),
		seen:   make(map[string]struct{}),
	}
	for _, tok := range tokens {
		word := n.Normalize(tok)
		if _, ok := lt.seen[word]; ok {
			continue
		}
		lt.seen[word] = struct{}{}
		length := utf8.RuneCountInString(word)
		if _, ok := lt.groups[length]; !ok {
			lt.order = append(lt.order, length)
		}
		lt.groups[length] = append(lt.groups[length], word)
	}
	return lt
}

// Words returns the words of the given length.
func (lt *LengthTable) Words(length int) []string {
	return append([]string(nil), lt.groups[length]...)
}

// Lengths returns the length keys in first-seen order.
func (lt *LengthTable) Lengths() []int {
	return append([]int(nil), lt.order...)
}

// Len returns the number of distinct lengths.
func (lt *LengthTable) Len() int {
	return len(lt.order)
}

// Dedupe returns the distinct tokens in first-seen order. Tokens are
// compared as-is, without normalization.
func Dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// SumChars returns the total length of tokens in runes.
func SumChars(tokens []string) int {
	sum := 0
	for _, tok := range tokens {
		sum += utf8.RuneCountInString(tok)
	}
	return sum
}

// CountUnits returns the number of paragraphs or lines in a split.
func CountUnits(units []string) int {
	return len(units)
}

// UnitCounts splits text into units with outer and counts the inner tokens
// of each unit.
func UnitCounts(text string, outer, inner Pattern) []int {
	units := Split(text, outer)
	counts := make([]int, len(units))
	for i, unit := range units {
		counts[i] = len(Split(unit, inner))
	}
	return counts
}
