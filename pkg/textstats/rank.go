package textstats

import "sort"

// DefaultLimit is the number of entries the fixed reports show.
const DefaultLimit = 10

// Entry pairs a word with its count.
type Entry struct {
	Word  string
	Count int
}

// LengthEntry pairs a word length with its distinct words.
type LengthEntry struct {
	Length int
	Words  []string
}

// Top returns at most n entries by count, highest first. Ties keep the
// table's first-seen order.
func Top(t *Tally, n int) []Entry {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return limit(entries, n)
}

// Bottom returns at most n entries by count, lowest first. Ties keep the
// table's first-seen order.
func Bottom(t *Tally, n int) []Entry {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count < entries[j].Count
	})
	return limit(entries, n)
}

// Longest returns at most n length groups, longest first.
func Longest(lt *LengthTable, n int) []LengthEntry {
	entries := lengthEntries(lt)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Length > entries[j].Length
	})
	return limit(entries, n)
}

// Shortest returns at most n length groups, shortest first.
func Shortest(lt *LengthTable, n int) []LengthEntry {
	entries := lengthEntries(lt)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Length < entries[j].Length
	})
	return limit(entries, n)
}

func lengthEntries(lt *LengthTable) []LengthEntry {
	lengths := lt.Lengths()
	entries := make([]LengthEntry, len(lengths))
	for i, l := range lengths {
		entries[i] = LengthEntry{Length: l, Words: lt.Words(l)}
	}
	return entries
}

func limit[T any](s []T, n int) []T {
	if n <= 0 {
		return s[:0]
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
