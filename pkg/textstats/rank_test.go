package textstats

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestTop(t *testing.T) {
	tally := NewTally(Split("The cat sat. The dog sat.", Words), NewNormalizer())

	result := Top(tally, DefaultLimit)
	expected := []Entry{{"the", 2}, {"sat", 2}, {"cat", 1}, {"dog", 1}}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Top = %v, want %v", result, expected)
	}
}

func TestBottom(t *testing.T) {
	tally := NewTally(Split("The cat sat. The dog sat.", Words), NewNormalizer())

	result := Bottom(tally, DefaultLimit)
	expected := []Entry{{"cat", 1}, {"dog", 1}, {"the", 2}, {"sat", 2}}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Bottom = %v, want %v", result, expected)
	}
}

// manyWords returns n distinct words where word i occurs i+1 times.
func manyWords(n int) []string {
	var tokens []string
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			tokens = append(tokens, fmt.Sprintf("w%02d", i))
		}
	}
	return tokens
}

func TestTopBottom_OrderAndBounds(t *testing.T) {
	for _, distinct := range []int{0, 1, 5, 10, 25} {
		tally := NewTally(manyWords(distinct), NewNormalizer())
		top := Top(tally, DefaultLimit)
		bottom := Bottom(tally, DefaultLimit)

		want := distinct
		if want > DefaultLimit {
			want = DefaultLimit
		}
		if len(top) != want || len(bottom) != want {
			t.Errorf("distinct=%d: len(top)=%d len(bottom)=%d, want %d", distinct, len(top), len(bottom), want)
		}
		for i := 1; i < len(top); i++ {
			if top[i-1].Count < top[i].Count {
				t.Errorf("distinct=%d: top not descending at %d: %v", distinct, i, top)
			}
			if bottom[i-1].Count > bottom[i].Count {
				t.Errorf("distinct=%d: bottom not ascending at %d: %v", distinct, i, bottom)
			}
		}
	}
}

func TestTopBottom_Disjoint(t *testing.T) {
	tally := NewTally(manyWords(20), NewNormalizer())
	top := Top(tally, DefaultLimit)
	bottom := Bottom(tally, DefaultLimit)

	inTop := make(map[string]bool)
	for _, e := range top {
		inTop[e.Word] = true
	}
	for _, e := range bottom {
		if inTop[e.Word] {
			t.Errorf("%q in both top and bottom", e.Word)
		}
	}
	if top[0].Word != "w19" || bottom[0].Word != "w00" {
		t.Errorf("top[0]=%q bottom[0]=%q", top[0].Word, bottom[0].Word)
	}
}

func TestRank_Limit(t *testing.T) {
	tally := NewTally(manyWords(5), NewNormalizer())
	if got := Top(tally, 2); len(got) != 2 {
		t.Errorf("Top(2) returned %d entries", len(got))
	}
	if got := Bottom(tally, 0); len(got) != 0 {
		t.Errorf("Bottom(0) returned %d entries", len(got))
	}
	if got := Top(tally, -1); len(got) != 0 {
		t.Errorf("Top(-1) returned %d entries", len(got))
	}
}

func TestLongestShortest(t *testing.T) {
	// One word per length from 1 to 12, in scrambled order.
	lengths := []int{5, 12, 1, 9, 3, 11, 7, 2, 10, 4, 8, 6}
	var tokens []string
	for _, l := range lengths {
		tokens = append(tokens, strings.Repeat("x", l))
	}
	lt := NewLengthTable(tokens, NewNormalizer())

	longest := Longest(lt, DefaultLimit)
	shortest := Shortest(lt, DefaultLimit)
	if len(longest) != DefaultLimit || len(shortest) != DefaultLimit {
		t.Fatalf("len(longest)=%d len(shortest)=%d", len(longest), len(shortest))
	}
	for i := 0; i < DefaultLimit; i++ {
		if longest[i].Length != 12-i {
			t.Errorf("longest[%d].Length = %d, want %d", i, longest[i].Length, 12-i)
		}
		if shortest[i].Length != i+1 {
			t.Errorf("shortest[%d].Length = %d, want %d", i, shortest[i].Length, i+1)
		}
		if len(shortest[i].Words) != 1 || len(shortest[i].Words[0]) != i+1 {
			t.Errorf("shortest[%d].Words = %q", i, shortest[i].Words)
		}
	}
}

func TestLongestShortest_Empty(t *testing.T) {
	lt := NewLengthTable(nil, NewNormalizer())
	if got := Longest(lt, DefaultLimit); len(got) != 0 {
		t.Errorf("Longest(empty) = %v", got)
	}
	if got := Shortest(lt, DefaultLimit); len(got) != 0 {
		t.Errorf("Shortest(empty) = %v", got)
	}
}

func TestRank_EmptyTally(t *testing.T) {
	tally := NewTally(Split("", Words), NewNormalizer())
	if got := Top(tally, DefaultLimit); got == nil || len(got) != 0 {
		t.Errorf("Top(empty) = %#v, want empty list", got)
	}
	if got := Bottom(tally, DefaultLimit); got == nil || len(got) != 0 {
		t.Errorf("Bottom(empty) = %#v, want empty list", got)
	}
}
