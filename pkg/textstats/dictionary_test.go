package textstats

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeStoplist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stoplist.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write stoplist: %v", err)
	}
	return path
}

func TestDictionary_Load(t *testing.T) {
	path := writeStoplist(t, "# common words\nThe\n\n  a  \nand\n")
	dict, err := NewDictionary(path)
	if err != nil {
		t.Fatalf("Failed to load stoplist: %v", err)
	}
	defer dict.Close()

	if dict.WordCount() != 3 {
		t.Errorf("WordCount() = %d, want 3", dict.WordCount())
	}

	tests := []struct {
		word     string
		expected bool
	}{
		{"the", true},
		{"THE", true},
		{"a", true},
		{"and", true},
		{"cat", false},
		{"# common words", false},
	}
	for _, tt := range tests {
		if got := dict.Contains(tt.word); got != tt.expected {
			t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.expected)
		}
	}
}

func TestDictionary_MissingFile(t *testing.T) {
	_, err := NewDictionary(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("expected error for missing stoplist")
	}
}

func TestDictionary_AddRemoveSave(t *testing.T) {
	path := writeStoplist(t, "the\n")
	dict, err := NewDictionary(path)
	if err != nil {
		t.Fatalf("Failed to load stoplist: %v", err)
	}
	defer dict.Close()

	if err := dict.AddWord("Of"); err != nil {
		t.Fatalf("AddWord: %v", err)
	}
	if !dict.Contains("of") {
		t.Error("expected 'of' after AddWord")
	}
	if err := dict.RemoveWord("the"); err != nil {
		t.Fatalf("RemoveWord: %v", err)
	}
	if dict.Contains("the") {
		t.Error("expected 'the' to be removed")
	}
	if err := dict.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := NewDictionary(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	defer reloaded.Close()
	if reloaded.WordCount() != 1 || !reloaded.Contains("of") {
		t.Errorf("reloaded stoplist has %d words", reloaded.WordCount())
	}
}

func TestDictionary_FromWords(t *testing.T) {
	dict, err := NewDictionaryFromWords(nil)
	if err != nil {
		t.Fatalf("NewDictionaryFromWords: %v", err)
	}
	defer dict.Close()

	if dict.Contains("anything") {
		t.Error("empty dictionary should contain nothing")
	}
	if err := dict.Save(); err == nil {
		t.Error("Save without a path should fail")
	}

	path := filepath.Join(t.TempDir(), "new.txt")
	dict.AddWord("b")
	dict.AddWord("a")
	if err := dict.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "a\nb\n" {
		t.Errorf("saved %q, want sorted words", data)
	}
	if err := dict.Save(); err != nil {
		t.Errorf("Save after SaveAs: %v", err)
	}
}

func TestDictionary_Close(t *testing.T) {
	dict, err := NewDictionaryFromWords([]string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	if err := dict.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if dict.Contains("x") {
		t.Error("closed dictionary should not report matches")
	}
	if err := dict.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestStopFilter(t *testing.T) {
	dict, err := NewDictionaryFromWords([]string{"the", "a"})
	if err != nil {
		t.Fatal(err)
	}
	defer dict.Close()

	tok := NewTokenizer(Words, StopFilter(dict))
	result := tok.Tokenize("The cat saw a dog")
	expected := []string{"cat", "saw", "dog"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Tokenize with stoplist = %q, want %q", result, expected)
	}
}
