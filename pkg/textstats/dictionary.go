package textstats

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/vellum"
)

// Dictionary is a stoplist held in an FST for fast lookups.
type Dictionary struct {
	fst   *vellum.FST
	words map[string]struct{} // Source of truth for modifications
	path  string
	mu    sync.RWMutex
}

// NewDictionary loads a stoplist from a text file with one word per line.
// Blank lines and lines starting with "#" are ignored.
func NewDictionary(path string) (*Dictionary, error) {
	d := &Dictionary{
		words: make(map[string]struct{}),
		path:  path,
	}

	if err := d.loadTextFile(); err != nil {
		return nil, err
	}
	if err := d.rebuildFST(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewDictionaryFromWords builds an unsaved dictionary from words.
func NewDictionaryFromWords(words []string) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			d.words[strings.ToLower(w)] = struct{}{}
		}
	}
	if err := d.rebuildFST(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dictionary) loadTextFile() error {
	file, err := os.Open(d.path)
	if err != nil {
		return fmt.Errorf("open stoplist: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.words[strings.ToLower(word)] = struct{}{}
	}
	return scanner.Err()
}

// Contains checks if a word exists in the dictionary (case-insensitive).
func (d *Dictionary) Contains(word string) bool {
	lower := strings.ToLower(word)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.fst == nil {
		return false
	}
	_, exists, _ := d.fst.Get([]byte(lower))
	return exists
}

// AddWord adds a word to the dictionary and rebuilds the FST.
func (d *Dictionary) AddWord(word string) error {
	lower := strings.ToLower(strings.TrimSpace(word))
	if lower == "" {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.words[lower] = struct{}{}
	return d.rebuildFST()
}

// RemoveWord removes a word from the dictionary and rebuilds the FST.
func (d *Dictionary) RemoveWord(word string) error {
	lower := strings.ToLower(strings.TrimSpace(word))

	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.words, lower)
	return d.rebuildFST()
}

// rebuildFST rebuilds the in-memory FST (caller must hold lock).
func (d *Dictionary) rebuildFST() error {
	if d.fst != nil {
		d.fst.Close()
		d.fst = nil
	}

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return err
	}
	for _, word := range d.sortedWords() {
		if err := builder.Insert([]byte(word), 0); err != nil {
			builder.Close()
			return err
		}
	}
	if err := builder.Close(); err != nil {
		return err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return err
	}
	d.fst = fst
	return nil
}

func (d *Dictionary) sortedWords() []string {
	sorted := make([]string, 0, len(d.words))
	for word := range d.words {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)
	return sorted
}

// Save writes the current word set back to the file it was loaded from.
func (d *Dictionary) Save() error {
	d.mu.RLock()
	path := d.path
	d.mu.RUnlock()

	if path == "" {
		return fmt.Errorf("save stoplist: no path")
	}
	return d.SaveAs(path)
}

// SaveAs writes the sorted word set to path and makes it the dictionary's
// file for later saves.
func (d *Dictionary) SaveAs(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range d.sortedWords() {
		if _, err := w.WriteString(word + "\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	d.path = path
	return nil
}

// Close releases FST resources.
func (d *Dictionary) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fst != nil {
		err := d.fst.Close()
		d.fst = nil
		return err
	}
	return nil
}

// WordCount returns the number of words in the dictionary.
func (d *Dictionary) WordCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

// StopFilter returns a token filter dropping every token in d.
func StopFilter(d *Dictionary) TokenFilter {
	return func(tokens []string) []string {
		kept := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if !d.Contains(tok) {
				kept = append(kept, tok)
			}
		}
		return kept
	}
}
