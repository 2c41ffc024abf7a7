package textstats

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kljensen/snowball"
	"golang.org/x/text/unicode/norm"
)

// DefaultCacheSize is the default number of memoized normalizations.
const DefaultCacheSize = 10_000

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer turns tokens into normalized words by applying its steps in
// order. Results are memoized in an LRU cache unless the cache is disabled.
type Normalizer struct {
	apply func(string) string
	cache *lru.Cache[string, string]
}

// NewNormalizer creates a cached normalizer that only lower-cases.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithSteps(DefaultCacheSize, Lowercase)
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
// A cacheSize of zero or less disables caching. With no steps the
// normalizer is the identity.
func NewNormalizerWithSteps(cacheSize int, steps ...NormalizerFunc) *Normalizer {
	n := &Normalizer{apply: func(s string) string { return s }}
	if len(steps) > 0 {
		fns := make([]func(string) string, len(steps))
		for i, step := range steps {
			fns[i] = step
		}
		n.apply = Pipe(fns[0], fns[1:]...)
	}
	if cacheSize > 0 {
		n.cache, _ = lru.New[string, string](cacheSize)
	}
	return n
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	if n.cache == nil {
		return n.apply(s)
	}
	if v, ok := n.cache.Get(s); ok {
		return v
	}
	v := n.apply(s)
	n.cache.Add(s, v)
	return v
}

// NormalizeAll normalizes every token, preserving order.
func (n *Normalizer) NormalizeAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = n.Normalize(tok)
	}
	return out
}

// CacheSize returns the number of cached entries (0 if cache is disabled).
func (n *Normalizer) CacheSize() int {
	if n.cache == nil {
		return 0
	}
	return n.cache.Len()
}

// CacheEnabled returns true if caching is enabled.
func (n *Normalizer) CacheEnabled() bool {
	return n.cache != nil
}

// ClearCache clears the memoization cache.
func (n *Normalizer) ClearCache() {
	if n.cache != nil {
		n.cache.Purge()
	}
}

// Lowercase converts to lowercase.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// NFC applies Unicode canonical composition so that precomposed and
// decomposed spellings count as the same word.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Stemmer returns a step applying the Snowball stemmer for language
// ("english", "spanish", "french", "russian", "swedish", "norwegian",
// "hungarian", "german"). Words the stemmer rejects pass through unchanged.
func Stemmer(language string) NormalizerFunc {
	return func(s string) string {
		stemmed, err := snowball.Stem(s, language, true)
		if err != nil {
			return s
		}
		return stemmed
	}
}

// StemLanguageSupported reports whether the Snowball stemmer knows language.
func StemLanguageSupported(language string) bool {
	_, err := snowball.Stem("test", language, true)
	return err == nil
}
