package text

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Stopwords is an immutable set of words excluded from matching.
type Stopwords struct {
	words map[string]struct{}
}

// NewStopwords creates a set from words, lower-cased.
func NewStopwords(words ...string) *Stopwords {
	s := &Stopwords{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.words[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// With returns a new set holding s and words.
func (s *Stopwords) With(words ...string) *Stopwords {
	out := &Stopwords{words: make(map[string]struct{}, len(s.words)+len(words))}
	for w := range s.words {
		out.words[w] = struct{}{}
	}
	for _, w := range words {
		out.words[strings.ToLower(w)] = struct{}{}
	}
	return out
}

// LoadStopwords reads one word per line. Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped.
func LoadStopwords(r io.Reader) (*Stopwords, error) {
	s := &Stopwords{words: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		s.words[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	return s, nil
}

// LoadStopwordsFile reads a stopword list from path.
func LoadStopwordsFile(path string) (*Stopwords, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open stopwords %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return LoadStopwords(f)
}

// Contains reports whether word is a stopword.
func (s *Stopwords) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stopwords.
func (s *Stopwords) Len() int { return len(s.words) }
