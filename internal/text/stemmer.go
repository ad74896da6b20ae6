package text

import (
	"fmt"

	"github.com/kljensen/snowball/english"
	"github.com/surgebase/porter2"

	"github.com/kailas-cloud/medanswer/internal/domain"
)

// Algorithm names a stemming algorithm.
type Algorithm string

const (
	// Porter2 is the English Porter2 stemmer.
	Porter2 Algorithm = "porter2"
	// Snowball is the Snowball English stemmer.
	Snowball Algorithm = "snowball"
	// None leaves words unchanged.
	None Algorithm = "none"
)

// Stemmer reduces a lower-cased word to its stem.
type Stemmer struct {
	algorithm Algorithm
}

// NewStemmer creates a stemmer for the named algorithm. An empty name selects Porter2.
func NewStemmer(algorithm string) (*Stemmer, error) {
	switch a := Algorithm(algorithm); a {
	case "":
		return &Stemmer{algorithm: Porter2}, nil
	case Porter2, Snowball, None:
		return &Stemmer{algorithm: a}, nil
	default:
		return nil, fmt.Errorf("%w: %q (must be porter2, snowball or none)", domain.ErrInvalidStemmer, algorithm)
	}
}

// Algorithm returns the configured algorithm.
func (s *Stemmer) Algorithm() Algorithm { return s.algorithm }

// Stem returns the stem of word.
func (s *Stemmer) Stem(word string) string {
	switch s.algorithm {
	case Snowball:
		return english.Stem(word, true)
	case None:
		return word
	default:
		return porter2.Stem(word)
	}
}
