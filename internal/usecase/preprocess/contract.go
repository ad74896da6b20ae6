package preprocess

import "github.com/kailas-cloud/medanswer/internal/text"

// Tokenizer splits text into tokens with distinguishable bracket markers.
type Tokenizer interface {
	Tokenize(s string) []text.Token
}

// Stemmer reduces a word to its stem. Must be deterministic.
type Stemmer interface {
	Stem(word string) string
}

// Stopwords reports whether a word is excluded from matching.
type Stopwords interface {
	Contains(word string) bool
}
