package domain

import "errors"

var (
	// ErrInvalidTree signals a document tree that is not a JSON object at the root.
	ErrInvalidTree = errors.New("invalid document tree")
	// ErrTreeNotFound signals a missing document tree in the configured source.
	ErrTreeNotFound = errors.New("document tree not found")
	// ErrEmptyQuery signals a blank query string.
	ErrEmptyQuery = errors.New("empty query")
	// ErrInvalidStemmer signals an unknown stemming algorithm.
	ErrInvalidStemmer = errors.New("invalid stemmer")
)

// KeyPrefix is the default prefix for keys written to the key-value store.
const KeyPrefix = "medanswer:"
