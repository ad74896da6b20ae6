// Package keyword defines the normalized keyword set a query or label reduces to.
package keyword

import "sort"

// Set is a deduplicated set of stemmed tokens. The zero value is an empty set
// ready for reads; use New before adding.
type Set map[string]struct{}

// New creates a set holding words.
func New(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Add inserts a word.
func (s Set) Add(word string) { s[word] = struct{}{} }

// Has reports whether word is in the set.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of distinct words.
func (s Set) Len() int { return len(s) }

// Overlap returns |s ∩ other|.
func (s Set) Overlap(other Set) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for w := range small {
		if large.Has(w) {
			n++
		}
	}
	return n
}

// Sorted returns the words in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same words.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for w := range s {
		if !other.Has(w) {
			return false
		}
	}
	return true
}
