package answer

import "github.com/kailas-cloud/medanswer/internal/domain/tree"

// Answer pairs a query with the most specific matching subtree.
type Answer struct {
	query    string
	response tree.Node
	path     []string
	matched  bool
}

// New creates a matched answer.
func New(query string, response tree.Node, path []string) Answer {
	return Answer{query: query, response: response, path: path, matched: true}
}

// NoMatch creates an answer for a query that matched no label.
func NoMatch(query string) Answer {
	return Answer{query: query}
}

// Query returns the original query string.
func (a Answer) Query() string { return a.query }

// Response returns the matched node, or nil on no-match.
func (a Answer) Response() tree.Node { return a.response }

// Path returns the labels descended through, outermost first.
func (a Answer) Path() []string { return a.path }

// Matched reports whether any label overlapped the query.
func (a Answer) Matched() bool { return a.matched }
