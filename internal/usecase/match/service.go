package match

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/medanswer/internal/domain/keyword"
	"github.com/kailas-cloud/medanswer/internal/domain/tree"
)

// Match is the node a search settled on and the labels it descended through.
type Match struct {
	Node tree.Node
	Path []string
}

// candidate is the best label seen so far at one level.
type candidate struct {
	label   string
	overlap int
	subtree tree.Node
}

// Service finds the most specific subtree whose labels overlap a keyword set.
// The tree is only read; a Service is safe for concurrent use.
type Service struct {
	normalizer Normalizer
}

// New creates a tree matching service.
func New(normalizer Normalizer) *Service {
	return &Service{normalizer: normalizer}
}

// Search descends greedily from node, starting at depth, one level per step.
// At each level the label with the strictly largest keyword overlap wins;
// labels are scanned shortest first, so on equal overlap the shorter label
// is kept. A node at depth tree.MaxDepth is returned unchanged. Search
// reports false as soon as a level has no overlapping label.
//
// A non-mapping value reached above the cutoff is returned as-is.
func (s *Service) Search(node tree.Node, keywords keyword.Set, depth int) (Match, bool) {
	var path []string

	for ; depth < tree.MaxDepth; depth++ {
		branch, ok := tree.AsBranch(node)
		if !ok {
			break
		}

		best, ok := s.bestCandidate(branch, keywords)
		if !ok {
			return Match{}, false
		}

		path = append(path, best.label)
		node = best.subtree
	}

	return Match{Node: node, Path: path}, true
}

// bestCandidate scores every label of branch and returns the winner,
// or false when no label overlaps keywords.
func (s *Service) bestCandidate(branch tree.Branch, keywords keyword.Set) (candidate, bool) {
	if keywords.Len() == 0 {
		return candidate{}, false
	}

	labels := tree.Labels(branch)
	slices.SortFunc(labels, byLength)

	var best candidate
	for _, label := range labels {
		overlap := s.normalizer.Normalize(label).Overlap(keywords)
		if overlap > best.overlap {
			best = candidate{label: label, overlap: overlap, subtree: branch[label]}
		}
	}

	return best, best.overlap > 0
}

// byLength orders labels by rune length, then lexically for a stable scan.
func byLength(a, b string) int {
	if c := cmp.Compare(utf8.RuneCountInString(a), utf8.RuneCountInString(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
