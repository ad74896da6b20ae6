package answer

import (
	"github.com/kailas-cloud/medanswer/internal/domain/keyword"
	"github.com/kailas-cloud/medanswer/internal/domain/tree"
	"github.com/kailas-cloud/medanswer/internal/usecase/match"
)

// Normalizer turns a query into its keyword set.
type Normalizer interface {
	Normalize(s string) keyword.Set
}

// Matcher searches the document tree for the most specific matching subtree.
type Matcher interface {
	Search(node tree.Node, keywords keyword.Set, depth int) (match.Match, bool)
}

// Recorder observes answer outcomes (metrics).
type Recorder interface {
	RecordAnswer(keywords, depth int, matched bool)
}
