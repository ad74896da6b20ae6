package answer

import (
	"context"

	"go.uber.org/zap"

	domanswer "github.com/kailas-cloud/medanswer/internal/domain/answer"
	"github.com/kailas-cloud/medanswer/internal/domain/tree"
	"github.com/kailas-cloud/medanswer/internal/logger"
)

// Service answers queries against a document tree loaded at startup.
// The tree is never mutated, so one Service serves concurrent requests.
type Service struct {
	root       tree.Branch
	stats      tree.Stats
	normalizer Normalizer
	matcher    Matcher
	recorder   Recorder
}

// New creates an answer service over root.
func New(root tree.Branch, normalizer Normalizer, matcher Matcher) *Service {
	return &Service{
		root:       root,
		stats:      tree.Describe(root),
		normalizer: normalizer,
		matcher:    matcher,
	}
}

// WithRecorder sets the outcome recorder.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// TreeStats returns node counts of the loaded tree.
func (s *Service) TreeStats() tree.Stats { return s.stats }

// Answer normalizes query and searches the tree from the root.
// A query that matches no label yields a no-match answer, not an error.
func (s *Service) Answer(ctx context.Context, query string) domanswer.Answer {
	keywords := s.normalizer.Normalize(query)
	m, ok := s.matcher.Search(s.root, keywords, 0)

	if s.recorder != nil {
		s.recorder.RecordAnswer(keywords.Len(), len(m.Path), ok)
	}

	log := logger.FromContext(ctx)
	if !ok {
		log.Debug("No matching subtree",
			zap.String("query", query),
			zap.Strings("keywords", keywords.Sorted()),
		)
		return domanswer.NoMatch(query)
	}

	log.Debug("Matched subtree",
		zap.String("query", query),
		zap.Strings("keywords", keywords.Sorted()),
		zap.Strings("path", m.Path),
	)
	return domanswer.New(query, m.Node, m.Path)
}
