package preprocess

import (
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/medanswer/internal/domain/keyword"
	"github.com/kailas-cloud/medanswer/internal/text"
)

// minTokenLength drops stray punctuation and single letters.
const minTokenLength = 2

// Service turns free text (a query or a tree label) into a keyword set.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	tokenizer Tokenizer
	stemmer   Stemmer
	stopwords Stopwords
}

// New creates a preprocessing service.
func New(tokenizer Tokenizer, stemmer Stemmer, stopwords Stopwords) *Service {
	return &Service{tokenizer: tokenizer, stemmer: stemmer, stopwords: stopwords}
}

// Normalize lower-cases and tokenizes s, drops bracketed spans, stopwords and
// tokens shorter than two runes, and returns the set of remaining stems.
//
// An opening bracket without a matching close drops every following token;
// a closing bracket seen outside brackets is ignored.
func (s *Service) Normalize(str string) keyword.Set {
	out := keyword.New()
	insideBrackets := false

	for _, tk := range s.tokenizer.Tokenize(strings.ToLower(str)) {
		switch tk.Kind {
		case text.OpenBracket:
			insideBrackets = true
			continue
		case text.CloseBracket:
			insideBrackets = false
			continue
		}
		if insideBrackets {
			continue
		}
		if utf8.RuneCountInString(tk.Text) < minTokenLength || s.stopwords.Contains(tk.Text) {
			continue
		}
		out.Add(s.stemmer.Stem(tk.Text))
	}

	return out
}
