package match

import "github.com/kailas-cloud/medanswer/internal/domain/keyword"

// Normalizer reduces a tree label to its keyword set.
type Normalizer interface {
	Normalize(s string) keyword.Set
}
