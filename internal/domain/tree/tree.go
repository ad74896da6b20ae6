// Package tree models the read-only document tree searched by the matcher.
//
// The tree has three levels: condition -> aspect -> sub-aspect payload.
// Levels 0 and 1 are Branches keyed by label; whatever sits at level 2 is an
// opaque payload and is never decomposed further.
package tree

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/medanswer/internal/domain"
)

// MaxDepth is the depth at which a node is returned without further descent.
const MaxDepth = 2

// Node is any value of the decoded tree: a Branch or an opaque leaf payload.
type Node = any

// Branch is a labeled mapping node.
type Branch = map[string]any

// AsBranch reports whether n is a labeled mapping.
func AsBranch(n Node) (Branch, bool) {
	b, ok := n.(map[string]any)
	return b, ok
}

// Labels returns the labels of b in map order.
func Labels(b Branch) []string {
	labels := make([]string, 0, len(b))
	for label := range b {
		labels = append(labels, label)
	}
	return labels
}

// Decode parses a JSON document tree. The root must be an object.
func Decode(data []byte) (Branch, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidTree, err)
	}
	b, ok := AsBranch(root)
	if !ok {
		return nil, fmt.Errorf("%w: root is %T, want object", domain.ErrInvalidTree, root)
	}
	return b, nil
}

// Encode serializes a document tree to JSON.
func Encode(root Branch) ([]byte, error) {
	data, err := json.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("encode tree: %w", err)
	}
	return data, nil
}

// Stats counts tree nodes per level.
type Stats struct {
	Conditions int // level 0 labels
	Aspects    int // level 1 labels
	Payloads   int // level 2 entries
}

// Describe counts nodes of the first three levels of root.
// A payload object contributes one entry per field; any other value
// (including one sitting above the cutoff) counts as a single entry.
func Describe(root Branch) Stats {
	var s Stats
	s.Conditions = len(root)
	for _, condition := range root {
		aspects, ok := AsBranch(condition)
		if !ok {
			s.Payloads++
			continue
		}
		s.Aspects += len(aspects)
		for _, payload := range aspects {
			s.Payloads += payloadEntries(payload)
		}
	}
	return s
}

func payloadEntries(n Node) int {
	if b, ok := AsBranch(n); ok {
		return len(b)
	}
	return 1
}
