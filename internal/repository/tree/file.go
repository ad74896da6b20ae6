package tree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/medanswer/internal/domain"
	domtree "github.com/kailas-cloud/medanswer/internal/domain/tree"
)

// LoadFile reads and decodes a tree from a JSON file.
func LoadFile(path string) (domtree.Branch, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTreeNotFound, path)
		}
		return nil, fmt.Errorf("read tree %s: %w", path, err)
	}

	root, err := domtree.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode tree %s: %w", path, err)
	}
	return root, nil
}
