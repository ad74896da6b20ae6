package tree

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/medanswer/internal/db"
	"github.com/kailas-cloud/medanswer/internal/domain"
	domtree "github.com/kailas-cloud/medanswer/internal/domain/tree"
)

const treeKeySuffix = "tree"

// Format selects how the tree is stored under its key.
type Format string

const (
	// FormatString stores the encoded tree as a plain string value (GET/SET).
	FormatString Format = "string"
	// FormatJSON stores the tree as a JSON document (JSON.GET/JSON.SET).
	FormatJSON Format = "json"
)

// store is the consumer interface for the tree repository (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONSet(ctx context.Context, key, path string, data []byte) error
}

// Repo reads and writes the document tree in a key-value store.
type Repo struct {
	store  store
	key    string
	format Format
}

// New creates a tree repository. The tree lives under keyPrefix + "tree".
func New(s store, keyPrefix string) *Repo {
	if keyPrefix == "" {
		keyPrefix = domain.KeyPrefix
	}
	return &Repo{store: s, key: keyPrefix + treeKeySuffix, format: FormatString}
}

// WithFormat sets the storage format. Unknown formats fall back to FormatString.
func (r *Repo) WithFormat(f Format) *Repo {
	if f == FormatJSON {
		r.format = FormatJSON
	} else {
		r.format = FormatString
	}
	return r
}

// Key returns the store key holding the tree.
func (r *Repo) Key() string { return r.key }

// Load fetches and decodes the tree.
func (r *Repo) Load(ctx context.Context) (domtree.Branch, error) {
	var (
		data []byte
		err  error
	)
	if r.format == FormatJSON {
		data, err = r.store.JSONGet(ctx, r.key)
	} else {
		data, err = r.store.Get(ctx, r.key)
	}
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: key %s", domain.ErrTreeNotFound, r.key)
		}
		return nil, fmt.Errorf("load tree: %w", err)
	}

	root, err := domtree.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode tree %s: %w", r.key, err)
	}
	return root, nil
}

// Save encodes root and replaces the stored tree.
func (r *Repo) Save(ctx context.Context, root domtree.Branch) error {
	data, err := domtree.Encode(root)
	if err != nil {
		return err
	}

	if r.format == FormatJSON {
		err = r.store.JSONSet(ctx, r.key, "$", data)
	} else {
		err = r.store.Set(ctx, r.key, data)
	}
	if err != nil {
		return fmt.Errorf("save tree: %w", err)
	}
	return nil
}
