package medanswer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/medanswer/internal/db"
	dbRedis "github.com/kailas-cloud/medanswer/internal/db/redis"
	"github.com/kailas-cloud/medanswer/internal/domain"
	"github.com/kailas-cloud/medanswer/internal/domain/tree"
	"github.com/kailas-cloud/medanswer/internal/logger"
	treerepo "github.com/kailas-cloud/medanswer/internal/repository/tree"
	"github.com/kailas-cloud/medanswer/internal/text"
	answeruc "github.com/kailas-cloud/medanswer/internal/usecase/answer"
	"github.com/kailas-cloud/medanswer/internal/usecase/match"
	"github.com/kailas-cloud/medanswer/internal/usecase/preprocess"
)

const defaultReadinessTimeout = 10 * time.Second

var (
	// ErrEmptyQuery is returned by Answer for a blank query.
	ErrEmptyQuery = domain.ErrEmptyQuery
	// ErrInvalidTree is returned by New when the tree root is not a JSON object.
	ErrInvalidTree = domain.ErrInvalidTree
	// ErrTreeNotFound is returned by New when the tree file or key is missing.
	ErrTreeNotFound = domain.ErrTreeNotFound
)

// Answer is the result of a query.
type Answer struct {
	Query string
	// Response is the matched subtree or leaf payload, nil when nothing matched.
	Response any
	// Path lists the labels descended through, outermost first.
	Path    []string
	Matched bool
}

// TreeStats counts the nodes of the loaded tree per level.
type TreeStats struct {
	Conditions int
	Aspects    int
	Payloads   int
}

// Client is the medanswer library entry point. It is safe for concurrent use.
type Client struct {
	store   db.Store
	answers *answeruc.Service
	logger  *zap.Logger
}

// New loads the stopwords and the document tree and builds a Client.
// Exactly one tree source is required: WithTreeFile, WithTree, WithValkey or WithRedis.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	stopwords, err := loadStopwords(cfg)
	if err != nil {
		return nil, err
	}
	stemmer, err := text.NewStemmer(cfg.stemmer)
	if err != nil {
		return nil, fmt.Errorf("medanswer: %w", err)
	}

	root, store, err := loadTree(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	pre := preprocess.New(text.NewTokenizer(), stemmer, stopwords)
	l := cfg.logger
	if l == nil {
		l = zap.NewNop()
	}
	return &Client{
		store:   store,
		answers: answeruc.New(root, pre, match.New(pre)),
		logger:  l,
	}, nil
}

func loadStopwords(cfg *clientConfig) (*text.Stopwords, error) {
	if cfg.stopwordsPath == "" {
		return text.NewStopwords(cfg.stopwords...), nil
	}
	s, err := text.LoadStopwordsFile(cfg.stopwordsPath)
	if err != nil {
		return nil, fmt.Errorf("medanswer: %w", err)
	}
	return s.With(cfg.stopwords...), nil
}

func loadTree(ctx context.Context, cfg *clientConfig) (tree.Branch, db.Store, error) {
	switch {
	case cfg.tree != nil:
		return tree.Branch(cfg.tree), nil, nil
	case cfg.treePath != "":
		root, err := treerepo.LoadFile(cfg.treePath)
		if err != nil {
			return nil, nil, fmt.Errorf("medanswer: %w", err)
		}
		return root, nil, nil
	case len(cfg.addrs) > 0:
		return loadStoredTree(ctx, cfg)
	default:
		return nil, nil, errors.New("medanswer: tree source required (use WithTreeFile, WithTree, WithValkey or WithRedis)")
	}
}

func loadStoredTree(ctx context.Context, cfg *clientConfig) (tree.Branch, db.Store, error) {
	// Valkey and Redis speak the same protocol for GET and JSON.GET.
	store, err := dbRedis.NewStore(storeConfig(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("medanswer: create %s store: %w", cfg.driver, err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("medanswer: database not ready: %w", err)
	}

	repo := treerepo.New(store, cfg.keyPrefix).WithFormat(treerepo.Format(cfg.format))
	root, err := repo.Load(ctx)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("medanswer: %w", err)
	}
	return root, store, nil
}

func storeConfig(cfg *clientConfig) dbRedis.Config {
	return dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	}
}

// Close releases the database connection, if any.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Answer returns the most specific subtree matching query.
// A query that matches nothing yields an Answer with a nil Response.
func (c *Client) Answer(ctx context.Context, query string) (Answer, error) {
	if strings.TrimSpace(query) == "" {
		return Answer{}, ErrEmptyQuery
	}

	a := c.answers.Answer(logger.ContextWithLogger(ctx, c.logger), query)
	return Answer{
		Query:    a.Query(),
		Response: a.Response(),
		Path:     a.Path(),
		Matched:  a.Matched(),
	}, nil
}

// Stats returns node counts of the loaded tree.
func (c *Client) Stats() TreeStats {
	s := c.answers.TreeStats()
	return TreeStats{Conditions: s.Conditions, Aspects: s.Aspects, Payloads: s.Payloads}
}
