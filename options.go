package medanswer

import (
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	treePath string
	tree     map[string]any

	driver    string // "valkey" or "redis"
	addrs     []string
	username  string
	password  string
	db        int
	keyPrefix string
	format    string

	stopwordsPath string
	stopwords     []string
	stemmer       string

	logger *zap.Logger
}

// WithTreeFile loads the document tree from a JSON file.
func WithTreeFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.treePath = path
	})
}

// WithTree uses an already decoded document tree.
func WithTree(root map[string]any) Option {
	return optionFunc(func(c *clientConfig) {
		c.tree = root
	})
}

// WithValkey loads the document tree from a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis loads the document tree from a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithDatabaseAuth sets the ACL username and database number used with
// WithValkey or WithRedis.
func WithDatabaseAuth(username string, db int) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
		c.db = db
	})
}

// WithKeyPrefix sets the key prefix of the stored tree. Default: "medanswer:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithJSONDocument reads the stored tree with JSON.GET instead of GET.
func WithJSONDocument() Option {
	return optionFunc(func(c *clientConfig) {
		c.format = "json"
	})
}

// WithStopwordsFile loads stopwords from a newline-delimited file.
func WithStopwordsFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.stopwordsPath = path
	})
}

// WithStopwords uses the given stopwords.
func WithStopwords(words ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.stopwords = append(c.stopwords, words...)
	})
}

// WithStemmer selects the stemming algorithm: porter2 (default), snowball or none.
func WithStemmer(name string) Option {
	return optionFunc(func(c *clientConfig) {
		c.stemmer = name
	})
}

// WithLogger enables debug logging of matches. Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
