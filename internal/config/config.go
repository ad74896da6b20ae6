package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tree sources.
const (
	SourceFile   = "file"
	SourceRedis  = "redis"
	SourceValkey = "valkey"
)

// Config holds the medanswer service configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Data     DataConfig     `yaml:"data"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Text     TextConfig     `yaml:"text"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DataConfig locates the document tree and the stopword list.
type DataConfig struct {
	Source        string `yaml:"source"` // file, redis, valkey (default: file)
	TreePath      string `yaml:"tree_path"`
	StopwordsPath string `yaml:"stopwords_path"`
}

// DatabaseConfig holds connection settings for a redis/valkey tree source.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// StorageConfig holds key layout settings for the store.
type StorageConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
	Format    string `yaml:"format"` // string, json (default: string)
}

// TextConfig holds preprocessing settings.
type TextConfig struct {
	Stemmer string `yaml:"stemmer"` // porter2, snowball, none (default: porter2)
}

// UsesStore reports whether the tree is loaded from redis/valkey.
func (c *Config) UsesStore() bool {
	return c.Data.Source == SourceRedis || c.Data.Source == SourceValkey
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from the YAML file at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Data.Source == "" {
		c.Data.Source = SourceFile
	}
	if c.Data.TreePath == "" && c.Data.Source == SourceFile {
		c.Data.TreePath = "data/data.json"
	}
	if c.Data.StopwordsPath == "" {
		c.Data.StopwordsPath = "data/stopwords.txt"
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = "medanswer:"
	}
	if c.Storage.Format == "" {
		c.Storage.Format = "string"
	}
	if c.Text.Stemmer == "" {
		c.Text.Stemmer = "porter2"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Data.Source {
	case SourceFile:
		if c.Data.TreePath == "" {
			return fmt.Errorf("data.tree_path is required for the file source")
		}
	case SourceRedis, SourceValkey:
		if len(c.Database.Addrs) == 0 {
			return fmt.Errorf("database.addrs is required for the %s source", c.Data.Source)
		}
	default:
		return fmt.Errorf("data.source must be \"file\", \"redis\" or \"valkey\", got %q", c.Data.Source)
	}
	if c.Data.StopwordsPath == "" {
		return fmt.Errorf("data.stopwords_path is required")
	}
	switch c.Storage.Format {
	case "string", "json":
		// ok
	default:
		return fmt.Errorf("storage.format must be \"string\" or \"json\", got %q", c.Storage.Format)
	}
	switch c.Text.Stemmer {
	case "porter2", "snowball", "none":
		// ok
	default:
		return fmt.Errorf("text.stemmer must be \"porter2\", \"snowball\" or \"none\", got %q", c.Text.Stemmer)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
