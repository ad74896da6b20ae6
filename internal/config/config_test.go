package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()

	if cfg.Data.Source != SourceFile {
		t.Errorf("expected file source, got %q", cfg.Data.Source)
	}
	if cfg.Data.TreePath != "data/data.json" {
		t.Errorf("unexpected tree path %q", cfg.Data.TreePath)
	}
	if cfg.Data.StopwordsPath != "data/stopwords.txt" {
		t.Errorf("unexpected stopwords path %q", cfg.Data.StopwordsPath)
	}
	if cfg.Text.Stemmer != "porter2" {
		t.Errorf("unexpected stemmer %q", cfg.Text.Stemmer)
	}
	if cfg.Storage.KeyPrefix != "medanswer:" || cfg.Storage.Format != "string" {
		t.Errorf("unexpected storage defaults %+v", cfg.Storage)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("unexpected http defaults %+v", cfg.HTTP)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestApplyDefaults_StoreSourceKeepsTreePathEmpty(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}, Data: DataConfig{Source: SourceValkey}}
	cfg.ApplyDefaults()
	if cfg.Data.TreePath != "" {
		t.Errorf("expected empty tree path for store source, got %q", cfg.Data.TreePath)
	}
	if !cfg.UsesStore() {
		t.Error("expected UsesStore for valkey source")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"invalid port", func(c *Config) { c.HTTP.Port = 0 }, "http.port"},
		{"port too large", func(c *Config) { c.HTTP.Port = 70000 }, "http.port"},
		{"unknown source", func(c *Config) { c.Data.Source = "s3" }, "data.source"},
		{"missing tree path", func(c *Config) { c.Data.TreePath = "" }, "data.tree_path"},
		{"redis without addrs", func(c *Config) { c.Data.Source = SourceRedis }, "database.addrs"},
		{"missing stopwords", func(c *Config) { c.Data.StopwordsPath = "" }, "data.stopwords_path"},
		{"unknown format", func(c *Config) { c.Storage.Format = "yaml" }, "storage.format"},
		{"unknown stemmer", func(c *Config) { c.Text.Stemmer = "lancaster" }, "text.stemmer"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestValidate_StoreSources(t *testing.T) {
	for _, source := range []string{SourceRedis, SourceValkey} {
		t.Run(source, func(t *testing.T) {
			cfg := validConfig()
			cfg.Data.Source = source
			cfg.Database.Addrs = []string{"localhost:6379"}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("MEDANSWER_TEST_PORT", "9090")

	tests := []struct {
		in, want string
	}{
		{"port: ${MEDANSWER_TEST_PORT}", "port: 9090"},
		{"port: ${MEDANSWER_TEST_UNSET:-8080}", "port: 8080"},
		{"port: ${MEDANSWER_TEST_PORT:-8080}", "port: 9090"},
		{"key: ${MEDANSWER_TEST_UNSET}", "key: "},
		{"plain: value", "plain: value"},
	}
	for _, tc := range tests {
		if got := string(expandEnvVars([]byte(tc.in))); got != tc.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("MEDANSWER_TEST_KEY", "secret")

	path := filepath.Join(t.TempDir(), "test.yaml")
	yaml := `
http:
  port: 8081
data:
  source: valkey
  stopwords_path: /etc/medanswer/stopwords.txt
database:
  addrs: ["valkey:6379"]
storage:
  format: json
text:
  stemmer: snowball
auth:
  api_keys: ["${MEDANSWER_TEST_KEY}"]
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8081 || cfg.Data.Source != SourceValkey {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Storage.Format != "json" || cfg.Text.Stemmer != "snowball" {
		t.Errorf("unexpected storage/text %+v %+v", cfg.Storage, cfg.Text)
	}
	if len(cfg.Auth.APIKeys) != 1 || cfg.Auth.APIKeys[0] != "secret" {
		t.Errorf("expected expanded api key, got %v", cfg.Auth.APIKeys)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected default readiness timeout, got %d", cfg.Database.ReadinessTimeout)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("http:\n  port: 0\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(bad); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("expected local, got %q", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("expected prod, got %q", got)
	}
}
