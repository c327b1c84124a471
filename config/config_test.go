package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DavidRaab/website-sub000/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(WithFileSystem(&mockFS{}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != ServiceName {
		t.Errorf("expected name %q, got %q", ServiceName, cfg.Name)
	}
	if cfg.Posts.Dir != "posts" || cfg.Posts.Extension != ".md" || cfg.Posts.Width != 4 {
		t.Errorf("unexpected posts defaults %+v", cfg.Posts)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level info, got %q", cfg.Logging.Level)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nextpost.yml")
	yamlContent := `
environment: staging
posts:
  dir: content/blog
  width: 3
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(WithConfigFile(configPath))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.Posts.Dir != "content/blog" || cfg.Posts.Width != 3 {
		t.Errorf("unexpected posts %+v", cfg.Posts)
	}
	if cfg.Posts.Extension != ".md" {
		t.Errorf("default extension should survive a partial file, got %q", cfg.Posts.Extension)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json format, got %q", cfg.Logging.Format)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nextpost.yml")
	if err := os.WriteFile(configPath, []byte("posts:\n  dir: from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NEXTPOST_POSTS_DIR", "from-env")
	t.Setenv("NEXTPOST_POSTS_WIDTH", "2")

	cfg, err := Load(WithConfigFile(configPath))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Posts.Dir != "from-env" {
		t.Errorf("expected env override, got %q", cfg.Posts.Dir)
	}
	if cfg.Posts.Width != 2 {
		t.Errorf("expected width 2, got %d", cfg.Posts.Width)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("NEXTPOST_POSTS_EXTENSION=.markdown\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("NEXTPOST_POSTS_EXTENSION") })

	cfg, err := Load(WithEnvFile(envPath), WithConfigFile(filepath.Join(dir, "missing.yml")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Posts.Extension != ".markdown" {
		t.Errorf("expected extension from .env, got %q", cfg.Posts.Extension)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	if _, err := Load(WithConfigFile("/nonexistent/path.yml")); err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nextpost.yml")
	if err := os.WriteFile(configPath, []byte("posts: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(WithConfigFile(configPath))
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nextpost.yml")
	if err := os.WriteFile(configPath, []byte("posts:\n  extension: md\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(WithConfigFile(configPath))
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
	if !strings.Contains(err.Error(), "posts.extension") || !strings.Contains(err.Error(), "posts.width") {
		t.Errorf("expected field paths in error, got %q", err.Error())
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Name:        ServiceName,
		Environment: "production",
		Posts:       PostsConfig{Dir: "p", Extension: ".md", Width: 4},
	}
	valid.ApplyDefaults()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing name", func(c *Config) { c.Name = "" }, true},
		{"bad environment", func(c *Config) { c.Environment = "qa" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/nextpost.yml": true,
		".env":                  true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("nextpost", LoaderConfig{})
	if files.ConfigFile != "./config/nextpost.yml" {
		t.Errorf("expected config file at ./config/nextpost.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != ".env" {
		t.Errorf("expected .env, got %q", files.EnvFile)
	}

	explicit := resolver.ResolveFiles("nextpost", LoaderConfig{ConfigFile: "x.yml"})
	if explicit.ConfigFile != "x.yml" {
		t.Errorf("explicit path should win, got %q", explicit.ConfigFile)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("X")(&lc)
	WithDefaults(map[string]any{"a": 1})(&lc)
	if lc.FileSystem == nil || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" || lc.EnvPrefix != "X" || lc.Defaults["a"] != 1 {
		t.Errorf("options not applied: %+v", lc)
	}
}
