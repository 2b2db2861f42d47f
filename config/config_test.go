package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/robokoder/processor/errors"
)

const chainYAML = `
name: dispatcher
environment: staging
logging:
  level: debug
  format: json
tracing:
  enabled: true
  endpoint: collector:4318
metrics:
  interval: 30s
processors:
  - name: p1
    kind: basic
    priority: 5
    options:
      match: foo
      output: bar
  - name: p2
    kind: basic
    options:
      match: foo
    retry:
      max_attempts: 4
      initial_backoff: 50ms
  - name: p3
    kind: basic
    disabled: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load("dispatcher", WithConfigFile(writeFile(t, "config.yml", chainYAML)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "dispatcher" || cfg.Environment != "staging" {
		t.Errorf("unexpected service section: %+v", cfg.ServiceConfig)
	}
	if cfg.Debug {
		t.Error("staging should not enable debug")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging: %+v", cfg.Logging)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.Endpoint != "collector:4318" {
		t.Errorf("unexpected tracing: %+v", cfg.Tracing)
	}
	if cfg.Tracing.Environment != "staging" {
		t.Errorf("expected tracing environment from service, got %q", cfg.Tracing.Environment)
	}
	if cfg.Metrics.Interval != 30*time.Second {
		t.Errorf("expected 30s interval, got %v", cfg.Metrics.Interval)
	}

	if len(cfg.Processors) != 3 {
		t.Fatalf("expected 3 processors, got %d", len(cfg.Processors))
	}
	p1, p2 := cfg.Processors[0], cfg.Processors[1]
	if p1.PriorityOr(10) != 5 {
		t.Errorf("expected p1 priority 5, got %d", p1.PriorityOr(10))
	}
	if p2.PriorityOr(10) != 10 {
		t.Errorf("expected p2 default priority, got %d", p2.PriorityOr(10))
	}
	if p1.Options["match"] != "foo" || p1.Options["output"] != "bar" {
		t.Errorf("unexpected options: %v", p1.Options)
	}
	if p2.Retry == nil || p2.Retry.MaxAttempts != 4 || p2.Retry.InitialBackoff != 50*time.Millisecond {
		t.Errorf("unexpected retry: %+v", p2.Retry)
	}

	enabled := cfg.Enabled()
	if len(enabled) != 2 || enabled[1].Name != "p2" {
		t.Errorf("expected p1,p2 enabled, got %+v", enabled)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PROCESSOR_LOGGING_LEVEL", "warn")
	t.Setenv("PROCESSOR_ENVIRONMENT", "production")

	cfg, err := Load("dispatcher", WithConfigFile(writeFile(t, "config.yml", chainYAML)))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env override to warn, got %q", cfg.Logging.Level)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected env override to production, got %q", cfg.Environment)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	envPath := writeFile(t, ".env", "PROCESSOR_VERSION=9.9.9\n")
	t.Cleanup(func() { os.Unsetenv("PROCESSOR_VERSION") })

	cfg, err := Load("dispatcher",
		WithConfigFile(writeFile(t, "config.yml", chainYAML)),
		WithEnvFile(envPath),
	)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Version != "9.9.9" {
		t.Errorf("expected version from .env, got %q", cfg.Version)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("dispatcher", WithConfigFile("/nonexistent/config.yml"), WithFileSystem(&mockFS{}))
	if err != nil {
		t.Fatalf("expected Load to succeed without a file, got %v", err)
	}
	if cfg.Name != "dispatcher" {
		t.Errorf("expected name from service name, got %q", cfg.Name)
	}
	if cfg.Environment != "development" || !cfg.Debug {
		t.Errorf("expected development defaults, got %+v", cfg.ServiceConfig)
	}
	if len(cfg.Processors) != 0 {
		t.Errorf("expected empty chain, got %d entries", len(cfg.Processors))
	}
}

func TestLoad_Invalid(t *testing.T) {
	yaml := `
name: dispatcher
processors:
  - kind: basic
`
	_, err := Load("dispatcher", WithConfigFile(writeFile(t, "config.yml", yaml)))
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
	if !strings.Contains(err.Error(), "processors[0].name") {
		t.Errorf("expected field path in error, got %q", err.Error())
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	path := writeFile(t, "config.yml", "name: [unterminated")
	if _, err := Load("dispatcher", WithConfigFile(path)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse("dispatcher", "json", []byte(`{"name":"j","processors":[{"name":"a","kind":"basic","priority":-1}]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Name != "j" || cfg.Processors[0].PriorityOr(10) != -1 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr string
	}{
		{"valid", ServiceConfig{Name: "svc", Environment: "production"}, ""},
		{"missing name", ServiceConfig{Environment: "production"}, "name is required"},
		{"bad environment", ServiceConfig{Name: "svc", Environment: "qa"}, "environment must be one of"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.ApplyDefaults()
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestResolve(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/dispatcher/config.yml": true,
		".env":                        true,
	}}
	files := Resolve("dispatcher", LoaderConfig{FileSystem: fs})
	if files.ConfigFile != "./cmd/dispatcher/config.yml" {
		t.Errorf("unexpected config file %q", files.ConfigFile)
	}
	if files.EnvFile != ".env" {
		t.Errorf("unexpected env file %q", files.EnvFile)
	}

	explicit := Resolve("dispatcher", LoaderConfig{FileSystem: fs, ConfigFile: "x.yml"})
	if explicit.ConfigFile != "x.yml" {
		t.Errorf("explicit path should win, got %q", explicit.ConfigFile)
	}
}
