package verify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amaumene/envrun/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("RETRIEVER=tavily\n"), 0600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	return &config.Config{
		EnvFile: envFile,
		WorkDir: dir,
		Command: "sh",
	}
}

func fullValues() map[string]string {
	return map[string]string{
		"OPENAI_API_KEY": "sk-ABCDEFGHIJKLMNOP1234",
		"TAVILY_API_KEY": "tvly-ABCDEFGHIJ5678",
		"RETRIEVER":      "tavily",
	}
}

func hasEntry(entries []string, fragment string) bool {
	for _, entry := range entries {
		if strings.Contains(entry, fragment) {
			return true
		}
	}
	return false
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(cfg *config.Config, values map[string]string)
		wantOK       bool
		wantErrFrag  string
		wantWarnFrag string
	}{
		{
			name:   "valid setup",
			mutate: func(*config.Config, map[string]string) {},
			wantOK: true,
		},
		{
			name: "missing openai key",
			mutate: func(_ *config.Config, values map[string]string) {
				delete(values, "OPENAI_API_KEY")
			},
			wantOK:      false,
			wantErrFrag: "OPENAI_API_KEY",
		},
		{
			name: "missing tavily key is a warning",
			mutate: func(_ *config.Config, values map[string]string) {
				delete(values, "TAVILY_API_KEY")
			},
			wantOK:       true,
			wantWarnFrag: "TAVILY_API_KEY",
		},
		{
			name: "missing retriever is a warning",
			mutate: func(_ *config.Config, values map[string]string) {
				delete(values, "RETRIEVER")
			},
			wantOK:       true,
			wantWarnFrag: "RETRIEVER",
		},
		{
			name: "command not on path",
			mutate: func(cfg *config.Config, _ map[string]string) {
				cfg.Command = "envrun-no-such-command"
			},
			wantOK:      false,
			wantErrFrag: "command not found",
		},
		{
			name: "doc path missing directory",
			mutate: func(_ *config.Config, values map[string]string) {
				values["DOC_PATH"] = "/does/not/exist"
			},
			wantOK:       true,
			wantWarnFrag: "DOC_PATH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			values := fullValues()
			tt.mutate(cfg, values)

			res := Setup(cfg, values)

			if res.OK() != tt.wantOK {
				t.Errorf("Setup() OK = %v, want %v (errors: %v)", res.OK(), tt.wantOK, res.Errors)
			}
			if tt.wantErrFrag != "" && !hasEntry(res.Errors, tt.wantErrFrag) {
				t.Errorf("Setup() errors %v missing %q", res.Errors, tt.wantErrFrag)
			}
			if tt.wantWarnFrag != "" && !hasEntry(res.Warnings, tt.wantWarnFrag) {
				t.Errorf("Setup() warnings %v missing %q", res.Warnings, tt.wantWarnFrag)
			}
		})
	}
}

func TestSetupEnvFilePermissions(t *testing.T) {
	cfg := testConfig(t)
	if err := os.Chmod(cfg.EnvFile, 0644); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	res := Setup(cfg, fullValues())

	if !res.OK() {
		t.Fatalf("Setup() errors = %v, want none", res.Errors)
	}
	if !hasEntry(res.Warnings, "readable by group/other") {
		t.Errorf("Setup() warnings %v missing permission warning", res.Warnings)
	}
}
