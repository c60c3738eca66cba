package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func intPtr(v int) *int { return &v }

func TestLoad_WellFormed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileName, `{
  "projectName": "Marketing Site",
  "teamsUrl": "https://outlook.office.com/webhook/abc",
  "options": { "themeColor": "FF0000" }
}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := &Config{
		ProjectName: "Marketing Site",
		TeamsURL:    "https://outlook.office.com/webhook/abc",
		Options:     &Options{ThemeColor: "FF0000", Format: FormatCard},
		Source:      path,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ThemeColorDefault(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no options", content: `{"projectName":"p","teamsUrl":"https://example.com/hook"}`},
		{name: "empty options", content: `{"projectName":"p","teamsUrl":"https://example.com/hook","options":{}}`},
		{name: "blank color", content: `{"projectName":"p","teamsUrl":"https://example.com/hook","options":{"themeColor":" "}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.content), false)
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if got := cfg.ThemeColor(); got != DefaultThemeColor {
				t.Errorf("ThemeColor() = %q, want %q", got, DefaultThemeColor)
			}
			if cfg.Options.ThemeColor != DefaultThemeColor {
				t.Errorf("Options.ThemeColor = %q, want %q", cfg.Options.ThemeColor, DefaultThemeColor)
			}
		})
	}
}

func TestParse_StripsHashFromThemeColor(t *testing.T) {
	cfg, err := Parse([]byte(`{"projectName":"p","teamsUrl":"https://example.com/hook","options":{"themeColor":"#00FF00"}}`), false)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got := cfg.ThemeColor(); got != "00FF00" {
		t.Errorf("ThemeColor() = %q, want 00FF00", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "not json", content: `{projectName: nope`, wantMsg: "unmarshal json"},
		{name: "missing projectName", content: `{"teamsUrl":"https://example.com/hook"}`, wantMsg: "projectName"},
		{name: "missing teamsUrl", content: `{"projectName":"site"}`, wantMsg: "teamsUrl"},
		{name: "teamsUrl not a url", content: `{"projectName":"site","teamsUrl":"not a url"}`, wantMsg: "not an http(s) URL"},
		{name: "unknown format", content: `{"projectName":"site","teamsUrl":"https://example.com","options":{"format":"pager"}}`, wantMsg: "options.format"},
		{name: "numeric themeColor", content: `{"projectName":"site","teamsUrl":"https://example.com","options":{"themeColor":123}}`, wantMsg: "themeColor"},
		{name: "negative commits", content: `{"projectName":"site","teamsUrl":"https://example.com","options":{"gitCommits":-2}}`, wantMsg: "gitCommits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content), false)
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !errors.Is(err, errors.ErrConfigParse) {
				t.Errorf("Parse() error = %v, want ErrConfigParse", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Parse() error = %v, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	if !errors.Is(err, errors.ErrConfigMissing) {
		t.Fatalf("Load() error = %v, want ErrConfigMissing", err)
	}
	if !strings.Contains(err.Error(), filepath.Join(dir, FileName)) {
		t.Errorf("Load() error should list searched paths, got: %v", err)
	}

	_, err = LoadFile(filepath.Join(dir, "nope.json"))
	if !errors.Is(err, errors.ErrConfigMissing) {
		t.Errorf("LoadFile() error = %v, want ErrConfigMissing", err)
	}
}

func TestLoad_SearchOrder(t *testing.T) {
	cwd := t.TempDir()
	exeDir := t.TempDir()
	writeFile(t, exeDir, FileName, `{"projectName":"from-exe","teamsUrl":"https://example.com/hook"}`)

	cfg, err := Load(cwd, exeDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ProjectName != "from-exe" {
		t.Errorf("ProjectName = %q, want from-exe", cfg.ProjectName)
	}

	writeFile(t, cwd, FileName, `{"projectName":"from-cwd","teamsUrl":"https://example.com/hook"}`)
	cfg, err = Load(cwd, exeDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ProjectName != "from-cwd" {
		t.Errorf("ProjectName = %q, want from-cwd", cfg.ProjectName)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileNameYML, `projectName: Docs
teamsUrl: https://example.com/hook
options:
  format: text
  service: netlify
  path: ./public
  gitCommits: 3
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := &Options{
		ThemeColor: DefaultThemeColor,
		Format:     FormatText,
		Service:    "netlify",
		Path:       "./public",
		GitCommits: intPtr(3),
	}
	if diff := cmp.Diff(want, cfg.Options); diff != "" {
		t.Errorf("Options mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	in := &Config{ProjectName: "Blog", TeamsURL: "https://example.com/hook", Options: &Options{ThemeColor: "123456"}}

	if err := Write(path, in); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	out, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if out.ProjectName != "Blog" || out.TeamsURL != "https://example.com/hook" || out.ThemeColor() != "123456" {
		t.Errorf("LoadFile() = %+v", out)
	}
}

func TestWrite_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := Write(path, &Config{ProjectName: "Blog"}); !errors.Is(err, errors.ErrConfigParse) {
		t.Errorf("Write() error = %v, want ErrConfigParse", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Write() should not create a file for an invalid config")
	}
}
