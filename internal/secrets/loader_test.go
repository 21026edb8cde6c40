package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadInlineValue(t *testing.T) {
	got, err := Load(Source{Name: "api token", Value: "  tok1  "})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "tok1" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("tok-from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(Source{Name: "api token", File: path})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "tok-from-file" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestLoadFileOverridesValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("file-wins"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(Source{Value: "inline", File: path})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != "file-wins" {
		t.Fatalf("expected the file to take precedence, got %q", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("   \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(Source{Name: "api token", File: path})
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("expected an empty-file error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Source{Name: "api token", File: filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadNothingConfigured(t *testing.T) {
	_, err := Load(Source{Name: "api token"})
	if err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("expected a not-configured error, got %v", err)
	}
}
