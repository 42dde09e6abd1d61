package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBaseDir_Default(t *testing.T) {
	os.Unsetenv("WPPUB_HOME")
	dir := BaseDir()
	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".wppub")
	if dir != want {
		t.Errorf("BaseDir() = %q, want %q", dir, want)
	}
}

func TestBaseDir_EnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("WPPUB_HOME", tmp)
	dir := BaseDir()
	if dir != tmp {
		t.Errorf("BaseDir() = %q, want %q", dir, tmp)
	}
}

func TestAPIPathFixed(t *testing.T) {
	if APIPath != "/wp-json/wp/v2" {
		t.Errorf("APIPath = %q, want \"/wp-json/wp/v2\"", APIPath)
	}
}
