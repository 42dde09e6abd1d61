package profile

import (
	"strings"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	conn := &Connection{
		URL:         "https://example.com",
		Username:    "admin",
		APIPath:     "/wp-json/wp/v2",
		DisplayName: "Jane Editor",
	}

	if err := Save(dir, conn); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.URL != conn.URL {
		t.Errorf("URL = %q, want %q", loaded.URL, conn.URL)
	}
	if loaded.Username != conn.Username {
		t.Errorf("Username = %q, want %q", loaded.Username, conn.Username)
	}
	if loaded.DisplayName != conn.DisplayName {
		t.Errorf("DisplayName = %q, want %q", loaded.DisplayName, conn.DisplayName)
	}
}

func TestLoad_NotExist(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load() on empty dir should error")
	}
}

func TestLoadDefault_NotConfigured(t *testing.T) {
	t.Setenv("WPPUB_HOME", t.TempDir())

	_, err := LoadDefault()
	if err == nil {
		t.Fatal("LoadDefault() with no profile should error")
	}
	if !strings.Contains(err.Error(), "wppub connect") {
		t.Errorf("error %q should point at `wppub connect`", err)
	}
}
