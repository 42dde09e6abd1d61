package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	dirName = ".wppub"

	// APIPath is the REST API base path stored alongside the credentials.
	// It is a fixed literal, never derived from user input.
	APIPath = "/wp-json/wp/v2"

	// RequestTimeout bounds the single credential-verification request.
	RequestTimeout = 10 * time.Second

	// KeyringService is the OS keyring service name for the fallback store.
	KeyringService = "wppub"
)

// Secret key names, written in this order by `wppub connect`.
const (
	KeyURL      = "WORDPRESS_URL"
	KeyUsername = "WORDPRESS_USERNAME"
	KeyPassword = "WORDPRESS_PASSWORD"
	KeyAPIPath  = "WORDPRESS_API_PATH"
)

// Scaffold file names, relative to the current working directory.
const (
	EnvLocalFile   = ".env.local"
	EnvExampleFile = ".env.example"
	GitignoreFile  = ".gitignore"
)

// BaseDir returns the wppub data directory, creating it if needed.
// Honors WPPUB_HOME env var, defaults to ~/.wppub.
func BaseDir() string {
	dir := os.Getenv("WPPUB_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, dirName)
	}
	os.MkdirAll(dir, 0755)
	return dir
}
