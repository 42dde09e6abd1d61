package secrets

import (
	"fmt"
	"io"

	"github.com/zalando/go-keyring"

	"github.com/yansircc/wppub/internal/config"
	"github.com/yansircc/wppub/internal/exec"
)

// Store persists one key/value pair in a secret store.
type Store interface {
	Set(key, value string) error
	Name() string
}

// Credentials is the verified connection data written by `wppub connect`.
type Credentials struct {
	URL      string
	Username string
	Password string
}

// SetAll writes the four connection secrets in a fixed order. The API path
// is a constant, never derived from input. A mid-sequence failure leaves
// earlier keys in place; there is no rollback.
func SetAll(s Store, creds Credentials, out io.Writer) error {
	pairs := []struct{ key, value string }{
		{config.KeyURL, creds.URL},
		{config.KeyUsername, creds.Username},
		{config.KeyPassword, creds.Password},
		{config.KeyAPIPath, config.APIPath},
	}
	for _, p := range pairs {
		if err := s.Set(p.key, p.value); err != nil {
			return fmt.Errorf("set %s: %w", p.key, err)
		}
		fmt.Fprintf(out, "  [ok] %s set\n", p.key)
	}
	return nil
}

// CLIStore shells out to the external `secrets` CLI, one invocation per key.
type CLIStore struct {
	// run is swappable for tests; defaults to exec.Run.
	run func(name string, args ...string) error
}

func NewCLIStore() *CLIStore {
	return &CLIStore{run: exec.Run}
}

func (s *CLIStore) Set(key, value string) error {
	return s.run("secrets", "set", key+"="+value)
}

func (s *CLIStore) Name() string { return "secrets CLI" }

// CLIAvailable reports whether the external secrets CLI is on PATH.
func CLIAvailable() bool {
	return exec.CommandExists("secrets")
}

// KeyringStore saves keys in the OS keyring under the wppub service.
// Used as a fallback when the secrets CLI is not installed.
type KeyringStore struct{}

func (KeyringStore) Set(key, value string) error {
	return keyring.Set(config.KeyringService, key, value)
}

func (KeyringStore) Name() string { return "OS keyring" }

// Get reads a key back from the OS keyring.
func (KeyringStore) Get(key string) (string, error) {
	return keyring.Get(config.KeyringService, key)
}
