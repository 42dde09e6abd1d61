package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yansircc/wppub/internal/config"
)

const fileName = "connection.json"

// Connection is the non-secret half of a verified WordPress connection.
// The application password itself lives only in the secret store.
type Connection struct {
	URL         string `json:"url"`
	Username    string `json:"username"`
	APIPath     string `json:"api_path"`
	DisplayName string `json:"display_name"`
}

// Save writes the connection profile to baseDir/connection.json.
func Save(baseDir string, c *Connection) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(baseDir, fileName), data, 0644)
}

// Load reads the connection profile from a base directory.
func Load(baseDir string) (*Connection, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, fileName))
	if err != nil {
		return nil, err
	}
	var c Connection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadDefault loads the profile from the wppub data directory.
func LoadDefault() (*Connection, error) {
	c, err := Load(config.BaseDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no connection configured yet, run `wppub connect` first")
		}
		return nil, err
	}
	return c, nil
}
