package wp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/yansircc/wppub/internal/config"
)

// Client verifies WordPress Application Password credentials against the
// REST users/me endpoint. HTTPClient can be swapped in tests.
type Client struct {
	SiteURL     string
	Username    string
	AppPassword string
	HTTPClient  *http.Client
}

func NewClient(siteURL, username, appPassword string) *Client {
	return &Client{
		SiteURL:     NormalizeURL(siteURL),
		Username:    username,
		AppPassword: appPassword,
		HTTPClient:  &http.Client{Timeout: config.RequestTimeout},
	}
}

// NormalizeURL trims trailing slashes so path joins don't produce "//".
func NormalizeURL(siteURL string) string {
	return strings.TrimRight(strings.TrimSpace(siteURL), "/")
}

// Verify performs GET {site}/wp-json/wp/v2/users/me with Basic auth and
// returns the responding account's display name.
func (c *Client) Verify() (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.SiteURL+config.APIPath+"/users/me", nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.Username, c.AppPassword)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var me struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if me.Name == "" {
		return "", fmt.Errorf("response has no display name")
	}
	return me.Name, nil
}
