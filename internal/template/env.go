package template

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// EnvLocal is the scaffold written to .env.local when the file is absent.
// Real values replace the placeholders by hand or via `wppub connect`.
const EnvLocal = `# ---------------------------------------------
# Environment
# ---------------------------------------------
APP_ENV=development
DEBUG=false

# ---------------------------------------------
# WordPress connection (filled by wppub connect)
# ---------------------------------------------
WORDPRESS_URL=https://your-site.com
WORDPRESS_USERNAME=your-username
WORDPRESS_PASSWORD="xxxx xxxx xxxx xxxx xxxx xxxx"
WORDPRESS_API_PATH=/wp-json/wp/v2

# ---------------------------------------------
# Content API keys
# ---------------------------------------------
OPENAI_API_KEY=sk-your-key-here
UNSPLASH_ACCESS_KEY=your-key-here

# ---------------------------------------------
# Rate limits and timeouts
# ---------------------------------------------
PUBLISH_RATE_LIMIT=10
REQUEST_TIMEOUT_SECONDS=30
MAX_RETRIES=3
`

// EnvExample mirrors EnvLocal with placeholder values only. It is always
// rewritten so the committed example tracks the current template.
const EnvExample = `# Copy this file to .env.local and fill in real values.
# ---------------------------------------------
# Environment
# ---------------------------------------------
APP_ENV=development
DEBUG=false

# ---------------------------------------------
# WordPress connection (filled by wppub connect)
# ---------------------------------------------
WORDPRESS_URL=
WORDPRESS_USERNAME=
WORDPRESS_PASSWORD=
WORDPRESS_API_PATH=/wp-json/wp/v2

# ---------------------------------------------
# Content API keys
# ---------------------------------------------
OPENAI_API_KEY=
UNSPLASH_ACCESS_KEY=

# ---------------------------------------------
# Rate limits and timeouts
# ---------------------------------------------
PUBLISH_RATE_LIMIT=10
REQUEST_TIMEOUT_SECONDS=30
MAX_RETRIES=3
`

// WriteEnvLocal writes the .env.local scaffold unless the file already
// exists. Returns true when a new file was written.
func WriteEnvLocal(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.WriteFile(path, []byte(EnvLocal), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// WriteEnvExample unconditionally (re)writes the .env.example template.
func WriteEnvExample(path string) error {
	return os.WriteFile(path, []byte(EnvExample), 0644)
}

// CountSettings parses an env file and returns the number of settings in it.
func CountSettings(path string) (int, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return len(env), nil
}

// MissingKeys returns the keys present in the example file but absent from
// the local file, sorted for stable output.
func MissingKeys(localPath, examplePath string) ([]string, error) {
	local, err := godotenv.Read(localPath)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", localPath, err)
	}
	example, err := godotenv.Read(examplePath)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", examplePath, err)
	}

	var missing []string
	for key := range example {
		if _, ok := local[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing, nil
}
