package template

import (
	"os"
	"strings"
)

// envIgnoreGuard is the substring whose presence means the env block has
// already been added.
const envIgnoreGuard = ".env.local"

// envIgnoreBlock is appended to an existing .gitignore missing the guard.
// Exactly five lines.
const envIgnoreBlock = `# local env files
.env
.env.local
.env.development.local
.env.production.local
`

// gitignoreDefault is written when no .gitignore exists at all.
const gitignoreDefault = `# dependencies
node_modules/
vendor/

# build output
dist/
build/

# logs
*.log
logs/

# local env files
.env
.env.local
.env.development.local
.env.production.local

# OS cruft
.DS_Store
`

// EnsureGitignore makes sure the env-ignore patterns are present.
// Missing file: write the full default template. Existing file without the
// guard substring: append the five-line env block once. Otherwise no-op.
// Returns true when the file was created or modified.
func EnsureGitignore(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return false, err
		}
		if err := os.WriteFile(path, []byte(gitignoreDefault), 0644); err != nil {
			return false, err
		}
		return true, nil
	}

	content := string(data)
	if strings.Contains(content, envIgnoreGuard) {
		return false, nil
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += "\n" + envIgnoreBlock

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, err
	}
	return true, nil
}
