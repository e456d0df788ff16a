// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-md2png/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciVariables are set by the CI systems we know about.
var ciVariables = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

// ForBrowserConnect returns hints for browser connection errors. getenv
// reads the environment (os.Getenv in production).
func ForBrowserConnect(getenv func(string) string) string {
	var hints []string

	inCI := false
	for _, name := range ciVariables {
		if getenv(name) != "" {
			inCI = true
			break
		}
	}

	if (inCI || IsInContainer()) && getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use a local Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow renders.
func ForTimeout() string {
	return format("for long documents, use --timeout flag")
}

// ForEmptyCanvas returns a hint for renders that produced no pixels.
func ForEmptyCanvas() string {
	return format("check the input is not empty and --width/--scale are positive")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2png") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetNotFound returns hints listing the assets of a kind ("style",
// "lexicon") that do exist.
func ForAssetNotFound(kind string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available " + kind + "s: " + strings.Join(available, ", ") + "; or use --asset-path")
}

// ForImageURL returns hints for rejected image URLs.
func ForImageURL() string {
	return format("image URLs must start with http:// or https://")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
