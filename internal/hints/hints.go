// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForBrokenPipe returns a hint for writes to a reader that went away.
func ForBrokenPipe() string {
	return format("the command reading stdout exited before the HTML was written")
}

// ForGFMToken returns hints for an unusable gfm engine. Without a token it
// lists every place one can come from; with one it points at the source that
// won, since MDTEST_GFM_TOKEN shadows the config and GITHUB_TOKEN.
func ForGFMToken(getenv func(string) string, haveToken bool) string {
	if !haveToken {
		return format("set gfmOAuthToken in config_local.yaml or export MDTEST_GFM_TOKEN (GITHUB_TOKEN is also honored)")
	}

	hints := []string{"the GitHub API rejected the token or could not be reached"}
	if getenv("MDTEST_GFM_TOKEN") != "" {
		hints = append(hints, "the token came from MDTEST_GFM_TOKEN, which overrides gfmOAuthToken and GITHUB_TOKEN")
	}
	return formatHints(hints)
}

// ForEngineNotFound returns hints when an engine name is unknown or its
// binary is not on PATH.
func ForEngineNotFound(name string, known []string) string {
	hints := []string{"install " + name + " and make sure it is on PATH"}
	if len(known) > 0 {
		hints = append(hints, "known engines: "+strings.Join(known, ", "))
	}
	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow engines.
func ForTimeout() string {
	return format("for slow engines, raise timeout in the config or use --timeout")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForTestsDir returns a hint for a missing tests directory.
func ForTestsDir() string {
	return format("run from the test-suite root or pass --tests-dir")
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
