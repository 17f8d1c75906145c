// Package fileutil provides file and path helpers shared by the test-suite tools.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "config_local" -> false (name)
//   - "./ci.yaml" -> true (relative path)
//   - "/etc/mdtest.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// TrimExt returns path without its final extension.
func TrimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
