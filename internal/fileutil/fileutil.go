// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"strings"
)

// reservedFilenameChars are characters unsafe in filenames on at least one
// supported filesystem.
const reservedFilenameChars = `\/*?:"<>|`

// SanitizeFilename replaces filesystem-reserved characters with
// underscores. The function is idempotent.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(reservedFilenameChars, r) {
			return '_'
		}
		return r
	}, name)
}

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

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
