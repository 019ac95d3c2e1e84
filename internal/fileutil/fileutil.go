// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrNotRegularFile         = errors.New("not a regular file")
)

// WriteFileAtomic writes content to path through a temporary file in the
// same directory, then renames it into place. An existing file is replaced;
// a failed write never leaves a truncated file behind.
func WriteFileAtomic(path, content string, perm os.FileMode) (err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".md2html-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if chmodErr := os.Chmod(tmpPath, perm); chmodErr != nil {
		return fmt.Errorf("setting file mode: %w", chmodErr)
	}

	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		return fmt.Errorf("replacing %s: %w", path, renameErr)
	}
	return nil
}

// ValidateExtension checks that an extension (without the dot) is a single
// path-free token.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// HasExtension reports whether the base name of path is a non-empty stem
// followed by "."+extension. The comparison is case-sensitive: "out.HTML"
// does not have extension "html". A dotfile such as ".html" has no extension.
func HasExtension(path, extension string) bool {
	if ValidateExtension(extension) != nil {
		return false
	}
	base := path[strings.LastIndexAny(path, `/\`)+1:]
	stem, ok := strings.CutSuffix(base, "."+extension)
	return ok && stem != ""
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CheckReadable returns nil when path is a regular file that can be opened
// for reading.
func CheckReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	f, err := os.Open(path) // #nosec G304 -- path is the user's input file
	if err != nil {
		return err
	}
	return f.Close()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "work" -> false (name)
//   - "./md2html.yaml" -> true (relative path)
//   - "/etc/md2html.yaml" -> true (absolute)
//   - "C:\config\md2html.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
