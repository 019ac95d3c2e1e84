package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrStyleNotFound indicates the requested body theme does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrHighlightNotFound indicates the requested code highlight theme does not exist.
	ErrHighlightNotFound = errors.New("highlight theme not found")

	// ErrUnknownTheme indicates a style name that maps to no theme pair.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)

// IsNotFound reports whether err means the asset does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrHighlightNotFound)
}
