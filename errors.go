package md2html

import "errors"

// Sentinel errors for library operations.
var (
	// Invocation validation errors.
	ErrFileNotFound           = errors.New("input file not found")
	ErrInvalidOutputExtension = errors.New("output file must have .html extension")
	ErrInvalidStyle           = errors.New("invalid style")

	// Conversion errors.
	ErrReadMarkdown   = errors.New("failed to read markdown")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrWriteOutput    = errors.New("failed to write output")

	// Asset loading errors.
	ErrAssetNotFound    = errors.New("theme asset not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrImageNotFound is never returned by Convert; it classifies
	// Result.Warnings entries.
	ErrImageNotFound = errors.New("image not found")
)
