package pipeline

import (
	"path/filepath"
	"strings"
)

// defaultImageMIME is used for extensions missing from imageMIMETypes.
const defaultImageMIME = "image/png"

// imageMIMETypes maps lower-case image extensions to MIME types.
var imageMIMETypes = map[string]string{
	".png":  "image/png",
	".gif":  "image/gif",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".bmp":  "image/bmp",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
}

// imageMIMEType returns the MIME type for an image path from its extension.
func imageMIMEType(path string) string {
	if mime, ok := imageMIMETypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mime
	}
	return defaultImageMIME
}
