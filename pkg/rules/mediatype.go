package rules

import (
	"mime"
	"path/filepath"
	"strings"
)

const defaultMediaType = "application/octet-stream"

// mediaTypes covers the inlinable media extensions without depending on the
// host's mime database
var mediaTypes = map[string]string{
	".bmp":  "image/bmp",
	".gif":  "image/gif",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
}

// MediaType returns the data-URI media type for path
func MediaType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := mediaTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return defaultMediaType
}
