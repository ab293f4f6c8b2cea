package utils

import "strings"

// mediaExtensions lists the MIME types accepted as pet, posting and video media.
var mediaExtensions = map[string]string{
	"image/avif":       ".avif",
	"image/bmp":        ".bmp",
	"image/gif":        ".gif",
	"image/heic":       ".heic",
	"image/jpeg":       ".jpg",
	"image/png":        ".png",
	"image/tiff":       ".tif",
	"image/webp":       ".webp",
	"video/mp4":        ".mp4",
	"video/quicktime":  ".mov",
	"video/webm":       ".webm",
	"video/x-m4v":      ".m4v",
	"video/x-matroska": ".mkv",
}

// ExtensionForMIME returns the object key extension for mimeType, ignoring parameters
// such as charset. Unknown types get no extension.
func ExtensionForMIME(mimeType string) string {
	cleaned := strings.TrimSpace(strings.ToLower(strings.Split(mimeType, ";")[0]))

	return mediaExtensions[cleaned]
}
