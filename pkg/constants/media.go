package constants

import (
	"path/filepath"
	"strings"
)

// VideoExtensions is the set of filename suffixes that mark a media record
// as a locally uploaded video. Matching is case-insensitive.
var VideoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
}

// HasVideoExtension reports whether the given filename carries one of the
// known video suffixes.
func HasVideoExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return VideoExtensions[ext]
}

// Default media categories used by the site's listing pages. Categories are
// free-form text; these are only the values the admin UI offers.
const (
	CategoryCareer    = "career"
	CategorySpeaking  = "speaking"
	CategoryPress     = "press"
	CategoryHighlight = "highlight"
)
