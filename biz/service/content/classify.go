package content

import (
	"github.com/Nacni/portfolio-media/biz/dal/model"
	"github.com/Nacni/portfolio-media/pkg/constants"
)

// Classification tags a media record by how its playable content is stored.
type Classification int

const (
	// ClassNotVideo marks records that no video listing should include.
	ClassNotVideo Classification = iota
	// ClassUploaded marks records whose filename carries a known video suffix.
	ClassUploaded
	// ClassExternal marks link-only records hosted on a third-party platform.
	ClassExternal
)

func (c Classification) String() string {
	switch c {
	case ClassUploaded:
		return "uploaded"
	case ClassExternal:
		return "external"
	default:
		return "not_video"
	}
}

// Classify decides whether a record is an uploaded video, an external
// (link-only) video, or not a video at all. It is pure and total: defined
// for every filename/url combination, with NULL and empty-string filenames
// treated as the same "absent" state. Legacy rows carry "" where the intent
// was NULL, and both must classify identically.
//
// Every listing view, public and admin alike, filters through this one
// function so the two can never disagree about what counts as a video.
func Classify(filename *string, url string) Classification {
	name := ""
	if filename != nil {
		name = *filename
	}

	if name == "" {
		if url == "" {
			return ClassNotVideo
		}
		return ClassExternal
	}

	if constants.HasVideoExtension(name) {
		return ClassUploaded
	}

	return ClassNotVideo
}

// ClassifyMedia applies Classify to a media record.
func ClassifyMedia(m *model.Media) Classification {
	if m == nil {
		return ClassNotVideo
	}
	return Classify(m.Filename, m.URL)
}

// IsVideo reports whether a record belongs in video listings.
func IsVideo(m *model.Media) bool {
	c := ClassifyMedia(m)
	return c == ClassUploaded || c == ClassExternal
}
