package content_test

import (
	"testing"

	"github.com/Nacni/portfolio-media/biz/dal/model"
	"github.com/Nacni/portfolio-media/biz/service/content"
)

func strPtr(s string) *string { return &s }

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		filename *string
		url      string
		want     content.Classification
	}{
		{"NilFilenameWithURL", nil, "https://youtube.com/watch?v=abc", content.ClassExternal},
		{"EmptyFilenameWithURL", strPtr(""), "https://youtube.com/watch?v=abc", content.ClassExternal},
		{"NilFilenameNoURL", nil, "", content.ClassNotVideo},
		{"EmptyFilenameNoURL", strPtr(""), "", content.ClassNotVideo},
		{"MP4", strPtr("clip.mp4"), "https://cdn.example.com/clip.mp4", content.ClassUploaded},
		{"UppercaseSuffix", strPtr("CLIP.MP4"), "https://cdn.example.com/CLIP.MP4", content.ClassUploaded},
		{"MixedCaseWebm", strPtr("talk.WebM"), "https://cdn.example.com/talk.WebM", content.ClassUploaded},
		{"AVI", strPtr("old.avi"), "x", content.ClassUploaded},
		{"MOV", strPtr("take.mov"), "x", content.ClassUploaded},
		{"WMV", strPtr("reel.wmv"), "x", content.ClassUploaded},
		{"FLV", strPtr("legacy.flv"), "x", content.ClassUploaded},
		{"UploadedWithoutURL", strPtr("clip.mp4"), "", content.ClassUploaded},
		{"Image", strPtr("photo.jpg"), "https://cdn.example.com/photo.jpg", content.ClassNotVideo},
		{"Document", strPtr("cv.pdf"), "https://cdn.example.com/cv.pdf", content.ClassNotVideo},
		{"SuffixInsideName", strPtr("clip.mp4.jpg"), "x", content.ClassNotVideo},
		{"NoExtension", strPtr("README"), "x", content.ClassNotVideo},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := content.Classify(tc.filename, tc.url)
			if got != tc.want {
				t.Errorf("Classify(%v, %q) = %v, want %v", tc.filename, tc.url, got, tc.want)
			}
		})
	}
}

// Null and empty-string filenames are the same "absent" state: legacy rows
// written under the old NOT NULL workaround carry "" where the intent was
// NULL, and both must classify identically for every url.
func TestClassifyNullEmptyEquivalence(t *testing.T) {
	for _, url := range []string{"", "https://youtube.com/watch?v=abc", "/api/v1/media/file/x/y"} {
		withNil := content.Classify(nil, url)
		withEmpty := content.Classify(strPtr(""), url)
		if withNil != withEmpty {
			t.Errorf("url %q: Classify(nil) = %v but Classify(\"\") = %v", url, withNil, withEmpty)
		}
	}
}

func TestClassifyMedia(t *testing.T) {
	if got := content.ClassifyMedia(nil); got != content.ClassNotVideo {
		t.Errorf("ClassifyMedia(nil) = %v, want ClassNotVideo", got)
	}

	external := &model.Media{URL: "https://vimeo.com/12345"}
	if !content.IsVideo(external) {
		t.Error("expected external record to count as a video")
	}

	image := &model.Media{URL: "https://cdn.example.com/p.jpg", Filename: strPtr("p.jpg")}
	if content.IsVideo(image) {
		t.Error("expected image record to be excluded from video listings")
	}
}
