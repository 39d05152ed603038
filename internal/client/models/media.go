package models

import "fmt"

// MediaKind selects the upload endpoint and the fixed filename/MIME type
// the backend expects for each media slot.
type MediaKind string

const (
	MediaKindHighlightVideo MediaKind = "video_highlight"
	MediaKindProfileImage   MediaKind = "profile_image"
)

// ContentType returns the MIME type sent in the multipart part.
func (k MediaKind) ContentType() string {
	if k == MediaKindHighlightVideo {
		return "video/mp4"
	}
	return "image/jpeg"
}

// UploadName returns the fixed filename carried in the multipart part.
// The highlight video name embeds the student id, mirroring the backend's
// storage convention.
func (k MediaKind) UploadName(studentID string) string {
	if k == MediaKindHighlightVideo {
		return fmt.Sprintf("highlight_%s.mp4", studentID)
	}
	return "profile_image.jpg"
}

// MediaRef points at a local file chosen by the user and not yet uploaded.
type MediaRef struct {
	Path string
	Kind MediaKind
}
