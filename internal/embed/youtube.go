// Package embed derives playable YouTube URLs from the link shapes admins paste in.
package embed

import (
	"regexp"
	"strings"
)

// Patterns are tried in order; the first capture group is the video ID.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/watch\?(?:[^#]*&)?v=([^&\s?#/]+)`),
	regexp.MustCompile(`youtu\.be/([^&\s?#/]+)`),
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/embed/([^&\s?#/]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([^&\s?#/]+)`),
	regexp.MustCompile(`^([A-Za-z0-9_-]{11})$`),
}

const (
	embedBase     = "https://www.youtube.com/embed/"
	watchBase     = "https://www.youtube.com/watch?v="
	thumbnailBase = "https://img.youtube.com/vi/"
)

// ExtractID returns the YouTube video identifier embedded in raw.
// The boolean is false when no accepted shape matches.
func ExtractID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, re := range idPatterns {
		if m := re.FindStringSubmatch(raw); len(m) > 1 && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

// EmbedURL builds the iframe URL for id.
func EmbedURL(id string) string {
	return embedBase + id
}

// WatchURL builds the canonical watch page URL for id.
func WatchURL(id string) string {
	return watchBase + id
}

// ThumbnailURL builds the high-resolution preview image URL for id.
func ThumbnailURL(id string) string {
	return thumbnailBase + id + "/maxresdefault.jpg"
}

// Links bundles every URL derived from a source link.
type Links struct {
	VideoID      string `json:"videoId"`
	EmbedURL     string `json:"embedUrl"`
	WatchURL     string `json:"watchUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Derive extracts the identifier from raw and builds all links for it.
func Derive(raw string) (Links, bool) {
	id, ok := ExtractID(raw)
	if !ok {
		return Links{}, false
	}
	return Links{
		VideoID:      id,
		EmbedURL:     EmbedURL(id),
		WatchURL:     WatchURL(id),
		ThumbnailURL: ThumbnailURL(id),
	}, true
}
