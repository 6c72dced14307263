package embed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractIDRecoversIdentifierFromEveryShape(t *testing.T) {
	const id = "abcdefghijk"

	shapes := map[string]string{
		"watch":          "https://www.youtube.com/watch?v=" + id,
		"watch no www":   "https://youtube.com/watch?v=" + id + "&t=42s",
		"watch v later":  "https://www.youtube.com/watch?feature=share&v=" + id,
		"short link":     "https://youtu.be/" + id,
		"short link ts":  "https://youtu.be/" + id + "?t=10",
		"embed":          "https://www.youtube.com/embed/" + id,
		"embed nocookie": "https://www.youtube-nocookie.com/embed/" + id + "?rel=0",
		"shorts":         "https://youtube.com/shorts/" + id,
		"bare":           id,
		"bare padded":    "  " + id + "\n",
	}

	for name, raw := range shapes {
		raw := raw
		t.Run(name, func(t *testing.T) {
			got, ok := ExtractID(raw)
			require.True(t, ok, "expected a match for %q", raw)
			require.Equal(t, id, got)
		})
	}
}

func TestExtractIDReportsNoIdentifier(t *testing.T) {
	for _, raw := range []string{"", "   ", "https://vimeo.com/123456", "not a link", "abc", "https://youtube.com/"} {
		id, ok := ExtractID(raw)
		require.False(t, ok, "unexpected match for %q", raw)
		require.Empty(t, id)
	}
}

func TestExtractIDKeepsShortLegacyIdentifiers(t *testing.T) {
	id, ok := ExtractID("https://youtube.com/watch?v=cardio789")
	require.True(t, ok)
	require.Equal(t, "cardio789", id)
}

func TestDeriveBuildsAllLinks(t *testing.T) {
	links, ok := Derive("https://youtu.be/dQw4w9WgXcQ")
	require.True(t, ok)
	require.Equal(t, Links{
		VideoID:      "dQw4w9WgXcQ",
		EmbedURL:     "https://www.youtube.com/embed/dQw4w9WgXcQ",
		WatchURL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		ThumbnailURL: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
	}, links)

	_, ok = Derive("https://example.com/video.mp4")
	require.False(t, ok)
}
