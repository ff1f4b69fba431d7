package ytdlp

import "strings"

var youtubePrefixes = []string{
	"https://www.youtube.com/",
	"https://youtube.com/",
	"https://youtu.be/",
}

// IsURL reports whether the input looks like an http(s) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsYouTubeURL reports whether the input starts with one of the accepted
// platform URL prefixes.
func IsYouTubeURL(s string) bool {
	for _, p := range youtubePrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
