// Package ytdlp drives the external yt-dlp binary: it builds the argv for
// searches, streaming and downloads, parses the metadata protocol printed
// by searches, and runs the commands through a swappable Runner.
package ytdlp

import "strings"

// Bin is the name of the external extractor binary, resolved via PATH.
const Bin = "yt-dlp"

// SearchType selects how the search input is interpreted.
type SearchType int

const (
	// SearchByTerm searches the platform with a free-text term.
	SearchByTerm SearchType = iota
	// SearchByChannelURL lists the videos of a channel URL.
	SearchByChannelURL
	// SearchByVideoURL fetches the metadata of a single video URL.
	SearchByVideoURL
)

// Resolution is a target vertical video resolution.
type Resolution int

const (
	R240  Resolution = 240
	R360  Resolution = 360
	R480  Resolution = 480
	R720  Resolution = 720
	R1080 Resolution = 1080
)

// DefaultResolution is used when the configured value is unrecognized.
const DefaultResolution = R360

// ParseResolution maps a configured height to a supported Resolution,
// falling back to the default.
func ParseResolution(height int) Resolution {
	switch Resolution(height) {
	case R240, R360, R480, R720, R1080:
		return Resolution(height)
	}
	return DefaultResolution
}

// Video codec selector prefixes, in preference order.
const (
	CodecAVC1 = "avc1"
	CodecAV01 = "av01"
)

// PreferredDownloadExt is the container extension for downloaded videos.
const PreferredDownloadExt = "mp4"

// Player describes the external media player invocation.
type Player struct {
	Binary string
	// Params are always passed; LiveParams are appended for live content.
	Params     []string
	LiveParams []string
}

// NewPlayer splits the whitespace-separated parameter strings coming from
// the configuration into argv fragments.
func NewPlayer(binary, params, liveParams string) Player {
	return Player{
		Binary:     binary,
		Params:     strings.Fields(params),
		LiveParams: strings.Fields(liveParams),
	}
}
