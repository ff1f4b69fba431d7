package ytdlp

import "strings"

// printTemplate is the --print template for flat-playlist searches. Each
// field is quote-wrapped and terminated by the ">>" separator so the
// output stays parseable when values contain spaces or '='.
const printTemplate = `title="%(title)s">>` +
	`thumbnail="%(thumbnails.0.url)s">>` +
	`creators="%(uploader,playlist_channel)s">>` +
	`video_id="%(id)s">>` +
	`upload_date="%(upload_date>%Y-%m-%d)s">>` +
	`duration="%(duration>%H:%M:%S)s">>` +
	`channel_id="%(playlist_channel_id,channel_id)s">>` +
	`live_status="%(live_status)s">>` +
	`viewers_count="%(view_count,concurrent_view_count)s">>`

// YouTubeURLPrefix is the canonical short-URL prefix a video id is
// appended to.
const YouTubeURLPrefix = "https://youtu.be/"

// liveStatusLive is the live_status value of currently live content.
const liveStatusLive = "is_live"

// VideoMetadata is one parsed search result row.
type VideoMetadata struct {
	ID           string
	Title        string
	URL          string
	UploadDate   string
	Creators     string
	Duration     string
	ChannelID    string
	ThumbnailURL string
	LiveStatus   string
	ViewersCount string
}

// IsLive reports whether the video is live right now.
func (m VideoMetadata) IsLive() bool { return m.LiveStatus == liveStatusLive }

// ParseMetadata decodes one output line of the print template. Chunks are
// separated by ">>"; each chunk is key=value with one leading and one
// trailing quote stripped from the value. Unknown keys and chunks without
// '=' are ignored. The watch URL is synthesized from the id.
func ParseMetadata(line string) VideoMetadata {
	var m VideoMetadata
	for _, chunk := range strings.Split(line, ">>") {
		key, value, ok := strings.Cut(chunk, "=")
		if !ok {
			continue
		}
		value = strings.TrimPrefix(value, `"`)
		value = strings.TrimSuffix(value, `"`)
		switch key {
		case "title":
			m.Title = value
		case "thumbnail":
			m.ThumbnailURL = value
		case "creators":
			m.Creators = value
		case "video_id":
			m.ID = value
		case "upload_date":
			m.UploadDate = value
		case "duration":
			m.Duration = value
		case "channel_id":
			m.ChannelID = value
		case "live_status":
			m.LiveStatus = value
		case "viewers_count":
			m.ViewersCount = value
		}
	}
	m.URL = YouTubeURLPrefix + m.ID
	return m
}

// ParseMetadataLines decodes a whole search output, one row per non-blank
// line.
func ParseMetadataLines(raw string) []VideoMetadata {
	var out []VideoMetadata
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, ParseMetadata(line))
	}
	return out
}
