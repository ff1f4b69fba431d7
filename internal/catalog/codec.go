package catalog

import "strings"

// On-disk format markers. The file is line oriented: a version header,
// the videos section and the lists section. Fields are separated by the
// reserved '>' character with no escaping, so field values must not
// contain it.
const (
	videosMarker = "===VIDEOS==="
	listsMarker  = "===LISTS==="
	fieldSep     = ">"
)

const videoFieldCount = 7

// splitFields splits a record line on the field separator, trimming each
// field.
func splitFields(line string) []string {
	parts := strings.Split(line, fieldSep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func encodeVideo(v *Video) string {
	return strings.Join([]string{
		v.ID, v.Title, v.Creator, v.ChannelID, v.Views, v.Duration, v.ThumbnailURL,
	}, fieldSep)
}

func decodeVideo(fields []string) *Video {
	return &Video{
		ID:           fields[0],
		Title:        fields[1],
		Creator:      fields[2],
		ChannelID:    fields[3],
		Views:        fields[4],
		Duration:     fields[5],
		ThumbnailURL: fields[6],
	}
}

func encodeList(l *videoList) string {
	parts := make([]string, 0, len(l.items)+1)
	parts = append(parts, l.name)
	for _, v := range l.items {
		parts = append(parts, v.ID)
	}
	return strings.Join(parts, fieldSep)
}
