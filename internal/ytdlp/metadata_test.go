package ytdlp

import "testing"

const sampleRow = `title="A = B, explained">>thumbnail="https://i.ytimg.com/vi/abc123/hq.jpg">>creators="Some Channel">>video_id="abc123">>upload_date="2024-05-01">>duration="00:12:34">>channel_id="UCxyz">>live_status="not_live">>viewers_count="15300">>`

func TestParseMetadata(t *testing.T) {
	m := ParseMetadata(sampleRow)
	tests := []struct {
		field string
		got   string
		want  string
	}{
		{"ID", m.ID, "abc123"},
		{"Title", m.Title, "A = B, explained"},
		{"URL", m.URL, "https://youtu.be/abc123"},
		{"UploadDate", m.UploadDate, "2024-05-01"},
		{"Creators", m.Creators, "Some Channel"},
		{"Duration", m.Duration, "00:12:34"},
		{"ChannelID", m.ChannelID, "UCxyz"},
		{"ThumbnailURL", m.ThumbnailURL, "https://i.ytimg.com/vi/abc123/hq.jpg"},
		{"LiveStatus", m.LiveStatus, "not_live"},
		{"ViewersCount", m.ViewersCount, "15300"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s got=%q, want %q", tt.field, tt.got, tt.want)
		}
	}
	if m.IsLive() {
		t.Fatalf("not_live must not report live")
	}
}

func TestParseMetadataIgnoresUnknownAndMalformed(t *testing.T) {
	m := ParseMetadata(`video_id="x">>bogus_key="y">>no separator here>>title="ok">>`)
	if m.ID != "x" || m.Title != "ok" {
		t.Fatalf("known keys must parse, got=%+v", m)
	}
	if m.Creators != "" || m.Duration != "" {
		t.Fatalf("absent keys must stay empty, got=%+v", m)
	}
}

func TestParseMetadataLive(t *testing.T) {
	m := ParseMetadata(`video_id="l1">>live_status="is_live">>viewers_count="250">>`)
	if !m.IsLive() {
		t.Fatalf("is_live must report live")
	}
}

func TestParseMetadataLines(t *testing.T) {
	raw := sampleRow + "\n\n" + `video_id="second">>title="two">>` + "\n"
	rows := ParseMetadataLines(raw)
	if len(rows) != 2 {
		t.Fatalf("rows got=%d, want 2", len(rows))
	}
	if rows[0].ID != "abc123" || rows[1].ID != "second" {
		t.Fatalf("row ids got=%q,%q", rows[0].ID, rows[1].ID)
	}
	if got := ParseMetadataLines(""); got != nil {
		t.Fatalf("empty output must yield no rows, got=%v", got)
	}
}
