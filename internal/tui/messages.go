package tui

import "github.com/FacundoAdorno/FLTube/internal/ytdlp"

type searchDoneMsg struct {
	rows []ytdlp.VideoMetadata
	page int
}

type streamDoneMsg struct {
	err error
}

type downloadDoneMsg struct {
	id  string
	err error
}
