package ytdlp

import "errors"

var (
	// ErrNoStreamURL means no direct media URL could be resolved and the
	// alternative pipe strategy is disabled.
	ErrNoStreamURL = errors.New("ytdlp: no stream url resolved and alternative method disabled")
)
