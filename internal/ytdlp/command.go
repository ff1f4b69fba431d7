package ytdlp

import "fmt"

// SearchRequest describes one search invocation.
type SearchRequest struct {
	Type  SearchType
	Query string
	Page  PageInfo
}

// searchArgv builds the flat-playlist search command. Term searches wrap
// the text in a ytsearch<N>: component sized to the window's upper end;
// channel URLs are passed through; a single-video URL forces a 1-1 window.
func searchArgv(req SearchRequest) []string {
	component := req.Query
	page := req.Page
	switch req.Type {
	case SearchByTerm:
		component = fmt.Sprintf("ytsearch%d:%s", page.UpperEnd(), req.Query)
	case SearchByVideoURL:
		page = PageInfo{Size: 1, Index: 0}
	}
	return []string{
		Bin, component,
		"-I", page.Range(),
		"--flat-playlist",
		"--print", printTemplate,
		"--extractor-args", "youtubetab:approximate_date",
	}
}

// streamSelector is the -S format sort for streaming playback.
func streamSelector(res Resolution) string {
	return fmt.Sprintf("res:%d,+codec:avc1:m4a", res)
}

// resolveURLArgv asks the extractor for a direct media URL.
func resolveURLArgv(videoURL string, res Resolution) []string {
	return []string{Bin, "-S", streamSelector(res), "-g", videoURL}
}

// livePipeArgv streams live content to stdout for piping into the player.
func livePipeArgv(videoURL string, res Resolution) []string {
	return []string{Bin, "-S", streamSelector(res), "-o", "-", videoURL}
}

// fallbackPipeArgv is the merge-and-pipe strategy used when no direct URL
// could be resolved.
func fallbackPipeArgv(videoURL string, res Resolution) []string {
	return []string{
		Bin,
		"-f", fmt.Sprintf("bv*[height<=%d][vcodec^=avc]+ba[acodec^=mp4a]", res),
		"-o", "-",
		"--merge-output-format", "mkv",
		videoURL,
	}
}

// downloadArgv builds the download command. The output file is named after
// the video id inside downloadDir.
func downloadArgv(videoURL, downloadDir string, res Resolution, vcodec string) []string {
	return []string{
		Bin,
		"-f", fmt.Sprintf("bestvideo[height<=%d][vcodec^=%s]+bestaudio/best", res, vcodec),
		videoURL,
		"-o", fmt.Sprintf("%s/%%(id)s.%s", downloadDir, PreferredDownloadExt),
	}
}

// playerArgv builds the player invocation. target is either a media URL or
// "-" to read from stdin; live parameters are appended only when asked.
func playerArgv(p Player, live bool, target string) []string {
	argv := make([]string, 0, len(p.Params)+len(p.LiveParams)+2)
	argv = append(argv, p.Binary)
	argv = append(argv, p.Params...)
	if live {
		argv = append(argv, p.LiveParams...)
	}
	return append(argv, target)
}
