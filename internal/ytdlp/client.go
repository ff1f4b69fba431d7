package ytdlp

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/FacundoAdorno/FLTube/internal/logging"
)

// errorLogName collects the extractor's stderr during URL resolution.
const errorLogName = "ytdlp_errors.log"

// StreamPhase tracks where a streaming attempt currently is.
type StreamPhase int

const (
	PhaseIdle StreamPhase = iota
	PhaseResolvingURL
	PhasePlaying
	PhaseResolutionFailed
	PhaseFallbackPlaying
	PhaseFallbackDisabled
)

// Options configures a Client.
type Options struct {
	Resolution Resolution
	Player     Player
	// AlternativeStream enables the merge-and-pipe fallback when no
	// direct media URL can be resolved.
	AlternativeStream bool
	// WorkDir holds scratch files such as the extractor error log.
	// Defaults to a subdirectory of the system temp dir.
	WorkDir string
	Runner  Runner
	Logger  logging.Logger
}

// Client drives yt-dlp for searching, streaming and downloading.
type Client struct {
	runner      Runner
	log         logging.Logger
	resolution  Resolution
	player      Player
	altStream   bool
	workDir     string
	searchType  SearchType
	live        bool
	streamPhase StreamPhase
}

// New returns a Client. Zero-value options get working defaults.
func New(opts Options) *Client {
	c := &Client{
		runner:      opts.Runner,
		log:         opts.Logger,
		resolution:  opts.Resolution,
		player:      opts.Player,
		altStream:   opts.AlternativeStream,
		workDir:     opts.WorkDir,
		streamPhase: PhaseIdle,
	}
	if c.runner == nil {
		c.runner = ExecRunner{}
	}
	if c.log == nil {
		c.log = logging.Nop()
	}
	if c.resolution == 0 {
		c.resolution = DefaultResolution
	}
	if c.workDir == "" {
		c.workDir = filepath.Join(os.TempDir(), "fltube_tmp_files")
	}
	return c
}

// SetSearchType selects how the next searches interpret their input.
func (c *Client) SetSearchType(t SearchType) { c.searchType = t }

// SearchType returns the current search interpretation.
func (c *Client) SearchType() SearchType { return c.searchType }

// SetLive marks the next streamed video as live content.
func (c *Client) SetLive(live bool) { c.live = live }

// Live reports whether the next streamed video is treated as live.
func (c *Client) Live() bool { return c.live }

// SetResolution changes the target resolution for stream and download.
func (c *Client) SetResolution(r Resolution) { c.resolution = r }

// Resolution returns the current target resolution.
func (c *Client) Resolution() Resolution { return c.resolution }

// StreamPhase reports the phase reached by the last streaming attempt.
func (c *Client) StreamPhase() StreamPhase { return c.streamPhase }

// Search runs one extractor invocation and returns its raw multi-line
// output. An error is returned only when the process could not run at all;
// a run that exits non-zero yields whatever output was collected, and an
// empty result is a valid no-results outcome.
func (c *Client) Search(ctx context.Context, query string, page PageInfo) (string, error) {
	argv := searchArgv(SearchRequest{Type: c.searchType, Query: query, Page: page})
	c.log.Debugf("search command: %s", quoteArgv(argv))
	out, err := c.runner.Output(ctx, argv, nil)
	if err != nil {
		if !exitedNonZero(err) {
			return "", err
		}
		c.log.Debugf("search exited non-zero: %v", err)
	}
	return out, nil
}

// SearchVideos runs Search and parses the metadata rows. Failures degrade
// to an empty result set.
func (c *Client) SearchVideos(ctx context.Context, query string, page PageInfo) []VideoMetadata {
	out, err := c.Search(ctx, query, page)
	if err != nil {
		c.log.Warnf("search failed: %v", err)
		return nil
	}
	return ParseMetadataLines(out)
}

// Stream plays videoURL through the configured player and blocks for the
// player's lifetime. Live content is piped straight into the player. For
// recorded content a direct media URL is resolved first and handed to the
// player; when resolution fails the merge-and-pipe fallback runs, but only
// if it was enabled.
func (c *Client) Stream(ctx context.Context, videoURL string) error {
	if c.live {
		c.streamPhase = PhasePlaying
		argv := livePipeArgv(videoURL, c.resolution)
		c.log.Debugf("live stream command: %s", quoteArgv(argv))
		return c.runner.RunPipeline(ctx, argv, playerArgv(c.player, true, "-"))
	}

	c.streamPhase = PhaseResolvingURL
	mediaURL := c.resolveMediaURL(ctx, videoURL)
	if mediaURL != "" {
		c.streamPhase = PhasePlaying
		return c.runner.Run(ctx, playerArgv(c.player, false, mediaURL))
	}

	c.streamPhase = PhaseResolutionFailed
	if !c.altStream {
		c.streamPhase = PhaseFallbackDisabled
		c.log.Errorf("cannot obtain a media URL for the video, and the alternative stream method is disabled")
		return ErrNoStreamURL
	}
	c.log.Warnf("the default stream method did not yield a URL, falling back to the alternative method")
	c.streamPhase = PhaseFallbackPlaying
	argv := fallbackPipeArgv(videoURL, c.resolution)
	c.log.Debugf("fallback stream command: %s", quoteArgv(argv))
	return c.runner.RunPipeline(ctx, argv, playerArgv(c.player, false, "-"))
}

func (c *Client) resolveMediaURL(ctx context.Context, videoURL string) string {
	argv := resolveURLArgv(videoURL, c.resolution)
	c.log.Debugf("resolve command: %s", quoteArgv(argv))
	stderr := c.openErrorLog()
	out, err := c.runner.Output(ctx, argv, stderr)
	if stderr != nil {
		stderr.Close()
	}
	if err != nil && !exitedNonZero(err) {
		c.log.Errorf("cannot run the extractor: %v", err)
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(out, "\n", ""))
}

func (c *Client) openErrorLog() io.WriteCloser {
	if err := os.MkdirAll(c.workDir, 0o755); err != nil {
		return nil
	}
	f, err := os.Create(filepath.Join(c.workDir, errorLogName))
	if err != nil {
		return nil
	}
	return f
}

// Download fetches videoURL into downloadDir, best video stream up to res
// with the given codec prefix plus best audio. A zero res falls back to
// the client resolution, an empty vcodec to the preferred codec. Blocks
// until the extractor finishes.
func (c *Client) Download(ctx context.Context, videoURL, downloadDir string, res Resolution, vcodec string) error {
	if res <= 0 {
		res = c.resolution
	}
	if vcodec == "" {
		vcodec = CodecAVC1
	}
	argv := downloadArgv(videoURL, downloadDir, res, vcodec)
	c.log.Debugf("download command: %s", quoteArgv(argv))
	return c.runner.Run(ctx, argv)
}
