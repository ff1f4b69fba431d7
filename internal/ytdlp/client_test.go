package ytdlp

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

type call struct {
	kind string // "output", "run", "pipeline"
	argv []string
	next []string // pipeline consumer
}

type fakeRunner struct {
	calls     []call
	outputs   map[string]string // keyed by argv[1] for Output calls
	outputErr error
	runErr    error
}

func (f *fakeRunner) Output(_ context.Context, argv []string, _ io.Writer) (string, error) {
	f.calls = append(f.calls, call{kind: "output", argv: argv})
	out := ""
	if f.outputs != nil && len(argv) > 1 {
		for _, a := range argv[1:] {
			if v, ok := f.outputs[a]; ok {
				out = v
				break
			}
		}
	}
	return out, f.outputErr
}

func (f *fakeRunner) Run(_ context.Context, argv []string) error {
	f.calls = append(f.calls, call{kind: "run", argv: argv})
	return f.runErr
}

func (f *fakeRunner) RunPipeline(_ context.Context, producer, consumer []string) error {
	f.calls = append(f.calls, call{kind: "pipeline", argv: producer, next: consumer})
	return f.runErr
}

func newTestClient(t *testing.T, r *fakeRunner, alt bool) *Client {
	t.Helper()
	return New(Options{
		Resolution:        R480,
		Player:            NewPlayer("mpv", "--quiet", "--live"),
		AlternativeStream: alt,
		WorkDir:           t.TempDir(),
		Runner:            r,
	})
}

func TestStreamDirectURL(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"https://youtu.be/x": "https://cdn/media.mp4\n"}}
	c := newTestClient(t, r, false)

	if err := c.Stream(context.Background(), "https://youtu.be/x"); err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if len(r.calls) != 2 {
		t.Fatalf("calls got=%d, want 2", len(r.calls))
	}
	if r.calls[0].kind != "output" || r.calls[0].argv[3] != "-g" {
		t.Fatalf("first call must resolve the URL, got=%v", r.calls[0])
	}
	wantPlayer := []string{"mpv", "--quiet", "https://cdn/media.mp4"}
	if r.calls[1].kind != "run" || !reflect.DeepEqual(r.calls[1].argv, wantPlayer) {
		t.Fatalf("player call got=%v, want %v", r.calls[1], wantPlayer)
	}
	if got := c.StreamPhase(); got != PhasePlaying {
		t.Fatalf("phase got=%v, want %v", got, PhasePlaying)
	}
}

func TestStreamFallbackEnabled(t *testing.T) {
	r := &fakeRunner{} // resolution yields no URL
	c := newTestClient(t, r, true)

	if err := c.Stream(context.Background(), "https://youtu.be/x"); err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if len(r.calls) != 2 {
		t.Fatalf("calls got=%d, want 2", len(r.calls))
	}
	if r.calls[1].kind != "pipeline" {
		t.Fatalf("fallback must pipe, got=%v", r.calls[1].kind)
	}
	if got := r.calls[1].argv[2]; got != "bv*[height<=480][vcodec^=avc]+ba[acodec^=mp4a]" {
		t.Fatalf("fallback format got=%q", got)
	}
	wantPlayer := []string{"mpv", "--quiet", "-"}
	if !reflect.DeepEqual(r.calls[1].next, wantPlayer) {
		t.Fatalf("fallback player got=%v, want %v", r.calls[1].next, wantPlayer)
	}
	if got := c.StreamPhase(); got != PhaseFallbackPlaying {
		t.Fatalf("phase got=%v, want %v", got, PhaseFallbackPlaying)
	}
}

func TestStreamFallbackDisabled(t *testing.T) {
	r := &fakeRunner{}
	c := newTestClient(t, r, false)

	err := c.Stream(context.Background(), "https://youtu.be/x")
	if !errors.Is(err, ErrNoStreamURL) {
		t.Fatalf("err got=%v, want ErrNoStreamURL", err)
	}
	if len(r.calls) != 1 {
		t.Fatalf("no player or fallback may run, calls=%v", r.calls)
	}
	if got := c.StreamPhase(); got != PhaseFallbackDisabled {
		t.Fatalf("phase got=%v, want %v", got, PhaseFallbackDisabled)
	}
}

func TestStreamLive(t *testing.T) {
	r := &fakeRunner{}
	c := newTestClient(t, r, false)
	c.SetLive(true)

	if err := c.Stream(context.Background(), "https://youtu.be/live"); err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if len(r.calls) != 1 || r.calls[0].kind != "pipeline" {
		t.Fatalf("live must pipe in one call, got=%v", r.calls)
	}
	if got := r.calls[0].argv; got[2] != "res:480,+codec:avc1:m4a" || got[4] != "-" {
		t.Fatalf("live producer argv got=%v", got)
	}
	wantPlayer := []string{"mpv", "--quiet", "--live", "-"}
	if !reflect.DeepEqual(r.calls[0].next, wantPlayer) {
		t.Fatalf("live player got=%v, want %v", r.calls[0].next, wantPlayer)
	}
	if got := c.StreamPhase(); got != PhasePlaying {
		t.Fatalf("phase got=%v, want %v", got, PhasePlaying)
	}
}

func TestSearchVideos(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"ytsearch5:cats": `video_id="a">>title="one">>` + "\n" + `video_id="b">>title="two">>` + "\n",
	}}
	c := newTestClient(t, r, false)
	c.SetSearchType(SearchByTerm)

	rows := c.SearchVideos(context.Background(), "cats", PageInfo{Size: 5, Index: 0})
	if len(rows) != 2 || rows[0].ID != "a" || rows[1].Title != "two" {
		t.Fatalf("rows got=%+v", rows)
	}
}

func TestSearchStartFailure(t *testing.T) {
	r := &fakeRunner{outputErr: errors.New("executable file not found")}
	c := newTestClient(t, r, false)

	if _, err := c.Search(context.Background(), "cats", PageInfo{Size: 5, Index: 0}); err == nil {
		t.Fatalf("start failure must surface")
	}
	if rows := c.SearchVideos(context.Background(), "cats", PageInfo{Size: 5, Index: 0}); rows != nil {
		t.Fatalf("SearchVideos must degrade to no rows, got=%v", rows)
	}
}

func TestDownload(t *testing.T) {
	r := &fakeRunner{}
	c := newTestClient(t, r, false)

	if err := c.Download(context.Background(), "https://youtu.be/x", "/videos", 0, ""); err != nil {
		t.Fatalf("Download: %v", err)
	}
	argv := r.calls[0].argv
	if !strings.Contains(argv[2], "height<=480") || !strings.Contains(argv[2], "vcodec^=avc1") {
		t.Fatalf("defaults must be the client resolution and avc1, argv=%v", argv)
	}
	if argv[5] != "/videos/%(id)s.mp4" {
		t.Fatalf("output template got=%q", argv[5])
	}
}

func TestDownloadPerCallResolutionAndCodec(t *testing.T) {
	r := &fakeRunner{}
	c := newTestClient(t, r, false)

	if err := c.Download(context.Background(), "https://youtu.be/x", "/videos", R1080, CodecAV01); err != nil {
		t.Fatalf("Download: %v", err)
	}
	argv := r.calls[0].argv
	if !strings.Contains(argv[2], "height<=1080") || !strings.Contains(argv[2], "vcodec^=av01") {
		t.Fatalf("per-call resolution and codec must win over the client defaults, argv=%v", argv)
	}
	if got := c.Resolution(); got != R480 {
		t.Fatalf("a per-call resolution must not change the client resolution, got=%d", got)
	}
}

func TestInstalled(t *testing.T) {
	if !Installed(context.Background(), &fakeRunner{}) {
		t.Fatalf("healthy runner must report installed")
	}
	if Installed(context.Background(), &fakeRunner{outputErr: errors.New("not found")}) {
		t.Fatalf("failing runner must report not installed")
	}
}
