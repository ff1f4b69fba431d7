// Package tui is the terminal front-end. It owns no domain logic: every
// action is delegated to the catalog, session and extraction packages.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/FacundoAdorno/FLTube/internal/assets"
	"github.com/FacundoAdorno/FLTube/internal/catalog"
	"github.com/FacundoAdorno/FLTube/internal/config"
	"github.com/FacundoAdorno/FLTube/internal/logging"
	"github.com/FacundoAdorno/FLTube/internal/netcheck"
	"github.com/FacundoAdorno/FLTube/internal/session"
	"github.com/FacundoAdorno/FLTube/internal/status"
	"github.com/FacundoAdorno/FLTube/internal/ytdlp"
)

// PageSize is the number of result rows shown per page.
const PageSize = 5

// Options wires the model to the rest of the program.
type Options struct {
	Config      *config.Store
	Catalog     *catalog.Store
	Client      *ytdlp.Client
	Session     *session.State
	Logger      logging.Logger
	DownloadDir string
	// ThumbnailDir caches thumbnails of cataloged videos; empty
	// disables the cache.
	ThumbnailDir string
	// Probe checks connectivity before each search or stream action.
	// Defaults to the platform probe.
	Probe func() bool
}

type focusArea int

const (
	focusInput focusArea = iota
	focusResults
)

// Model is the bubbletea model for the whole interface.
type Model struct {
	cfg         *config.Store
	cat         *catalog.Store
	client      *ytdlp.Client
	sess        *session.State
	log         logging.Logger
	downloadDir string
	thumbDir    string
	probe       func() bool
	keys        map[string]config.Shortcut

	input     textinput.Model
	focus     focusArea
	rows      []ytdlp.VideoMetadata
	selected  int
	statusMsg string
	lastQuery string
	showHelp  bool
	width     int
	quitting  bool
}

// NewModel builds the initial interface state.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "search term, channel URL or video URL"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	probe := opts.Probe
	if probe == nil {
		probe = func() bool { return netcheck.Online(nil) }
	}
	return Model{
		cfg:         opts.Config,
		cat:         opts.Catalog,
		client:      opts.Client,
		sess:        opts.Session,
		log:         log,
		downloadDir: opts.DownloadDir,
		thumbDir:    opts.ThumbnailDir,
		probe:       probe,
		keys:        shortcutKeys(opts.Config),
		input:       ti,
		statusMsg:   "ready",
	}
}

// dispatchable is the set of shortcut identities the interface acts on.
var dispatchable = []config.Shortcut{
	config.FocusSearch,
	config.FocusVideo1, config.FocusVideo2, config.FocusVideo3, config.FocusVideo4,
	config.FocusChannel1, config.FocusChannel2, config.FocusChannel3, config.FocusChannel4,
	config.ShowHelp,
}

// shortcutKeys maps the resolved bindings to the key strings bubbletea
// reports. Bindings the terminal cannot deliver are left out.
func shortcutKeys(cfg *config.Store) map[string]config.Shortcut {
	keys := make(map[string]config.Shortcut)
	if cfg == nil {
		return keys
	}
	for _, id := range dispatchable {
		if k := keyString(cfg.Shortcut(id)); k != "" {
			keys[k] = id
		}
	}
	return keys
}

// keyString translates a resolved key code to the string a bubbletea key
// message produces. Shifted combinations and keys terminals do not report
// distinctly yield "".
func keyString(code int) string {
	if code <= 0 || code&config.KeyShift != 0 {
		return ""
	}
	base := code &^ (config.KeyCtrl | config.KeyAlt)
	var key string
	switch {
	case base > config.KeyFn && base <= config.KeyFn+12:
		key = fmt.Sprintf("f%d", base-config.KeyFn)
	case base >= 'a' && base <= 'z':
		key = string(rune(base))
	default:
		return ""
	}
	if code&config.KeyCtrl != 0 {
		key = "ctrl+" + key
	}
	if code&config.KeyAlt != 0 {
		key = "alt+" + key
	}
	return key
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case searchDoneMsg:
		m.sess.End()
		m.rows = msg.rows
		m.selected = 0
		m.focus = focusResults
		if len(msg.rows) == 0 {
			m.statusMsg = "no results"
		} else {
			m.statusMsg = fmt.Sprintf("page %d", msg.page+1)
		}
		return m, nil

	case streamDoneMsg:
		m.sess.End()
		if msg.err != nil {
			m.statusMsg = "playback failed: " + msg.err.Error()
		} else {
			m.statusMsg = "playback finished"
		}
		return m, nil

	case downloadDoneMsg:
		m.sess.End()
		if msg.err != nil {
			m.statusMsg = "download failed: " + msg.err.Error()
		} else {
			m.statusMsg = "downloaded " + msg.id
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if id, bound := m.keys[msg.String()]; bound {
		return m.runShortcut(id)
	}

	switch msg.String() {
	case "?":
		if m.focus == focusResults {
			m.showHelp = !m.showHelp
			return m, nil
		}

	case "esc":
		if m.focus == focusInput {
			m.input.Blur()
			m.focus = focusResults
			return m, nil
		}
		m.showHelp = false
		return m, nil

	case "enter":
		if m.focus == focusInput {
			return m.startSearch(m.input.Value(), 0)
		}
		return m.startStream()
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
	case "n", "right":
		if m.lastQuery != "" && len(m.rows) == PageSize {
			return m.startSearch(m.lastQuery, m.sess.PageIndex()+1)
		}
	case "p", "left":
		if m.lastQuery != "" && m.sess.PageIndex() > 0 {
			return m.startSearch(m.lastQuery, m.sess.PageIndex()-1)
		}
	case "l":
		m.toggleLike()
	case "d":
		return m.startDownload(ytdlp.CodecAVC1)
	case "D":
		return m.startDownload(ytdlp.CodecAV01)
	case "r":
		m.cycleResolution()
	case "h":
		m.loadSavedList(catalog.HistoryListName)
	case "L":
		m.loadSavedList(catalog.LikedListName)
	}
	return m, nil
}

// runShortcut acts on a configured shortcut binding.
func (m Model) runShortcut(id config.Shortcut) (tea.Model, tea.Cmd) {
	switch id {
	case config.FocusSearch:
		m.focus = focusInput
		m.input.Focus()
		return m, textinput.Blink
	case config.ShowHelp:
		m.showHelp = !m.showHelp
	case config.FocusVideo1, config.FocusVideo2, config.FocusVideo3, config.FocusVideo4:
		n := int(id - config.FocusVideo1)
		if n < len(m.rows) {
			m.selected = n
			m.focus = focusResults
			m.input.Blur()
		}
	case config.FocusChannel1, config.FocusChannel2, config.FocusChannel3, config.FocusChannel4:
		n := int(id - config.FocusChannel1)
		if n < len(m.rows) && m.rows[n].ChannelID != "" {
			return m.startSearch("https://www.youtube.com/channel/"+m.rows[n].ChannelID, 0)
		}
	}
	return m, nil
}

// cycleResolution steps the playback and download resolution.
func (m *Model) cycleResolution() {
	order := []ytdlp.Resolution{ytdlp.R240, ytdlp.R360, ytdlp.R480, ytdlp.R720, ytdlp.R1080}
	cur := m.client.Resolution()
	next := order[0]
	for i, r := range order {
		if r == cur {
			next = order[(i+1)%len(order)]
			break
		}
	}
	m.client.SetResolution(next)
	m.statusMsg = fmt.Sprintf("resolution set to %dp", next)
}

// classify maps the raw input to a search mode. Non-platform URLs are
// refused rather than degraded to a term search.
func classify(query string) (session.Mode, ytdlp.SearchType, bool) {
	if ytdlp.IsURL(query) {
		if !ytdlp.IsYouTubeURL(query) {
			return 0, 0, false
		}
		if strings.Contains(query, "/@") || strings.Contains(query, "/channel/") {
			return session.ModeChannel, ytdlp.SearchByChannelURL, true
		}
		return session.ModeURL, ytdlp.SearchByVideoURL, true
	}
	return session.ModeTerm, ytdlp.SearchByTerm, true
}

func (m Model) startSearch(query string, page int) (tea.Model, tea.Cmd) {
	query = strings.TrimSpace(query)
	if query == "" {
		m.statusMsg = "nothing to search"
		return m, nil
	}
	mode, searchType, ok := classify(query)
	if !ok {
		m.log.Warnf("'%s' is not a supported video platform URL", query)
		m.statusMsg = "not a supported video platform URL"
		return m, nil
	}
	if !m.probe() {
		m.statusMsg = "no network connection, try again later"
		return m, nil
	}
	if !m.sess.TryBegin() {
		m.statusMsg = "another action is in progress"
		return m, nil
	}
	m.sess.SetMode(mode)
	m.sess.SetView(session.ViewSearch)
	m.client.SetSearchType(searchType)
	if page == 0 {
		m.sess.ResetPage()
	} else {
		for m.sess.PageIndex() < page {
			m.sess.NextPage()
		}
		for m.sess.PageIndex() > page {
			m.sess.PrevPage()
		}
	}
	m.lastQuery = query
	m.statusMsg = "searching..."
	client, idx := m.client, m.sess.PageIndex()
	return m, func() tea.Msg {
		rows := client.SearchVideos(context.Background(), query, ytdlp.PageInfo{Size: PageSize, Index: idx})
		return searchDoneMsg{rows: rows, page: idx}
	}
}

func (m Model) startStream() (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	if !m.probe() {
		m.statusMsg = "no network connection, try again later"
		return m, nil
	}
	if !m.sess.TryBegin() {
		m.statusMsg = "another action is in progress"
		return m, nil
	}
	m.cat.AddVideo(rowToVideo(row), catalog.HistoryListName)
	m.client.SetLive(row.IsLive())
	m.statusMsg = "playing " + row.Title
	client, url := m.client, row.URL
	return m, func() tea.Msg {
		return streamDoneMsg{err: client.Stream(context.Background(), url)}
	}
}

func (m Model) startDownload(vcodec string) (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	if !m.sess.TryBegin() {
		m.statusMsg = "another action is in progress"
		return m, nil
	}
	res := m.client.Resolution()
	m.statusMsg = fmt.Sprintf("downloading %s at %dp", row.Title, res)
	client, url, dir, id := m.client, row.URL, m.downloadDir, row.ID
	return m, func() tea.Msg {
		return downloadDoneMsg{id: id, err: client.Download(context.Background(), url, dir, res, vcodec)}
	}
}

func (m *Model) toggleLike() {
	row, ok := m.selectedRow()
	if !ok {
		return
	}
	if m.cat.LikedList().Contains(row.ID) {
		m.cat.RemoveVideoFromList(row.ID, catalog.LikedListName)
		m.statusMsg = "removed from " + catalog.LikedListName
		return
	}
	m.cat.AddVideo(rowToVideo(row), catalog.LikedListName)
	m.cacheThumbnail(row)
	m.statusMsg = "added to " + catalog.LikedListName
}

// cacheThumbnail stores the thumbnail of a cataloged video beside the
// userdata, best effort.
func (m *Model) cacheThumbnail(row ytdlp.VideoMetadata) {
	if m.thumbDir == "" || row.ThumbnailURL == "" {
		return
	}
	dir, url, id, log := m.thumbDir, row.ThumbnailURL, row.ID, m.log
	go func() {
		if code := assets.Fetch(nil, url, dir, id+".jpg", false); code == status.DownloadFileFailed {
			log.Warnf("cannot cache the thumbnail for video '%s'", id)
		}
	}()
}

func (m *Model) loadSavedList(name string) {
	list, ok := m.cat.VideoList(name)
	if !ok {
		return
	}
	m.sess.SetView(session.ViewSavedList)
	m.rows = nil
	for _, v := range list.Videos() {
		m.rows = append(m.rows, videoToRow(v))
	}
	m.selected = 0
	m.statusMsg = name
}

func (m Model) selectedRow() (ytdlp.VideoMetadata, bool) {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return ytdlp.VideoMetadata{}, false
	}
	return m.rows[m.selected], true
}

func rowToVideo(r ytdlp.VideoMetadata) catalog.Video {
	return catalog.Video{
		ID:           r.ID,
		Title:        r.Title,
		Creator:      r.Creators,
		ChannelID:    r.ChannelID,
		Views:        r.ViewersCount,
		Duration:     r.Duration,
		ThumbnailURL: r.ThumbnailURL,
	}
}

func videoToRow(v catalog.Video) ytdlp.VideoMetadata {
	return ytdlp.VideoMetadata{
		ID:           v.ID,
		Title:        v.Title,
		URL:          ytdlp.YouTubeURLPrefix + v.ID,
		Creators:     v.Creator,
		ChannelID:    v.ChannelID,
		ViewersCount: v.Views,
		Duration:     v.Duration,
		ThumbnailURL: v.ThumbnailURL,
	}
}

// Run starts the interface and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
