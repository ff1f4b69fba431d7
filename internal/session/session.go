// Package session holds the mutable per-run state shared between the
// user interface and the detached playback worker.
package session

import "sync/atomic"

// Mode selects how the search input is interpreted.
type Mode int

const (
	ModeTerm Mode = iota
	ModeChannel
	ModeURL
)

// View identifies which collection the interface is displaying.
type View int

const (
	ViewSearch View = iota
	ViewSavedList
)

// State is the single session record. Only the busy flag crosses the
// goroutine boundary to the playback worker; the rest belongs to the
// interface goroutine.
type State struct {
	busy      atomic.Bool
	pageIndex int
	mode      Mode
	view      View
}

// New returns a fresh session on the search view, first page.
func New() *State { return &State{} }

// TryBegin marks an extraction action as in progress. It fails when
// another action already holds the flag, so two concurrent callers can
// never both launch.
func (s *State) TryBegin() bool { return s.busy.CompareAndSwap(false, true) }

// End releases the busy flag.
func (s *State) End() { s.busy.Store(false) }

// Busy reports whether an extraction action is in progress.
func (s *State) Busy() bool { return s.busy.Load() }

// PageIndex returns the zero-based search page cursor.
func (s *State) PageIndex() int { return s.pageIndex }

// NextPage advances the page cursor.
func (s *State) NextPage() { s.pageIndex++ }

// PrevPage moves the cursor back, never below the first page.
func (s *State) PrevPage() {
	if s.pageIndex > 0 {
		s.pageIndex--
	}
}

// ResetPage rewinds the cursor to the first page.
func (s *State) ResetPage() { s.pageIndex = 0 }

func (s *State) Mode() Mode     { return s.mode }
func (s *State) SetMode(m Mode) { s.mode = m }
func (s *State) View() View     { return s.view }
func (s *State) SetView(v View) { s.view = v }
