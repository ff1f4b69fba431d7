// Package catalog persists the user's video collection: a master map of
// videos plus named lists holding ordered references into it, stored in a
// versioned flat file.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/FacundoAdorno/FLTube/internal/logging"
)

// Names of the lists the program manages itself. They always exist.
const (
	HistoryListName = "Navigation History"
	LikedListName   = "Liked"
)

// BackupExt is appended to the catalog path for backup copies.
const BackupExt = ".bkp"

// Video is the persisted subset of metadata kept for a cataloged video.
// Field values must not contain the '>' separator.
type Video struct {
	ID           string
	Title        string
	Creator      string
	ChannelID    string
	Views        string
	Duration     string
	ThumbnailURL string
}

// Store is the in-memory catalog bound to its on-disk file. A video lives
// in the master map and is referenced by any number of lists; videos left
// unreferenced are only dropped when the catalog is persisted.
type Store struct {
	path    string
	version int
	videos  map[string]*Video
	lists   map[string]*videoList
	order   []string
	log     logging.Logger
}

// Open loads the catalog at path. A missing file yields an empty catalog.
// A file whose version header cannot be parsed is renamed aside with the
// backup extension and the catalog starts empty. The two system lists are
// always present.
func Open(path string, version int, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	s := &Store{
		path:    path,
		version: version,
		videos:  make(map[string]*Video),
		lists:   make(map[string]*videoList),
		log:     log,
	}
	s.addList(&videoList{name: HistoryListName})
	s.addList(&videoList{name: LikedListName})
	s.load()
	return s
}

func (s *Store) addList(l *videoList) {
	s.lists[l.name] = l
	s.order = append(s.order, l.name)
}

func (s *Store) load() {
	f, err := os.Open(s.path)
	if err != nil {
		s.log.Infof("no catalog file at '%s', starting empty", s.path)
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return
	}
	fileVersion, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		s.log.Errorf("catalog file at '%s' has an unreadable version header, moving it aside", s.path)
		f.Close()
		if renameErr := os.Rename(s.path, s.path+BackupExt); renameErr != nil {
			s.log.Errorf("cannot move corrupt catalog aside: %v", renameErr)
		}
		return
	}
	if fileVersion != s.version {
		s.log.Debugf("catalog file version %d differs from program catalog version %d", fileVersion, s.version)
	}

	const (
		sectionNone = iota
		sectionVideos
		sectionLists
	)
	section := sectionNone
	seenLists := make(map[string]bool)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case line == videosMarker:
			section = sectionVideos
			continue
		case line == listsMarker:
			section = sectionLists
			continue
		}
		switch section {
		case sectionVideos:
			fields := splitFields(line)
			if len(fields) != videoFieldCount {
				s.log.Warnf("skipping malformed video record with %d fields: '%s'", len(fields), line)
				continue
			}
			v := decodeVideo(fields)
			if v.ID == "" {
				s.log.Warnf("skipping video record with empty id: '%s'", line)
				continue
			}
			if _, dup := s.videos[v.ID]; dup {
				continue
			}
			s.videos[v.ID] = v
		case sectionLists:
			fields := splitFields(line)
			name := fields[0]
			if name == "" {
				continue
			}
			if seenLists[name] {
				s.log.Debugf("skipping duplicate list record '%s'", name)
				continue
			}
			seenLists[name] = true
			l, ok := s.lists[name]
			if !ok {
				l = &videoList{name: name, changeable: true}
				s.addList(l)
			}
			for _, id := range fields[1:] {
				if id == "" {
					continue
				}
				v, ok := s.videos[id]
				if !ok {
					s.log.Debugf("list '%s' references unknown video '%s', skipping", name, id)
					continue
				}
				l.add(v)
			}
		}
	}
}

// AddVideo stores v in the master map (if new) and references it from the
// named list. Re-adding a video already on the list is a no-op. Returns
// false when the list does not exist.
func (s *Store) AddVideo(v Video, listName string) bool {
	l, ok := s.lists[listName]
	if !ok {
		s.log.Errorf("cannot add video '%s': list '%s' does not exist", v.ID, listName)
		return false
	}
	stored, ok := s.videos[v.ID]
	if !ok {
		stored = &v
		s.videos[v.ID] = stored
	}
	l.add(stored)
	return true
}

// RemoveVideoFromList drops the reference to id from the named list only.
// The master map keeps the video until the next Persist.
func (s *Store) RemoveVideoFromList(id, listName string) bool {
	l, ok := s.lists[listName]
	if !ok {
		s.log.Errorf("cannot remove video '%s': list '%s' does not exist", id, listName)
		return false
	}
	return l.remove(id)
}

// CreateVideoList adds an empty user list. Returns false when the name is
// already taken, system names included.
func (s *Store) CreateVideoList(name string) bool {
	if name == "" {
		return false
	}
	if _, exists := s.lists[name]; exists {
		return false
	}
	s.addList(&videoList{name: name, changeable: true})
	return true
}

// ExistsVideoList reports whether a list with that name exists.
func (s *Store) ExistsVideoList(name string) bool {
	_, ok := s.lists[name]
	return ok
}

// VideoList returns the read-only view of a named list.
func (s *Store) VideoList(name string) (ListView, bool) {
	l, ok := s.lists[name]
	if !ok {
		return nil, false
	}
	return l, true
}

// VideoListNames returns every list name in creation order.
func (s *Store) VideoListNames() []string {
	return append([]string(nil), s.order...)
}

// HistoryList returns the navigation history system list.
func (s *Store) HistoryList() ListView { return s.lists[HistoryListName] }

// LikedList returns the liked-videos system list.
func (s *Store) LikedList() ListView { return s.lists[LikedListName] }

// ExistsVideo reports whether the master map holds id.
func (s *Store) ExistsVideo(id string) bool {
	_, ok := s.videos[id]
	return ok
}

// VideoCount returns the master map size, dangling videos included.
func (s *Store) VideoCount() int { return len(s.videos) }

// Persist writes the catalog back to its file. A best-effort backup copy of
// the previous file is left beside it. Videos referenced by no list are
// pruned from the master map and not written.
func (s *Store) Persist() error {
	s.backup()
	s.pruneDangling()

	f, err := os.Create(s.path)
	if err != nil {
		s.log.Errorf("cannot write catalog file at '%s': %v", s.path, err)
		return err
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", s.version)
	fmt.Fprintln(w, videosMarker)
	written := make(map[string]bool, len(s.videos))
	for _, name := range s.order {
		for _, v := range s.lists[name].items {
			if written[v.ID] {
				continue
			}
			written[v.ID] = true
			fmt.Fprintln(w, encodeVideo(v))
		}
	}
	fmt.Fprintln(w, listsMarker)
	for _, name := range s.order {
		fmt.Fprintln(w, encodeList(s.lists[name]))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Store) pruneDangling() {
	for id := range s.videos {
		referenced := false
		for _, name := range s.order {
			if s.lists[name].Contains(id) {
				referenced = true
				break
			}
		}
		if !referenced {
			s.log.Debugf("pruning dangling video '%s'", id)
			delete(s.videos, id)
		}
	}
}

func (s *Store) backup() {
	src, err := os.Open(s.path)
	if err != nil {
		return
	}
	defer src.Close()
	dst, err := os.Create(s.path + BackupExt)
	if err != nil {
		s.log.Warnf("cannot create catalog backup: %v", err)
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		s.log.Warnf("cannot copy catalog backup: %v", err)
	}
}

// EraseAll drops all in-memory data and removes the on-disk file. The
// system lists are recreated empty.
func (s *Store) EraseAll() error {
	s.videos = make(map[string]*Video)
	s.lists = make(map[string]*videoList)
	s.order = nil
	s.addList(&videoList{name: HistoryListName})
	s.addList(&videoList{name: LikedListName})
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Version reads the version header of an arbitrary catalog file. Returns
// -1 when the file cannot be read or the header does not parse.
func Version(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return -1
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return -1
	}
	v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return -1
	}
	return v
}
