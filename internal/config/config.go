// Package config parses the flat `key = value` configuration file and
// resolves the keyboard shortcut bindings declared in it.
package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/FacundoAdorno/FLTube/internal/logging"
)

// Well-known property names.
const (
	PropLocalePath            = "LOCALE_PATH"
	PropStreamPlayerPath      = "STREAM_PLAYER_PATH"
	PropStreamPlayerParams    = "STREAM_PLAYER_PARAMS"
	PropStreamPlayerLiveExtra = "STREAM_PLAYER_EXTRA_PARAMS_FOR_LIVE"
	PropResourcesPath         = "RESOURCES_PATH"
	PropStreamResolution      = "STREAM_VIDEO_RESOLUTION"
	PropAvoidInitialChecks    = "AVOID_INITIAL_VERIFICATIONS"
	PropAlternativeStream     = "ENABLE_ALTERNATIVE_STREAM_METHOD"
)

// Store holds the parsed properties and the resolved shortcut table.
type Store struct {
	props     map[string]string
	shortcuts *Resolver
	log       logging.Logger
}

// Load parses the configuration file at path. A missing or unreadable file
// is not an error: every lookup on the returned Store falls back to its
// default. Shortcut defaults are installed first and then overridden by any
// shortcut properties found in the file.
func Load(path string, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	s := &Store{props: make(map[string]string), log: log}
	f, err := os.Open(path)
	if err != nil {
		log.Warnf("cannot read configuration file at '%s', using defaults", path)
	} else {
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			key, value, found := strings.Cut(line, "=")
			if !found {
				continue
			}
			s.props[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	s.shortcuts = NewResolver(log)
	s.shortcuts.Overwrite(s)
	return s
}

// ExistProperty reports whether the property was present in the file.
func (s *Store) ExistProperty(name string) bool {
	_, ok := s.props[name]
	return ok
}

// Property returns the raw value of a property, or def when absent.
// An empty property name always resolves to the empty string.
func (s *Store) Property(name, def string) string {
	if name == "" {
		return ""
	}
	if v, ok := s.props[name]; ok {
		return v
	}
	return def
}

// IntProperty returns a property parsed as an integer. Values that do not
// parse are reported and the default is returned.
func (s *Store) IntProperty(name string, def int) int {
	v, ok := s.props[name]
	if !ok || name == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		s.log.Errorf("property '%s': cannot convert '%s' to a number, using default %d", name, v, def)
		return def
	}
	return n
}

// BoolProperty returns a property parsed as a boolean. Only the literals
// true/false (any case) are accepted; anything else yields the default.
func (s *Store) BoolProperty(name string, def bool) bool {
	v, ok := s.props[name]
	if !ok || name == "" {
		return def
	}
	switch {
	case strings.EqualFold(v, "true"):
		return true
	case strings.EqualFold(v, "false"):
		return false
	}
	return def
}

// Shortcut returns the key code bound to a shortcut identity.
func (s *Store) Shortcut(id Shortcut) int { return s.shortcuts.Shortcut(id) }

// ShortcutByName returns the key code bound to a shortcut property name.
func (s *Store) ShortcutByName(name string) int { return s.shortcuts.ShortcutByName(name) }

// ShortcutText returns the printable form of a shortcut binding.
func (s *Store) ShortcutText(id Shortcut) string { return s.shortcuts.ShortcutText(id) }

// Shortcuts exposes the underlying resolver.
func (s *Store) Shortcuts() *Resolver { return s.shortcuts }
