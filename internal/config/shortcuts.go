package config

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/FacundoAdorno/FLTube/internal/logging"
)

// Shortcut identifies one logical keyboard shortcut.
type Shortcut int

const (
	FocusSearch Shortcut = iota + 1
	FocusVideo1
	FocusVideo2
	FocusVideo3
	FocusVideo4
	FocusChannel1
	FocusChannel2
	FocusChannel3
	FocusChannel4
	ShowHelp
)

// Key-code encoding. Modifier masks and the function-key base follow the
// FLTK event constants, so existing configuration files keep working and
// a binding is the arithmetic sum of its parts.
const (
	KeyShift = 0x10000
	KeyCtrl  = 0x40000
	KeyAlt   = 0x80000
	KeyFn    = 0xffbd // F1 = KeyFn+1 .. F12 = KeyFn+12
)

// Sentinels for shortcut lookups and validation.
const (
	NoShortcut      = 0
	InvalidShortcut = -1
	UnknownText     = "Unknown"
)

// shortcutOrder fixes the property application order so conflict detection
// is deterministic.
var shortcutOrder = []Shortcut{
	FocusSearch,
	FocusVideo1, FocusVideo2, FocusVideo3, FocusVideo4,
	FocusChannel1, FocusChannel2, FocusChannel3, FocusChannel4,
	ShowHelp,
}

var shortcutNames = map[Shortcut]string{
	FocusSearch:   "FOCUS_SEARCH",
	FocusVideo1:   "FOCUS_VIDEO_1",
	FocusVideo2:   "FOCUS_VIDEO_2",
	FocusVideo3:   "FOCUS_VIDEO_3",
	FocusVideo4:   "FOCUS_VIDEO_4",
	FocusChannel1: "FOCUS_CHANNEL_1",
	FocusChannel2: "FOCUS_CHANNEL_2",
	FocusChannel3: "FOCUS_CHANNEL_3",
	FocusChannel4: "FOCUS_CHANNEL_4",
	ShowHelp:      "SHOW_HELP",
}

type binding struct {
	code int
	text string
}

// Resolver owns the shortcut binding table: defaults first, then config
// overrides applied through Overwrite.
type Resolver struct {
	bindings map[Shortcut]binding
	log      logging.Logger
}

// NewResolver returns a resolver holding the default bindings.
func NewResolver(log logging.Logger) *Resolver {
	if log == nil {
		log = logging.Nop()
	}
	r := &Resolver{bindings: make(map[Shortcut]binding), log: log}
	r.bindings[FocusSearch] = binding{KeyCtrl + 'l', "Ctrl+l"}
	for i, id := range []Shortcut{FocusVideo1, FocusVideo2, FocusVideo3, FocusVideo4} {
		digit := byte('1' + i)
		r.bindings[id] = binding{KeyCtrl + int(digit), "Ctrl+" + string(digit)}
	}
	for i, id := range []Shortcut{FocusChannel1, FocusChannel2, FocusChannel3, FocusChannel4} {
		digit := byte('1' + i)
		r.bindings[id] = binding{KeyCtrl + KeyShift + int(digit), "Ctrl+Shift+" + string(digit)}
	}
	r.bindings[ShowHelp] = binding{KeyCtrl + '?', "Ctrl+?"}
	return r
}

var (
	fnKeyPattern   = regexp.MustCompile(`^[Ff](1[0-2]|[1-9])$`)
	baseKeyPattern = regexp.MustCompile(`^([a-zA-Z0-9]|[[:punct:]])$`)
)

// IsWellDefined validates a textual shortcut definition and returns its key
// code, or InvalidShortcut when the definition does not follow the grammar:
//
//	Fn                      a bare function key
//	(Ctrl|Alt)+key          one modifier plus a base key
//	(Ctrl|Alt)+(Shift|Alt)+key   two modifiers plus a base key (Alt+Alt is out)
//
// where key is a function key, a letter, a digit or a punctuation character.
// Tokens are trimmed, so "Ctrl + a" is accepted.
func IsWellDefined(def string) int {
	tokens := strings.Split(def, "+")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	switch len(tokens) {
	case 1:
		if code, ok := fnKeyCode(tokens[0]); ok {
			return code
		}
	case 2:
		first, ok := modifierCode(tokens[0])
		if !ok {
			return InvalidShortcut
		}
		base, ok := baseKeyCode(tokens[1])
		if !ok {
			return InvalidShortcut
		}
		return first + base
	case 3:
		first, ok := modifierCode(tokens[0])
		if !ok {
			return InvalidShortcut
		}
		var second int
		switch tokens[1] {
		case "Shift":
			second = KeyShift
		case "Alt":
			if first == KeyAlt {
				return InvalidShortcut
			}
			second = KeyAlt
		default:
			return InvalidShortcut
		}
		base, ok := baseKeyCode(tokens[2])
		if !ok {
			return InvalidShortcut
		}
		return first + second + base
	}
	return InvalidShortcut
}

func modifierCode(tok string) (int, bool) {
	switch tok {
	case "Ctrl":
		return KeyCtrl, true
	case "Alt":
		return KeyAlt, true
	}
	return 0, false
}

func fnKeyCode(tok string) (int, bool) {
	m := fnKeyPattern.FindStringSubmatch(tok)
	if m == nil {
		return 0, false
	}
	n, _ := strconv.Atoi(m[1])
	return KeyFn + n, true
}

func baseKeyCode(tok string) (int, bool) {
	if code, ok := fnKeyCode(tok); ok {
		return code, true
	}
	if baseKeyPattern.MatchString(tok) {
		return int(tok[0]), true
	}
	return 0, false
}

// Overwrite applies shortcut properties from the configuration on top of
// the defaults. Invalid definitions and key codes already bound to another
// shortcut are reported and skipped, keeping the existing binding.
func (r *Resolver) Overwrite(cfg *Store) {
	for _, id := range shortcutOrder {
		name := shortcutNames[id]
		def := cfg.Property(name, "")
		if def == "" {
			continue
		}
		code := IsWellDefined(def)
		if code == InvalidShortcut {
			r.log.Warnf("shortcut '%s': definition '%s' is invalid, keeping '%s'", name, def, r.bindings[id].text)
			continue
		}
		if r.inUse(code) {
			r.log.Warnf("shortcut '%s': key combination '%s' is already in use, keeping '%s'", name, def, r.bindings[id].text)
			continue
		}
		r.bindings[id] = binding{code, def}
	}
}

func (r *Resolver) inUse(code int) bool {
	for _, b := range r.bindings {
		if b.code == code {
			return true
		}
	}
	return false
}

// Shortcut returns the key code bound to id, or NoShortcut when id is not
// a known shortcut.
func (r *Resolver) Shortcut(id Shortcut) int {
	if b, ok := r.bindings[id]; ok {
		return b.code
	}
	return NoShortcut
}

// ShortcutByName resolves a shortcut property name to its key code.
func (r *Resolver) ShortcutByName(name string) int {
	for id, n := range shortcutNames {
		if n == name {
			return r.Shortcut(id)
		}
	}
	return NoShortcut
}

// ShortcutText returns the printable binding for id, or UnknownText when id
// is not a known shortcut.
func (r *Resolver) ShortcutText(id Shortcut) string {
	if b, ok := r.bindings[id]; ok {
		return b.text
	}
	return UnknownText
}
