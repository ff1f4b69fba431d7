package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FacundoAdorno/FLTube/internal/logging"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fltube.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write conf: %v", err)
	}
	return path
}

func TestLoadParsing(t *testing.T) {
	path := writeConf(t, `
# a comment line
STREAM_PLAYER_PATH = /usr/bin/mpv
  STREAM_VIDEO_RESOLUTION=480
EMPTY =
WITH_EQUALS = a=b
this line has no separator
AVOID_INITIAL_VERIFICATIONS = True
`)
	s := Load(path, logging.Nop())

	tests := []struct {
		name string
		def  string
		want string
	}{
		{"STREAM_PLAYER_PATH", "x", "/usr/bin/mpv"},
		{"STREAM_VIDEO_RESOLUTION", "x", "480"},
		{"EMPTY", "x", ""},
		{"WITH_EQUALS", "x", "a=b"},
		{"MISSING", "fallback", "fallback"},
		{"", "fallback", ""},
	}
	for _, tt := range tests {
		if got := s.Property(tt.name, tt.def); got != tt.want {
			t.Fatalf("Property(%q) got=%q, want %q", tt.name, got, tt.want)
		}
	}
	if s.ExistProperty("this line has no separator") {
		t.Fatalf("separator-less line must be skipped")
	}
	if !s.ExistProperty("EMPTY") {
		t.Fatalf("empty-valued property must exist")
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "absent.conf"), logging.Nop())
	if got := s.Property("ANY", "def"); got != "def" {
		t.Fatalf("Property on missing file got=%q, want %q", got, "def")
	}
	if got := s.Shortcut(FocusSearch); got != KeyCtrl+'l' {
		t.Fatalf("defaults must survive a missing file, got=%#x", got)
	}
}

func TestIntProperty(t *testing.T) {
	path := writeConf(t, `
GOOD = 720
BAD = seven-twenty
HUGE = 99999999999999999999
`)
	s := Load(path, logging.Nop())

	tests := []struct {
		name string
		def  int
		want int
	}{
		{"GOOD", 1, 720},
		{"BAD", 360, 360},
		{"HUGE", 360, 360},
		{"MISSING", 42, 42},
	}
	for _, tt := range tests {
		if got := s.IntProperty(tt.name, tt.def); got != tt.want {
			t.Fatalf("IntProperty(%q) got=%d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestBoolProperty(t *testing.T) {
	path := writeConf(t, `
A = True
B = false
C = TRUE
D = yes
`)
	s := Load(path, logging.Nop())

	tests := []struct {
		name string
		def  bool
		want bool
	}{
		{"A", false, true},
		{"B", true, false},
		{"C", false, true},
		{"D", false, false},
		{"D", true, true},
		{"MISSING", true, true},
	}
	for _, tt := range tests {
		if got := s.BoolProperty(tt.name, tt.def); got != tt.want {
			t.Fatalf("BoolProperty(%q, def=%v) got=%v, want %v", tt.name, tt.def, got, tt.want)
		}
	}
}
