package main

import (
	"testing"

	"github.com/FacundoAdorno/FLTube/internal/status"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args       []string
		wantStatus status.Code
		wantConfig string
		wantDebug  bool
	}{
		{nil, status.OK, "", false},
		{[]string{"--debug"}, status.OK, "", true},
		{[]string{"--config=/tmp/x.conf", "--debug"}, status.OK, "/tmp/x.conf", true},
		{[]string{"--config="}, status.InvalidCmdParam, "", false},
		{[]string{"--bogus"}, status.InvalidCmdParam, "", false},
		{[]string{"positional"}, status.InvalidCmdParam, "", false},
	}
	for _, tt := range tests {
		opts, st := parseArgs(tt.args)
		if st != tt.wantStatus {
			t.Fatalf("parseArgs(%v) status got=%v, want %v", tt.args, st, tt.wantStatus)
		}
		if st != status.OK {
			continue
		}
		if opts.configPath != tt.wantConfig || opts.debug != tt.wantDebug {
			t.Fatalf("parseArgs(%v) got=%+v", tt.args, opts)
		}
	}
}

func TestParseArgsHelpAndVersion(t *testing.T) {
	opts, st := parseArgs([]string{"--help", "--version"})
	if st != status.OK || !opts.showHelp || !opts.showVersion {
		t.Fatalf("parseArgs got=%+v status=%v", opts, st)
	}
}

func TestCatalogVersion(t *testing.T) {
	if got := catalogVersion(); got != 22 {
		t.Fatalf("catalogVersion got=%d, want 22", got)
	}
}
