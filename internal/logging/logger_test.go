package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalRouting(t *testing.T) {
	var out, errw bytes.Buffer
	l := &Terminal{Out: &out, Err: &errw, DebugEnabled: false}

	l.Infof("hello %s", "world")
	l.Warnf("careful")
	l.Errorf("boom")
	l.Debugf("hidden")

	if !strings.Contains(out.String(), "[INFO]") || !strings.Contains(out.String(), "hello world") {
		t.Fatalf("info line missing, out=%q", out.String())
	}
	if !strings.Contains(out.String(), "[WARN]") {
		t.Fatalf("warn line missing, out=%q", out.String())
	}
	if !strings.Contains(errw.String(), "[ERROR]") || !strings.Contains(errw.String(), "boom") {
		t.Fatalf("error line missing, err=%q", errw.String())
	}
	if strings.Contains(out.String(), "hidden") {
		t.Fatalf("debug line emitted while disabled, out=%q", out.String())
	}
}

func TestTerminalDebugEnabled(t *testing.T) {
	var out bytes.Buffer
	l := &Terminal{Out: &out, Err: &out, DebugEnabled: true}
	l.Debugf("visible now")
	if !strings.Contains(out.String(), "[DEBUG]") || !strings.Contains(out.String(), "visible now") {
		t.Fatalf("debug line missing, out=%q", out.String())
	}
}
