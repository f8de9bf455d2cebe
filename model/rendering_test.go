package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, Predator, 100)
	g.Set(1, 0, Prey, 100)
	g.Set(2, 1, Prey, 5)

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Display(g)

	want := gridPosPredator + gridPosPrey + gridPosEmpty + "\n" +
		gridPosEmpty + gridPosEmpty + gridPosPrey + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Clear()

	if !strings.HasPrefix(buf.String(), "\033[") {
		t.Errorf("expected an ANSI escape sequence, got %q", buf.String())
	}
}
