// Package tui renders the animation as a single rewritten terminal line,
// for pipes and terminals where the full-screen hero view is unwanted.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/san-kum/typist/internal/typing"
)

const (
	clearLine  = "\r\033[K"
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// LiveRenderer redraws the current line on every tick that changes the
// visible text. Pause ticks produce no output.
type LiveRenderer struct {
	out   io.Writer
	caret string
	last  string
	ansi  bool
}

// NewLiveRenderer writes to out. With ansi false the line is rewritten
// using only a carriage return and trailing spaces.
func NewLiveRenderer(out io.Writer, caret string, ansi bool) *LiveRenderer {
	return &LiveRenderer{out: out, caret: caret, ansi: ansi}
}

// OnTick draws s. It must be called from a single goroutine.
func (r *LiveRenderer) OnTick(s typing.State) {
	if s.Text == r.last {
		return
	}
	r.render(s.Text)
}

func (r *LiveRenderer) render(text string) {
	var b strings.Builder
	if r.ansi {
		b.WriteString(clearLine)
	} else {
		// overwrite whatever the previous, possibly longer, line left behind
		b.WriteString("\r")
		b.WriteString(strings.Repeat(" ", runewidth.StringWidth(r.last+r.caret)))
		b.WriteString("\r")
	}
	b.WriteString(text)
	b.WriteString(r.caret)
	r.last = text
	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() {
	if r.ansi {
		fmt.Fprint(r.out, hideCursor)
	}
	r.render("")
}

func (r *LiveRenderer) Stop() {
	fmt.Fprintln(r.out)
	if r.ansi {
		fmt.Fprint(r.out, showCursor)
	}
}
