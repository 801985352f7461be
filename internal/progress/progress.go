// Package progress renders a single-line progress bar on a terminal
package progress

import (
	"fmt"
	"io"
	"strings"
)

const (
	barWidth  = 30
	nameWidth = 40
)

// Bar redraws "[####------] 3/10 name" in place with a carriage return
type Bar struct {
	out     io.Writer
	total   int
	current int
	enabled bool
	drawn   bool
}

// New creates a bar for total steps. A nil or disabled bar swallows updates.
func New(out io.Writer, total int, enabled bool) *Bar {
	return &Bar{out: out, total: total, enabled: enabled && out != nil}
}

// Advance moves the bar one step and shows name as the current item
func (b *Bar) Advance(name string) {
	if b == nil {
		return
	}
	b.current++
	if !b.enabled {
		return
	}
	fmt.Fprint(b.out, "\r"+b.render(name))
	b.drawn = true
}

// Finish ends the progress line so later output starts on a fresh line
func (b *Bar) Finish() {
	if b == nil || !b.enabled || !b.drawn {
		return
	}
	fmt.Fprintln(b.out)
	b.drawn = false
}

// Current returns the number of completed steps
func (b *Bar) Current() int {
	if b == nil {
		return 0
	}
	return b.current
}

func (b *Bar) render(name string) string {
	filled := barWidth
	if b.total > 0 && b.current < b.total {
		filled = b.current * barWidth / b.total
	}

	if runes := []rune(name); len(runes) > nameWidth {
		name = "..." + string(runes[len(runes)-(nameWidth-3):])
	}

	return fmt.Sprintf("[%s%s] %d/%d %-*s",
		strings.Repeat("#", filled),
		strings.Repeat("-", barWidth-filled),
		b.current, b.total,
		nameWidth, name)
}
