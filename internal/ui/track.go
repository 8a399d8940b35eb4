package ui

import (
	"io"
	"strings"
)

// Track renders minigame frames in place on one terminal line. It
// implements minigame.Display.
type Track struct {
	out io.Writer
}

// NewTrack creates a track renderer over the given writer.
func NewTrack(out io.Writer) *Track {
	return &Track{out: out}
}

// Frame draws one minigame frame: the catch zone as = and the pointer as
// |, redrawn in place with a carriage return.
func (t *Track) Frame(pointer, zoneStart, zoneEnd, width int) {
	var b strings.Builder
	b.WriteString("\r[")
	for i := 0; i < width; i++ {
		switch {
		case i == pointer:
			b.WriteString(colorBold + "|" + colorReset)
		case i >= zoneStart && i <= zoneEnd:
			b.WriteString(colorGreen + "=" + colorReset)
		default:
			b.WriteString("-")
		}
	}
	b.WriteString("]")
	io.WriteString(t.out, b.String())
}

// Done ends the in-place line after the attempt finishes.
func (t *Track) Done() {
	io.WriteString(t.out, "\n")
}
