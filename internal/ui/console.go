package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/saltlinegames/deepcast/internal/minigame"
)

// Console owns terminal I/O. A single goroutine reads lines from the
// input stream and feeds a channel, so the same stream serves both
// blocking prompts and the non-blocking per-tick minigame poll.
type Console struct {
	out   io.Writer
	lines chan string
	done  chan struct{}
}

// NewConsole starts the reader goroutine over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out:   out,
		lines: make(chan string, 8),
		done:  make(chan struct{}),
	}
	go c.readLoop(in)
	return c
}

func (c *Console) readLoop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case c.lines <- scanner.Text():
		case <-c.done:
			return
		}
	}
	close(c.lines)
}

// Close stops the reader goroutine.
func (c *Console) Close() {
	close(c.done)
}

// ReadLine blocks until the player enters a line. Returns false when the
// input stream is closed.
func (c *Console) ReadLine() (string, bool) {
	line, ok := <-c.lines
	return strings.TrimSpace(line), ok
}

// Prompt prints a prompt and reads the response.
func (c *Console) Prompt(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	return c.ReadLine()
}

// Poll implements minigame.Input: a pending empty line is the strike
// signal, "f" flees, anything else (or nothing pending) is ignored.
func (c *Console) Poll() minigame.Signal {
	select {
	case line, ok := <-c.lines:
		if !ok {
			return minigame.SignalFlee
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "f", "flee":
			return minigame.SignalFlee
		default:
			return minigame.SignalStrike
		}
	default:
		return minigame.SignalNone
	}
}

// Printf writes formatted output to the terminal.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line to the terminal.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}
