package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52Backend asks the terminal to set the clipboard with an OSC 52 escape sequence
type OSC52Backend struct {
	open   func() (io.WriteCloser, error)
	getenv func(string) string
}

// NewOSC52Backend writes sequences to the writer returned by open; nil opens /dev/tty
func NewOSC52Backend(open func() (io.WriteCloser, error)) *OSC52Backend {
	if open == nil {
		open = func() (io.WriteCloser, error) {
			return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		}
	}
	return &OSC52Backend{open: open, getenv: os.Getenv}
}

// Write emits the sequence for the target, wrapped for tmux or screen when detected
func (b *OSC52Backend) Write(target Target, text string) error {
	seq := osc52.New(text)
	switch target {
	case TargetClipboard:
	case TargetPrimary:
		seq = seq.Primary()
	default:
		return ErrUnsupportedTarget
	}

	term := b.getenv("TERM")
	switch {
	case b.getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case b.getenv("STY") != "" || strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}

	w, err := b.open()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer w.Close()

	if _, err := seq.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	return nil
}
