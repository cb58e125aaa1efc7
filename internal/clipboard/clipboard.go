// Package clipboard writes text to the user's clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	atotto "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/zjrosen/stylebook/internal/log"
)

// ErrUnavailable is returned when no clipboard backend can be used.
var ErrUnavailable = errors.New("clipboard not available")

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// Method selects the clipboard backend.
type Method string

const (
	MethodAuto   Method = "auto"   // OSC 52 over SSH/tmux/screen, system clipboard otherwise
	MethodSystem Method = "system" // pbcopy / xclip / wl-copy / Windows API
	MethodOSC52  Method = "osc52"  // terminal escape sequence
	MethodNone   Method = "none"   // disabled
)

// ParseMethod validates a configured method name. Empty means auto.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return MethodAuto, nil
	case MethodAuto, MethodSystem, MethodOSC52, MethodNone:
		return m, nil
	default:
		return "", fmt.Errorf("clipboard method must be \"auto\", \"system\", \"osc52\", or \"none\", got %q", s)
	}
}

// New returns the clipboard for a method. OSC 52 sequences go to out.
func New(method Method, out io.Writer) Clipboard {
	switch method {
	case MethodNone:
		return Nop{}
	case MethodSystem:
		return System{}
	case MethodOSC52:
		return &OSC52{Out: out}
	default:
		if shouldUseOSC52() || atotto.Unsupported {
			return &OSC52{Out: out}
		}
		return System{}
	}
}

// System implements Clipboard using the OS clipboard utilities.
type System struct{}

// Copy copies text to the system clipboard.
func (System) Copy(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}

// OSC52 copies by asking the terminal to set its clipboard, which also
// works across SSH.
type OSC52 struct {
	mu  sync.Mutex
	Out io.Writer
}

// Copy writes the OSC 52 sequence for text, wrapped for tmux or screen
// when running inside one.
func (c *OSC52) Copy(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.Out
	if out == nil {
		out = os.Stderr
	}

	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case os.Getenv("STY") != "":
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	return nil
}

// Nop discards copies. Used for --no-clipboard and tests.
type Nop struct{}

// Copy is a no-op that always succeeds.
func (Nop) Copy(string) error { return nil }

// Recorder keeps every copied text. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	copies []string
	Err    error
}

// Copy records text and returns r.Err.
func (r *Recorder) Copy(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.copies = append(r.copies, text)
	return r.Err
}

// Copies returns the recorded texts in order.
func (r *Recorder) Copies() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.copies...)
}

// Last returns the most recent copy, or "".
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.copies) == 0 {
		return ""
	}
	return r.copies[len(r.copies)-1]
}

// shouldUseOSC52 reports whether the session is remote or multiplexed,
// where the local system clipboard is the wrong target.
func shouldUseOSC52() bool {
	for _, env := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		if os.Getenv(env) != "" {
			log.Debug(log.CatClipboard, "Using OSC 52 clipboard", "env", env)
			return true
		}
	}
	return false
}
