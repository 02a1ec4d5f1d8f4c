//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath = "emojipick_e2e"

// Input sequences as a terminal sends them
const (
	KeyEsc   = "\x1b"
	KeyCtrlC = "\x03"
	KeyF1    = "\x1bOP"
	KeyQuit  = "q"
)

const (
	termRows = 40
	termCols = 120
)

// testConfig keeps copies off the host clipboard helpers' OSC 52 path
const testConfig = `version = 1

[clipboard]
targets = ["clipboard"]
osc52 = "never"
`

// ansiRe strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?<>=]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07\x1b]*(?:\x07|\x1b\\))|` +
		`(?:\x1b[\(\)][A-Za-z0-9])|` +
		`(?:\x1b[=>])|` +
		`\r`,
)

// session is one emojipick process running on a pseudo terminal
type session struct {
	t    *testing.T
	cmd  *exec.Cmd
	pty  *os.File
	home string

	mu  sync.Mutex
	out bytes.Buffer

	exited chan error
}

// startSession runs the binary in an isolated HOME with the test config
func startSession(t *testing.T, args ...string) *session {
	t.Helper()

	home := t.TempDir()
	configPath := filepath.Join(home, "config.toml")
	if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := exec.Command(binPath, append([]string{
		"--config", configPath,
		"--log-file", filepath.Join(home, "emojipick.log"),
	}, args...)...)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"LANG=C.UTF-8",
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
		"XDG_CACHE_HOME="+filepath.Join(home, ".cache"),
		"DISPLAY=",
		"WAYLAND_DISPLAY=",
	)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: termRows, Cols: termCols})
	if err != nil {
		t.Fatalf("start %s: %v", binPath, err)
	}

	s := &session{t: t, cmd: cmd, pty: f, home: home, exited: make(chan error, 1)}
	go s.capture()
	go func() { s.exited <- cmd.Wait() }()
	t.Cleanup(s.stop)
	return s
}

func (s *session) capture() {
	buf := make([]byte, 8192)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (s *session) stop() {
	_ = s.pty.Close()
	select {
	case <-s.exited:
		return
	case <-time.After(time.Second):
	}
	_ = s.cmd.Process.Kill()
	<-s.exited
}

func (s *session) send(keys string) {
	s.t.Helper()
	if _, err := s.pty.Write([]byte(keys)); err != nil {
		s.t.Fatalf("write %q: %v", keys, err)
	}
}

// typeText sends one rune per write so every keystroke is its own message
func (s *session) typeText(text string) {
	s.t.Helper()
	for _, r := range text {
		s.send(string(r))
		time.Sleep(20 * time.Millisecond)
	}
}

// click sends an SGR left press and release at the zero-based cell (x, y)
func (s *session) click(x, y int) {
	s.t.Helper()
	s.send(fmt.Sprintf("\x1b[<0;%d;%dM\x1b[<0;%d;%dm", x+1, y+1, x+1, y+1))
}

// mark drops everything captured so far; later waits only see new frames
func (s *session) mark() {
	s.mu.Lock()
	s.out.Reset()
	s.mu.Unlock()
}

// plain returns the captured output without escape sequences
func (s *session) plain() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ansiRe.ReplaceAllString(s.out.String(), "")
}

// waitFor polls the captured output until pred holds or the timeout passes
func (s *session) waitFor(pred func(string) bool, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		screen := s.plain()
		if pred(screen) {
			return nil
		}
		if time.Now().After(deadline) {
			if len(screen) > 4096 {
				screen = screen[len(screen)-4096:]
			}
			return fmt.Errorf("timed out after %s\n--- tail ---\n%s", timeout, screen)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// see waits up to three seconds for text to be drawn
func (s *session) see(text string) error {
	return s.waitFor(func(screen string) bool { return strings.Contains(screen, text) }, 3*time.Second)
}

// ready waits for the search box
func (s *session) ready() error {
	return s.waitFor(func(screen string) bool { return strings.Contains(screen, "Search:") }, 5*time.Second)
}

func (s *session) waitExit(timeout time.Duration) error {
	select {
	case err := <-s.exited:
		s.exited <- err // let stop see it too
		return err
	case <-time.After(timeout):
		return fmt.Errorf("process still running after %s", timeout)
	}
}
