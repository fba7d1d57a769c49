package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const spinnerFrames = `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏`

const (
	hideCursorSeq = "\033[?25l"
	showCursorSeq = "\033[?25h"
)

// Spinner prints an animated activity indicator after a message
// until it gets stopped. A Spinner can be started again after Stop.
type Spinner struct {
	// StopMsg is printed once the spinner line is cleared on Stop.
	StopMsg string

	mu         sync.Mutex
	w          io.Writer
	msg        string
	interval   time.Duration
	hideCursor bool
	line       string
	quit       chan struct{}
	exited     chan struct{}
}

// NewSpinner returns a spinner writing to stderr, advancing every d.
func NewSpinner(msg string, d time.Duration, hideCursor bool) *Spinner {
	return &Spinner{
		w:          os.Stderr,
		msg:        msg,
		interval:   d,
		hideCursor: hideCursor,
	}
}

// Start shows the spinner. Calling it on a running spinner has no effect.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quit != nil {
		return
	}
	if s.cursorHidden() {
		fmt.Fprint(s.w, hideCursorSeq)
	}
	s.quit = make(chan struct{})
	s.exited = make(chan struct{})
	go s.loop(s.quit, s.exited)
}

func (s *Spinner) loop(quit, exited chan struct{}) {
	defer close(exited)

	interval := s.interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	frames := []rune(spinnerFrames)
	for i := 0; ; i = (i + 1) % len(frames) {
		s.mu.Lock()
		s.line = fmt.Sprintf("\r%s%s %c%s", s.msg, SuccessColor, frames[i], DefaultColor)
		fmt.Fprint(s.w, s.line)
		s.mu.Unlock()

		select {
		case <-quit:
			return
		case <-t.C:
		}
	}
}

// SetMessage replaces the text shown in front of the spinner.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.msg = msg
}

// SetWriter redirects the spinner output.
func (s *Spinner) SetWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.w = w
}

// Stop waits for the running frame to be printed, clears the spinner line
// and prints StopMsg. Nothing gets written by the spinner after Stop returns.
func (s *Spinner) Stop() {
	s.mu.Lock()
	quit, exited := s.quit, s.exited
	s.quit, s.exited = nil, nil
	s.mu.Unlock()

	if quit == nil {
		return
	}
	close(quit)
	<-exited

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLine()
	s.restoreCursor()
	if s.StopMsg != "" {
		fmt.Fprint(s.w, s.StopMsg)
	}
}

// RestoreCursor makes the terminal cursor visible again.
func (s *Spinner) RestoreCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.restoreCursor()
}

func (s *Spinner) restoreCursor() {
	if s.cursorHidden() {
		fmt.Fprint(s.w, showCursorSeq)
	}
}

func (s *Spinner) cursorHidden() bool {
	return s.hideCursor && runtime.GOOS != "windows"
}

// clearLine erases the last printed spinner line. The caller holds the lock.
func (s *Spinner) clearLine() {
	if s.line == "" {
		return
	}
	n := utf8.RuneCountInString(s.line)
	if runtime.GOOS == "windows" {
		fmt.Fprint(s.w, "\r"+strings.Repeat(" ", n)+"\r")
	} else {
		// "\033[K" is needed by the macOS Terminal.
		for _, c := range []string{"\b", "\127", "\b", "\033[K"} {
			fmt.Fprint(s.w, strings.Repeat(c, n))
		}
		fmt.Fprint(s.w, "\r\033[K")
	}
	s.line = ""
}
