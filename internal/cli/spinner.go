package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var styleSpinner = lipgloss.NewStyle().Foreground(colorCyan)

// Spinner animates a label on one terminal line until stopped or until its
// context ends. A progress counter may follow the label.
type Spinner struct {
	w      io.Writer
	ctx    context.Context
	cancel context.CancelFunc
	ended  chan struct{}
	once   sync.Once

	mu          sync.Mutex
	label       string
	done, total int
	drawn       int // widest line written, for clearing
}

// newSpinner returns a stderr spinner that ends with ctx.
func newSpinner(ctx context.Context, label string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{w: os.Stderr, ctx: ctx, cancel: cancel, ended: make(chan struct{}), label: label}
}

// Progress sets the counter shown as "(done/total)".
func (s *Spinner) Progress(done, total int) {
	s.mu.Lock()
	s.done, s.total = done, total
	s.mu.Unlock()
}

// Message is the text currently drawn after the frame.
func (s *Spinner) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message()
}

func (s *Spinner) message() string {
	if s.total == 0 {
		return s.label
	}
	return fmt.Sprintf("%s (%d/%d)", s.label, s.done, s.total)
}

// Start draws frames in the background.
func (s *Spinner) Start() {
	go func() {
		defer close(s.ended)
		tick := time.NewTicker(spinnerInterval)
		defer tick.Stop()
		for frame := 0; ; frame++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-tick.C:
				s.draw(spinnerFrames[frame%len(spinnerFrames)])
			}
		}
	}()
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.message()
	s.drawn = max(s.drawn, len(msg)+2)
	fmt.Fprintf(s.w, "\r%s %s", styleSpinner.Render(frame), styleDim.Render(msg))
}

func (s *Spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.drawn))
}

// Stop ends the animation and clears the line. It must follow Start;
// calling it again is a no-op.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.ended
	})
}

// Cancelled reports whether the spinner's context has ended.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
