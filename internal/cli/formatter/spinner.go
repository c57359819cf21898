package formatter

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Frames cycled while a reflection request is in flight.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a single-line wait indicator until stopped.
type Spinner struct {
	w        io.Writer
	message  string
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSpinner creates a spinner that writes to stdout.
func NewSpinner(message string) *Spinner {
	return NewSpinnerTo(os.Stdout, message)
}

// NewSpinnerTo creates a spinner that writes to w.
func NewSpinnerTo(w io.Writer, message string) *Spinner {
	return &Spinner{
		w:       w,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the animation. Call Stop to end it.
func (s *Spinner) Start() {
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.stop:
			// Erase the line before handing the terminal back.
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(s.w, "\r  %s %s", StyleHeader.Render(frame), Dim(s.message))
		}
	}
}

// Stop ends the animation and blocks until the line is cleared. Safe to
// call more than once.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// StartSpinner starts a spinner and returns its stop function.
func StartSpinner(message string) func() {
	s := NewSpinner(message)
	s.Start()
	return s.Stop
}
