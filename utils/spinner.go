package utils

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []rune(`-\|/`)

// Spinner prints a rotating process indicator until stopped.
type Spinner struct {
	w        io.Writer
	delay    time.Duration
	stopChan chan struct{}
	done     sync.WaitGroup
}

// NewSpinner returns a Spinner writing to w every delay.
func NewSpinner(w io.Writer, delay time.Duration) *Spinner {
	return &Spinner{w: w, delay: delay}
}

// Start starts the process indicator.
func (s *Spinner) Start(message string) {
	s.stopChan = make(chan struct{})
	s.done.Add(1)

	go func() {
		defer s.done.Done()
		for i := 0; ; i++ {
			frame := SuccessStyle.Render(string(spinnerFrames[i%len(spinnerFrames)]))
			fmt.Fprintf(s.w, "\r%s %s", message, frame)
			select {
			case <-s.stopChan:
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-time.After(s.delay):
			}
		}
	}()
}

// Stop stops the process indicator and clears its line. It returns once the
// indicator is no longer writing.
func (s *Spinner) Stop() {
	if s.stopChan == nil {
		return
	}
	close(s.stopChan)
	s.done.Wait()
	s.stopChan = nil
}
