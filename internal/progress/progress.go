// internal/progress/progress.go

// Package progress is a live completed/failed counter for batch jobs. One
// goroutine owns the output writer; workers report through JobDone, so the
// meter is the only cross-worker aggregation point and needs no locking.
package progress

import (
	"fmt"
	"io"
)

type Meter struct {
	w    io.Writer
	errs chan error
	done chan struct{}
}

// New starts the meter goroutine. Close must be called exactly once after
// all JobDone calls have been made.
func New(w io.Writer, total int) *Meter {
	p := &Meter{w: w, errs: make(chan error), done: make(chan struct{})}
	go func() {
		completed := 0
		errorCount := 0
		for err := range p.errs {
			if err == nil {
				completed++
			} else {
				errorCount++
				fmt.Fprintf(p.w, "\r%s\n", err)
			}
			ratio := 0.0
			if total > 0 {
				ratio = 100.0 * float64(completed) / float64(total)
			}
			fmt.Fprintf(p.w, "\r%d of %d jobs complete (%0.2f%% done, %d errors)",
				completed, total, ratio, errorCount)
		}
		fmt.Fprintln(p.w)
		p.done <- struct{}{}
	}()
	return p
}

// JobDone records one finished job; a nil error counts as a success.
func (p *Meter) JobDone(err error) {
	if p == nil {
		return
	}
	p.errs <- err
}

func (p *Meter) Close() {
	if p == nil {
		return
	}
	close(p.errs)
	<-p.done
}
