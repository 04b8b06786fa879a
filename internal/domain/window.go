package domain

import (
	"errors"
	"time"
)

// ErrEmptyWindow is returned when a generation window has no positive duration.
var ErrEmptyWindow = errors.New("forgefeed: window end must be after start")

// Window is the half-open time range [Start, End) a run generates data for.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Validate() error {
	if !w.End.After(w.Start) {
		return ErrEmptyWindow
	}
	return nil
}

func (w Window) Duration() time.Duration { return w.End.Sub(w.Start) }

// Ticks returns the number of sampling instants a fixed-interval sweep of the
// window produces. Start is included, End is not.
func (w Window) Ticks(interval time.Duration) int {
	if interval <= 0 || !w.End.After(w.Start) {
		return 0
	}
	d := w.End.Sub(w.Start)
	n := int(d / interval)
	if d%interval != 0 {
		n++
	}
	return n
}
