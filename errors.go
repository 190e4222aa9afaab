package stickfig

import (
	"errors"
	"fmt"
)

// ErrInvalidCount is returned when the requested number of frames is not a
// positive integer. It is reported before any output is created.
var ErrInvalidCount = errors.New("stickfig: count must be a positive integer")

// FrameError reports a failure while producing or persisting a single frame.
// Frames written before the failure remain on disk.
type FrameError struct {
	Index int    // 1-based frame index, 0 when the failure precedes the first frame
	Path  string // output path involved, if any
	Err   error
}

func (e *FrameError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("stickfig: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("stickfig: frame %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
