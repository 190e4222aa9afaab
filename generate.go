package stickfig

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/gogpu/stickfig/label"
)

// EventKind distinguishes progress notifications from the terminal one.
type EventKind int

const (
	// EventProgress reports that one more frame is fully written.
	EventProgress EventKind = iota
	// EventDone is sent once after the last frame.
	EventDone
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event is a generation notification. Progress events carry the number of
// frames completed so far, 1..Total in strictly increasing order, and the
// path of the frame just written.
type Event struct {
	Kind      EventKind
	Completed int
	Total     int
	Path      string
}

// eventBuffer bounds how far the generator may run ahead of a slow consumer.
const eventBuffer = 16

// Generator produces numbered stick-figure frames on disk.
type Generator struct {
	opts options
}

// New creates a Generator. Without options it writes labeled frames to
// DefaultOutputDir with a random seed.
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{opts: o}
}

// OutputDir returns the directory frames are written to.
func (g *Generator) OutputDir() string {
	return g.opts.outputDir
}

// ParseCount converts user input into a frame count. Anything other than
// a positive decimal integer yields ErrInvalidCount.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, s)
	}
	if err := validateCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

func validateCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return nil
}

// Run generates count frames sequentially and blocks until it finishes.
//
// After each frame is written a progress event is sent on events, and after
// the last one a single EventDone. events may be nil. An invalid count is
// rejected before anything is created on disk.
//
// Cancellation of ctx is observed between frames only: the frame being
// rendered is completed and kept, and Run returns ctx.Err() without sending
// EventDone. A filesystem or rendering failure stops the run with a
// *FrameError; frames already written are left in place.
func (g *Generator) Run(ctx context.Context, count int, events chan<- Event) error {
	if err := validateCount(count); err != nil {
		return err
	}
	return g.run(ctx, count, events)
}

// Start validates count and runs the generation loop in a new goroutine.
// The caller must drain Job.Events until it is closed, or cancel ctx.
func (g *Generator) Start(ctx context.Context, count int) (*Job, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}
	j := &Job{
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(j.done)
		defer close(j.events)
		j.err = g.run(ctx, count, j.events)
	}()
	return j, nil
}

func (g *Generator) run(ctx context.Context, count int, events chan<- Event) error {
	o := g.opts
	log := Logger().With("run", uuid.NewString())

	if err := os.MkdirAll(o.outputDir, 0o755); err != nil {
		return &FrameError{Path: o.outputDir, Err: err}
	}

	seed := o.seed
	if !o.seeded {
		seed = rand.Uint64()
	}

	var face label.Face
	if o.showIndex {
		face = label.Resolve(o.fontPaths, LabelSize)
		defer func() { _ = face.Close() }()
	}

	var (
		renderer = NewRenderer(face)
		sampler  = NewSampler(seed)
		lengths  = DefaultLengths()
		colors   = DefaultColors()
	)

	log.Info("stickfig: generation started",
		"count", count, "dir", o.outputDir, "seed", seed, "show_index", o.showIndex)

	for i := 1; i <= count; i++ {
		if err := ctx.Err(); err != nil {
			log.Info("stickfig: generation cancelled", "completed", i-1, "count", count)
			return err
		}

		angles := sampler.Sample()
		joints := Solve(o.root, lengths, angles)

		frame, err := renderer.Render(joints, lengths, colors, o.showIndex, i)
		if err != nil {
			return &FrameError{Index: i, Path: filepath.Join(o.outputDir, FrameFilename(i)), Err: err}
		}
		path, err := frame.Save(o.outputDir)
		if err != nil {
			log.Error("stickfig: frame not written", "index", i, "path", path, "err", err)
			return &FrameError{Index: i, Path: path, Err: err}
		}
		log.Debug("stickfig: frame written", "index", i, "path", path, "angles", angles[:])

		if err := send(ctx, events, Event{Kind: EventProgress, Completed: i, Total: count, Path: path}); err != nil {
			return err
		}
	}

	log.Info("stickfig: generation completed", "count", count, "dir", o.outputDir)
	return send(ctx, events, Event{Kind: EventDone, Completed: count, Total: count})
}

// send delivers ev, preferring delivery over cancellation when the
// consumer is ready.
func send(ctx context.Context, events chan<- Event, ev Event) error {
	if events == nil {
		return nil
	}
	select {
	case events <- ev:
		return nil
	default:
	}
	select {
	case events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Job is a generation run executing in the background.
type Job struct {
	events chan Event
	done   chan struct{}
	err    error
}

// Events returns the job's notifications. The channel is closed when the
// run ends, whether it completed, failed or was cancelled; a run completed
// successfully iff EventDone was received.
func (j *Job) Events() <-chan Event {
	return j.events
}

// Wait blocks until the run ends and returns its error.
func (j *Job) Wait() error {
	<-j.done
	return j.err
}
