package stickfig

import "github.com/gogpu/stickfig/label"

// DefaultOutputDir is the directory frames are written to unless
// WithOutputDir is given.
const DefaultOutputDir = "generated_images"

// Option configures a Generator during creation.
//
// Example:
//
//	g := stickfig.New(
//	    stickfig.WithOutputDir("out"),
//	    stickfig.WithShowIndex(false),
//	    stickfig.WithSeed(42),
//	)
type Option func(*options)

// options holds optional configuration for Generator creation.
type options struct {
	outputDir string
	showIndex bool
	seed      uint64
	seeded    bool
	fontPaths []string
	root      Point
}

func defaultOptions() options {
	return options{
		outputDir: DefaultOutputDir,
		showIndex: true,
		fontPaths: label.DefaultPaths(),
		root:      DefaultRoot,
	}
}

// WithOutputDir sets the directory frames are written to. It is created on
// the first run if missing.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		o.outputDir = dir
	}
}

// WithShowIndex controls whether each frame carries its index label.
func WithShowIndex(show bool) Option {
	return func(o *options) {
		o.showIndex = show
	}
}

// WithSeed makes pose sampling reproducible. Without it every run draws a
// fresh random seed, which is logged.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithFontPaths replaces the font files probed for the index label.
// An empty list goes straight to the embedded font.
func WithFontPaths(paths ...string) Option {
	return func(o *options) {
		o.fontPaths = paths
	}
}

// WithRoot moves the figure's hip center.
func WithRoot(p Point) Option {
	return func(o *options) {
		o.root = p
	}
}
