// Command stickgen writes a corpus of numbered stick-figure test images.
//
// Usage:
//
//	stickgen [-count 150] [-numbers=true] [-progress=true] [-out generated_images] [-seed N] [-v]
//
// Interrupting the command stops it after the frame in progress; frames
// already written are kept.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/stickfig"
)

const (
	exitFailure     = 1
	exitInvalidArgs = 2
	exitInterrupted = 130
)

func main() {
	var (
		count    = flag.String("count", "150", "number of images to generate")
		numbers  = flag.Bool("numbers", true, "draw the image number on each image")
		progress = flag.Bool("progress", true, "report every generated image")
		out      = flag.String("out", stickfig.DefaultOutputDir, "output `directory`")
		seed     = flag.Uint64("seed", 0, "random seed for reproducible poses (random when unset)")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()
	log.SetFlags(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	stickfig.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := []stickfig.Option{
		stickfig.WithOutputDir(*out),
		stickfig.WithShowIndex(*numbers),
	}
	if flagSet("seed") {
		opts = append(opts, stickfig.WithSeed(*seed))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, stickfig.New(opts...), *count, *progress, os.Stdout))
}

// run parses the requested count, drives one generation job and reports its
// progress to w. It returns the process exit code; invalid input is rejected
// before anything is written.
func run(ctx context.Context, g *stickfig.Generator, countArg string, showProgress bool, w io.Writer) int {
	p := message.NewPrinter(language.English)

	count, err := stickfig.ParseCount(countArg)
	if err != nil {
		log.Printf("Invalid input: please enter a positive integer (%v)", err)
		return exitInvalidArgs
	}

	job, err := g.Start(ctx, count)
	if err != nil {
		log.Printf("Invalid input: %v", err)
		return exitInvalidArgs
	}
	p.Fprintf(w, "Generating %d images…\n", count)

	done := false
	for ev := range job.Events() {
		switch ev.Kind {
		case stickfig.EventProgress:
			if showProgress {
				p.Fprintf(w, "Generated %d of %d images…\n", ev.Completed, ev.Total)
			}
		case stickfig.EventDone:
			done = true
		}
	}

	err = job.Wait()
	switch {
	case errors.Is(err, context.Canceled):
		log.Printf("Generation interrupted; images already written remain in %s", g.OutputDir())
		return exitInterrupted
	case err != nil:
		log.Printf("Generation failed: %v", err)
		return exitFailure
	case !done:
		log.Printf("Generation ended without completing")
		return exitFailure
	}
	fmt.Fprintln(w, "Generation completed.")
	return 0
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
