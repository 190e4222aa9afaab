// Package stickfig generates synthetic, labeled stick-figure images for
// exercising image-processing tools.
//
// # Overview
//
// Every frame shows the same figure in a random pose: a gray torso, a white
// head, eight limb segments in fixed colors and red joint markers on a black
// 1024x1024 canvas, optionally with the frame number on the right. The
// segment colors never change between frames or runs, so a tool under test
// can rely on "yellow is the left lower arm" for the whole corpus.
//
// # Quick Start
//
//	g := stickfig.New(stickfig.WithOutputDir("generated_images"))
//	job, err := g.Start(ctx, 150)
//	if err != nil {
//	    return err // stickfig.ErrInvalidCount
//	}
//	for ev := range job.Events() {
//	    fmt.Println(ev.Kind, ev.Completed, ev.Total)
//	}
//	return job.Wait()
//
// # Pipeline
//
// Each frame goes through three stages:
//   - [Sampler] draws an [AngleSet] within fixed per-limb ranges
//   - [Solve] turns the angles and a [LengthConfig] into a [JointMap]
//   - [Renderer] rasterizes the joints with github.com/gogpu/gg
//
// The frame is then written as image_NNNN.png, numbered from 1 without gaps.
//
// # Coordinate System
//
// Canvas coordinates: origin at top-left, X right, Y down. Joint angles are
// measured from the downward vertical, so an angle of 0 points a limb
// straight down and positive angles swing it toward +X. Lower-limb angles are
// relative to the upper limb.
package stickfig
