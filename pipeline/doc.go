// Package pipeline turns text into a rendered video file.
//
// A render job resolves its font, lays out and extrudes the text, then
// renders frames into an offscreen surface while an encoder process
// consumes them. Rendering and encoding run concurrently under one
// errgroup: whichever side fails first cancels the other, the encoder
// process is killed, and any partial output file is removed.
//
//	p, err := pipeline.New(registry, pipeline.Config{})
//	id, err := p.Render(ctx, "hello world", pipeline.Options{FontFamily: "Roboto"})
//	// output/<id>.mp4
//
// Every failure is a *JobError; KindOf classifies it.
package pipeline
