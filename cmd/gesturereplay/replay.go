package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/gesture/preview"
	"github.com/gogpu/gesture/script"
)

func doReplay(path, framesDir string, samples, jobs int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	s, err := script.Load(f)
	f.Close()
	if err != nil {
		return err
	}

	rec, err := script.Play(context.Background(), s)
	if err != nil {
		return err
	}

	frames := rec.Sample(samples)
	fmt.Printf("session %s: %d events, %d frames\n", rec.SessionID, len(s.Events), len(rec.Frames))
	for _, fr := range frames {
		fmt.Printf("%10v  %v\n", fr.At, fr.Transform)
	}
	fmt.Printf("final       %v (phase %v)\n", rec.Final, rec.Session.Phase())

	if framesDir == "" {
		return nil
	}
	if err := os.MkdirAll(framesDir, 0o755); err != nil {
		return err
	}
	return exportFrames(rec, frames, framesDir, jobs)
}

// exportFrames renders each frame on its own canvas, jobs at a time.
func exportFrames(rec *script.Recording, frames []script.Frame, dir string, jobs int) error {
	var group errgroup.Group
	if jobs > 0 {
		group.SetLimit(jobs)
	}
	for i, fr := range frames {
		group.Go(func() error {
			out := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))
			if err := renderFrame(rec, fr, out); err != nil {
				fmt.Printf("%v %s: %v\n", crossmark, out, err)
				return err
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	fmt.Printf("%v wrote %d frames to %s\n", checkmark, len(frames), dir)
	return nil
}

func renderFrame(rec *script.Recording, fr script.Frame, out string) error {
	r, err := preview.New(rec.Element, rec.Viewport)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.Draw(fr.Transform); err != nil {
		return err
	}
	return r.SavePNG(out)
}
