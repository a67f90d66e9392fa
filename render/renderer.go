// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/wordart/internal/logging"
	"github.com/gogpu/wordart/scene"
	"github.com/gogpu/wordart/surface"
)

// minClipW rejects faces reaching behind the camera.
const minClipW = 1e-6

// ErrFrameIndex is returned for a frame index outside [0, Frames()).
var ErrFrameIndex = errors.New("render: frame index out of range")

// Option configures a FrameRenderer.
type Option func(*FrameRenderer)

// WithHueDrift rotates the material's hue by step turns per frame, so
// frame i is shifted by (i+1)*step. Zero disables the drift.
func WithHueDrift(step float64) Option {
	return func(r *FrameRenderer) { r.hueStep = step }
}

// WithLogger sets the logger for per-frame diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *FrameRenderer) { r.logger = logging.OrNop(l) }
}

// FrameRenderer renders the frames of one animation.
//
// FrameRenderer is NOT thread-safe: it draws into a single surface.
type FrameRenderer struct {
	surface surface.Surface
	scene   *scene.Scene
	frames  int

	viewProj scene.Mat4
	lights   lighting
	hueStep  float64
	logger   *slog.Logger

	contours [][]surface.Vertex
}

// NewFrameRenderer prepares to render frameCount frames of sc into s.
func NewFrameRenderer(s surface.Surface, sc *scene.Scene, frameCount int, opts ...Option) (*FrameRenderer, error) {
	if s == nil {
		return nil, errors.New("render: nil surface")
	}
	if sc == nil || sc.Mesh.IsEmpty() {
		return nil, scene.ErrEmptyScene
	}
	if frameCount <= 0 {
		return nil, fmt.Errorf("render: frame count must be positive, got %d", frameCount)
	}

	r := &FrameRenderer{
		surface:  s,
		scene:    sc,
		frames:   frameCount,
		viewProj: sc.Camera.ViewProjection(),
		lights:   newLighting(sc),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Frames returns the number of frames in the animation.
func (r *FrameRenderer) Frames() int {
	return r.frames
}

// Angle returns the mesh rotation about Y for frame i, in radians.
func (r *FrameRenderer) Angle(i int) float64 {
	return float64(i+1) * 2 * math.Pi / float64(r.frames)
}

// RenderFrame draws frame i and reads it back into a new buffer.
func (r *FrameRenderer) RenderFrame(i int) (Frame, error) {
	if i < 0 || i >= r.frames {
		return Frame{}, fmt.Errorf("%w: %d of %d", ErrFrameIndex, i, r.frames)
	}

	if err := r.surface.Clear(r.scene.Background); err != nil {
		return Frame{}, err
	}

	model := scene.RotationY(r.Angle(i))
	mvp := r.viewProj.Multiply(model)
	base := rgbOf(shiftHue(r.scene.Material.Color, float64(i+1)*r.hueStep))
	eye := r.scene.Camera.Position

	drawn, culled := 0, 0
	for fi := range r.scene.Mesh.Faces {
		f := &r.scene.Mesh.Faces[fi]

		n := model.TransformDirection(f.Normal)
		c := model.TransformPoint(f.Centroid())
		center := scene.Vec3{X: c.X, Y: c.Y, Z: c.Z}
		if eye.Sub(center).Dot(n) <= 0 {
			culled++
			continue
		}

		if !r.project(f, mvp) {
			culled++
			continue
		}
		if err := r.surface.FillPolygon(r.contours, r.lights.shade(base, n, center)); err != nil {
			return Frame{}, err
		}
		drawn++
	}

	pix := make([]byte, r.surface.Width()*r.surface.Height()*4)
	if err := r.surface.ReadPixels(pix); err != nil {
		return Frame{}, err
	}

	r.logger.Debug("render: frame",
		"index", i, "drawn", drawn, "culled", culled)
	return Frame{Index: i, Pix: pix}, nil
}

// project maps f's contours to pixel space into r.contours. It reports
// false when part of the face lies behind the camera.
func (r *FrameRenderer) project(f *scene.Face, mvp scene.Mat4) bool {
	w := float64(r.surface.Width())
	h := float64(r.surface.Height())

	r.contours = r.contours[:0]
	for _, c := range f.Contours {
		out := make([]surface.Vertex, len(c))
		for i, p := range c {
			clip := mvp.TransformPoint(p)
			if clip.W < minClipW {
				return false
			}
			inv := 1 / clip.W
			out[i] = surface.Vertex{
				X:    (clip.X*inv + 1) / 2 * w,
				Y:    (1 - clip.Y*inv) / 2 * h,
				InvW: inv,
			}
		}
		r.contours = append(r.contours, out)
	}
	return true
}
