// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/wordart/raster"
)

// SoftwareBackend is the registry name of the CPU surface.
const SoftwareBackend = "software"

// minPlaneNormal is the smallest screen-space area term for which a
// polygon's depth plane is solved; smaller polygons are edge-on.
const minPlaneNormal = 1e-12

// Software is a CPU surface: a color buffer in the native format plus a
// float64 depth buffer holding 1/w (0 = infinitely far).
type Software struct {
	width, height int
	format        gputypes.TextureFormat

	pix   []byte
	depth []float64

	edges   *raster.EdgeList
	scanner *raster.Scanner
	closed  bool
}

// NewSoftware creates a cleared software surface.
func NewSoftware(opts Options) (*Software, error) {
	format, err := opts.Validate()
	if err != nil {
		return nil, err
	}
	n := opts.Width * opts.Height
	return &Software{
		width:   opts.Width,
		height:  opts.Height,
		format:  format,
		pix:     make([]byte, n*4),
		depth:   make([]float64, n),
		edges:   raster.NewEdgeList(),
		scanner: raster.NewScanner(opts.Width, opts.Height),
	}, nil
}

// Width returns the surface width in pixels.
func (s *Software) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Software) Height() int { return s.height }

// Format returns the native pixel format.
func (s *Software) Format() gputypes.TextureFormat { return s.format }

// Clear fills every pixel with c and resets the depth buffer.
func (s *Software) Clear(c color.Color) error {
	if s.closed {
		return ErrClosed
	}
	px := s.native(c)
	for i := 0; i < len(s.pix); i += 4 {
		copy(s.pix[i:i+4], px[:])
	}
	clear(s.depth)
	return nil
}

// FillPolygon fills a planar polygon with c, depth-tested per pixel.
func (s *Software) FillPolygon(contours [][]Vertex, c color.Color) error {
	if s.closed {
		return ErrClosed
	}
	if len(contours) == 0 || len(contours[0]) < 3 {
		return nil
	}
	plane, ok := fitPlane(contours[0])
	if !ok {
		return nil
	}

	s.edges.Reset()
	pts := make([]raster.Point, 0, len(contours[0]))
	for _, contour := range contours {
		pts = pts[:0]
		for _, v := range contour {
			pts = append(pts, raster.Point{X: v.X, Y: v.Y})
		}
		s.edges.AddContour(pts)
	}

	px := s.native(c)
	s.scanner.Fill(s.edges, raster.NonZero, func(y, x0, x1 int) {
		yc := float64(y) + 0.5
		row := y * s.width
		for x := x0; x < x1; x++ {
			z := plane.at(float64(x)+0.5, yc)
			i := row + x
			if z <= s.depth[i] {
				continue
			}
			s.depth[i] = z
			copy(s.pix[i*4:i*4+4], px[:])
		}
	})
	return nil
}

// ReadPixels copies the surface into dst as RGBA8.
func (s *Software) ReadPixels(dst []byte) error {
	if s.closed {
		return ErrClosed
	}
	if len(dst) != len(s.pix) {
		return fmt.Errorf("%w: read buffer is %d bytes, want %d", ErrSurface, len(dst), len(s.pix))
	}
	copy(dst, s.pix)
	if s.format == gputypes.TextureFormatBGRA8Unorm {
		for i := 0; i < len(dst); i += 4 {
			dst[i], dst[i+2] = dst[i+2], dst[i]
		}
	}
	return nil
}

// Close releases the buffers.
func (s *Software) Close() error {
	s.closed = true
	s.pix = nil
	s.depth = nil
	return nil
}

// DepthAt returns the stored 1/w at (x, y), or 0 outside the surface.
func (s *Software) DepthAt(x, y int) float64 {
	if s.closed || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.depth[y*s.width+x]
}

func (s *Software) native(c color.Color) [4]byte {
	px := toRGBA8(c)
	if s.format == gputypes.TextureFormatBGRA8Unorm {
		px[0], px[2] = px[2], px[0]
	}
	return px
}

// depthPlane is z = a*x + b*y + c over screen space.
type depthPlane struct {
	a, b, c float64
}

func (p depthPlane) at(x, y float64) float64 {
	return p.a*x + p.b*y + p.c
}

// fitPlane solves the plane through (X, Y, InvW) using Newell's method,
// which tolerates slightly non-planar and collinear-start polygons.
func fitPlane(vs []Vertex) (depthPlane, bool) {
	var nx, ny, nz, cx, cy, cz float64
	for i, v := range vs {
		u := vs[(i+1)%len(vs)]
		nx += (v.Y - u.Y) * (v.InvW + u.InvW)
		ny += (v.InvW - u.InvW) * (v.X + u.X)
		nz += (v.X - u.X) * (v.Y + u.Y)
		cx += v.X
		cy += v.Y
		cz += v.InvW
	}
	if math.Abs(nz) < minPlaneNormal {
		return depthPlane{}, false
	}
	n := float64(len(vs))
	cx, cy, cz = cx/n, cy/n, cz/n

	a := -nx / nz
	b := -ny / nz
	return depthPlane{a: a, b: b, c: cz - a*cx - b*cy}, true
}

var _ Surface = (*Software)(nil)
