// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
	"testing"

	"github.com/gogpu/wordart/scene"
)

func TestShiftHue(t *testing.T) {
	tests := []struct {
		name  string
		in    color.Color
		turns float64
		want  color.NRGBA
	}{
		{"none", color.RGBA{R: 255, A: 255}, 0, color.NRGBA{R: 255, A: 255}},
		{"red to green", color.RGBA{R: 255, A: 255}, 1.0 / 3, color.NRGBA{G: 255, A: 255}},
		{"red to blue", color.RGBA{R: 255, A: 255}, 2.0 / 3, color.NRGBA{B: 255, A: 255}},
		{"negative wraps", color.RGBA{R: 255, A: 255}, -1.0 / 3, color.NRGBA{B: 255, A: 255}},
		{"gray unchanged", color.RGBA{R: 128, G: 128, B: 128, A: 255}, 0.25, color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shiftHue(tt.in, tt.turns)
			if diff(got.R, tt.want.R) > 1 || diff(got.G, tt.want.G) > 1 || diff(got.B, tt.want.B) > 1 || got.A != tt.want.A {
				t.Errorf("shiftHue = %v, want %v", got, tt.want)
			}
		})
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestShade(t *testing.T) {
	sc := &scene.Scene{
		Ambient:     scene.AmbientLight{Color: color.White, Intensity: 0.2},
		Directional: scene.DirectionalLight{Color: color.White, Intensity: 0.5, Direction: scene.Vec3{Z: 1}},
		Point:       scene.PointLight{Color: color.White, Intensity: 0},
	}
	l := newLighting(sc)
	white := rgb{1, 1, 1}

	facing := l.shade(white, scene.Vec3{Z: 1}, scene.Vec3{})
	away := l.shade(white, scene.Vec3{Z: -1}, scene.Vec3{})

	ambient, direct := 0.2, 0.5
	if facing.R != channel(ambient+direct) {
		t.Errorf("facing = %v, want ambient + directional", facing)
	}
	if away.R != channel(ambient) {
		t.Errorf("away = %v, want ambient only", away)
	}

	sc.Ambient.Intensity = 5
	bright := newLighting(sc)
	if got := bright.shade(white, scene.Vec3{Z: 1}, scene.Vec3{}); got.R != 255 {
		t.Errorf("overexposed = %v, want clamped", got)
	}
}
