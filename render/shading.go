// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
	"math"

	gcolor "github.com/gookit/color"

	"github.com/gogpu/wordart/scene"
)

// rgb is a linear color with channels in [0, 1].
type rgb struct {
	r, g, b float64
}

func rgbOf(c color.Color) rgb {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rgb{float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255}
}

func (c rgb) scale(s float64) rgb { return rgb{c.r * s, c.g * s, c.b * s} }

func (c rgb) add(o rgb) rgb { return rgb{c.r + o.r, c.g + o.g, c.b + o.b} }

func (c rgb) mul(o rgb) rgb { return rgb{c.r * o.r, c.g * o.g, c.b * o.b} }

func (c rgb) nrgba() color.NRGBA {
	return color.NRGBA{R: channel(c.r), G: channel(c.g), B: channel(c.b), A: 0xff}
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

// lighting holds a scene's lights pre-converted for shading.
type lighting struct {
	ambient rgb

	dirColor rgb
	dir      scene.Vec3

	pointColor rgb
	point      scene.PointLight
}

func newLighting(sc *scene.Scene) lighting {
	return lighting{
		ambient:    rgbOf(sc.Ambient.Color).scale(sc.Ambient.Intensity),
		dirColor:   rgbOf(sc.Directional.Color).scale(sc.Directional.Intensity),
		dir:        sc.Directional.Direction.Normalize(),
		pointColor: rgbOf(sc.Point.Color).scale(sc.Point.Intensity),
		point:      sc.Point,
	}
}

// shade returns the flat-shaded color of a face with world normal n whose
// center is at p.
func (l *lighting) shade(base rgb, n, p scene.Vec3) color.NRGBA {
	light := l.ambient
	light = light.add(l.dirColor.scale(max(0, n.Dot(l.dir))))

	toPoint := l.point.Position.Sub(p)
	if d := toPoint.Len(); d > 0 {
		lambert := max(0, n.Dot(toPoint.Scale(1/d)))
		light = light.add(l.pointColor.scale(lambert * l.point.Attenuation(d)))
	}
	return base.mul(light).nrgba()
}

// shiftHue rotates c's hue by turns (1 = a full turn), keeping saturation
// and lightness.
func shiftHue(c color.Color, turns float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if turns == 0 {
		return n
	}
	hsl := gcolor.RgbToHsl(n.R, n.G, n.B)
	h := math.Mod(hsl[0]+turns, 1)
	if h < 0 {
		h++
	}
	out := gcolor.HslToRgb(h, hsl[1], hsl[2])
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: n.A}
}
