// Package wordart turns short text into rotating 3-D word art clips.
//
// # Overview
//
// A Studio owns a font catalog and a render pipeline. Each call to Render
// parses the leading ~key:value directives, resolves a typeface, wraps and
// lays out the text, extrudes the glyph outlines, renders the frames on an
// offscreen surface and streams them into an ffmpeg process.
//
//	studio, err := wordart.NewStudio(ctx, wordart.StudioConfig{
//	    FontsDir: "fonts",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id, err := studio.Render(ctx, "~color:gold ~font:Go Hello")
//	// output/<id>.mp4
//
// # Directives
//
// Supported keys are color, bgcolor, font, weight and style. Colors accept
// CSS names, #rgb, #rrggbb and rgb(r,g,b) with 0-255 or percentage
// components. Underscores in font names stand for spaces.
//
// # Architecture
//
// The module is organized into:
//   - fontreg: font catalog with lazy loading and idle eviction
//   - text: outline fonts, wrapping, shaping and line layout
//   - scene: camera, lights and the extruded mesh
//   - raster, surface: scanline fill into a depth-tested offscreen surface
//   - render: per-frame animation and shading
//   - encode: the encoder subprocess
//   - pipeline: job states, deadline and error classification
//   - directive: the ~key:value prefix
package wordart
