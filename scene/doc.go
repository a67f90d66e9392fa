// Package scene assembles the 3-D scene for a piece of text: a fixed
// perspective camera, ambient, directional and point lights, and the text
// extruded into a closed mesh.
package scene
