// Package chart renders the oscillator's angle-versus-time line chart and
// saves it as a PNG image.
//
// Presentation is fixed so every run of the workflow produces the same
// figure: 12x6 inches at 300 DPI, a 0.8 point blue trace, labeled axes,
// a bold title, and a grid at 30% opacity:
//
//   - [New] builds an [AngleChart] from parallel series
//   - [AngleChart.SavePNG] renders and writes the image
//
// Samples whose time or angle is NaN or infinite are not drawn; each one
// leaves a gap in the line, and a series with no finite samples renders
// as an empty chart with unit axes.
//
// # Determinism
//
// Rendering uses embedded fonts and encodes no timestamps, so identical
// series produce byte-identical files and reruns overwrite the previous
// image with equivalent content.
package chart
