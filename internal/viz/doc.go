// Package viz provides an optional terminal viewer for the plotted series.
//
// The package implements a read-only TUI using the Bubble Tea framework:
//
//   - [Model]: static view of the angle series with summary stats
//   - [Show]: runs the viewer in the alternate screen buffer
//
// The viewer is the headless-friendly stand-in for a desktop chart window.
// It is off by default and opens only when requested for a run, after the
// image file has already been written.
//
// # Key Bindings
//
//	Q / Esc / Ctrl+C - Dismiss the viewer
package viz
