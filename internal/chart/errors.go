package chart

import "errors"

// Domain errors for chart construction and output.
var (
	// ErrLengthMismatch indicates the time and angle series differ in length.
	ErrLengthMismatch = errors.New("chart: time and angle series length mismatch")

	// ErrWrite indicates the rendered image could not be written to disk.
	ErrWrite = errors.New("chart: cannot write output image")
)
