// Package dataset loads the oscillator simulation's CSV output into a
// column-addressable table.
//
// The CSV file is the only interface with the simulation process: one
// header row naming the columns, then numeric rows in time order. Loading
// is strict and preserves the file exactly:
//
//   - [Load] reads a file into a [Table]
//   - [Table.Column] returns a named series in file order
//   - [Table.Require] checks column presence before any work begins
//
// # Errors
//
// Failures map to three kinds: [ErrNotFound] when the file does not exist,
// [ErrParse] when content is not well-formed numeric CSV, and
// [ErrMissingColumn] when the header lacks a requested name. All are fatal
// to the caller; nothing is skipped or repaired.
package dataset
