package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Column names written by the oscillator simulation. Time and Angle are
// required for plotting; AngularVelocity appears in full simulation dumps.
const (
	ColTime     = "Time"
	ColAngle    = "Angle"
	ColVelocity = "AngularVelocity"
)

// Table holds one loaded CSV file as named columns of float64 samples.
// Row order follows the file exactly; values are not resampled or cleaned.
type Table struct {
	header  []string
	columns map[string][]float64
	rows    int
}

// Load reads a comma-delimited file with a single header row into a Table.
// Every body cell must parse as a float64 and every row must match the
// header width. Cells reading nan or inf load as the corresponding
// non-finite values. A header-only file yields an empty but valid Table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", ErrParse, path)
	}

	header := records[0]
	columns := make(map[string][]float64, len(header))
	for _, name := range header {
		if _, dup := columns[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrParse, name)
		}
		columns[name] = make([]float64, 0, len(records)-1)
	}

	for i, record := range records[1:] {
		for j, cell := range record {
			val, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %q: %q is not numeric",
					ErrParse, i+2, header[j], cell)
			}
			columns[header[j]] = append(columns[header[j]], val)
		}
	}

	return &Table{
		header:  header,
		columns: columns,
		rows:    len(records) - 1,
	}, nil
}

// Column returns the named series in file order. The returned slice is the
// Table's backing storage; callers must not mutate it.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return col, nil
}

// Require fails with the first requested column missing from the header,
// so absence is reported before any rendering work starts.
func (t *Table) Require(names ...string) error {
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return nil
}

// Has reports whether the named column was present in the file.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Len returns the number of data rows.
func (t *Table) Len() int { return t.rows }

// Columns lists the header names in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.header))
	copy(out, t.header)
	return out
}
