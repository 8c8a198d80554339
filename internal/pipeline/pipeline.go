package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/oscplot/internal/chart"
	"github.com/san-kum/oscplot/internal/dataset"
	"github.com/san-kum/oscplot/internal/workdir"
)

// Fixed locations relative to the base directory. The simulation writes
// its CSV into Output/ and the rendered image lands beside it.
const (
	OutputDir  = "Output"
	InputFile  = "oscillator_output.csv"
	OutputFile = "angle_vs_time.png"
)

// InputPath returns the CSV location under base.
func InputPath(base string) string {
	return filepath.Join(base, OutputDir, InputFile)
}

// OutputPath returns the image location under base.
func OutputPath(base string) string {
	return filepath.Join(base, OutputDir, OutputFile)
}

// ResolveBase returns dir unchanged, or the running executable's directory
// when dir is empty.
func ResolveBase(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	return workdir.Resolve()
}

// Pipeline runs the load-render-save sequence for one simulation output.
type Pipeline struct {
	// BaseDir anchors the relative input and output paths. Empty means
	// the directory containing the running executable.
	BaseDir string

	// Out receives the confirmation line. Nil means os.Stdout.
	Out io.Writer
}

// Result reports one completed run.
type Result struct {
	Time       []float64
	Angle      []float64
	Rows       int
	InputPath  string
	OutputPath string
}

func New(baseDir string) *Pipeline {
	return &Pipeline{BaseDir: baseDir}
}

// Run loads the CSV, renders the angle-vs-time chart, and writes the PNG.
// The confirmation line names the base-relative image location and is
// printed only after the image is on disk. The first failing stage aborts
// the run with nothing partial left behind.
func (p *Pipeline) Run() (*Result, error) {
	base, err := ResolveBase(p.BaseDir)
	if err != nil {
		return nil, err
	}

	inputPath := InputPath(base)
	outputPath := OutputPath(base)

	tbl, err := dataset.Load(inputPath)
	if err != nil {
		return nil, err
	}
	if err := tbl.Require(dataset.ColTime, dataset.ColAngle); err != nil {
		return nil, err
	}

	times, err := tbl.Column(dataset.ColTime)
	if err != nil {
		return nil, err
	}
	angles, err := tbl.Column(dataset.ColAngle)
	if err != nil {
		return nil, err
	}

	c, err := chart.New(times, angles)
	if err != nil {
		return nil, err
	}
	if err := c.SavePNG(outputPath); err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Plot saved to %s\n", filepath.Join(OutputDir, OutputFile))

	return &Result{
		Time:       times,
		Angle:      angles,
		Rows:       tbl.Len(),
		InputPath:  inputPath,
		OutputPath: outputPath,
	}, nil
}

// Summarize writes a short report of the input data under base: columns,
// sample count, time span, the initial and final rows, and the angle
// extrema. It reads the same CSV as Run but renders nothing.
func Summarize(base string, out io.Writer) error {
	tbl, err := dataset.Load(InputPath(base))
	if err != nil {
		return err
	}
	if err := tbl.Require(dataset.ColTime, dataset.ColAngle); err != nil {
		return err
	}

	fmt.Fprintf(out, "columns: %s\n", strings.Join(tbl.Columns(), ", "))
	fmt.Fprintf(out, "samples: %d\n", tbl.Len())

	if tbl.Len() == 0 {
		return nil
	}

	times, err := tbl.Column(dataset.ColTime)
	if err != nil {
		return err
	}
	angles, err := tbl.Column(dataset.ColAngle)
	if err != nil {
		return err
	}

	last := tbl.Len() - 1
	fmt.Fprintf(out, "time span: %.2fs\n\n", times[last]-times[0])

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if tbl.Has(dataset.ColVelocity) {
		velocities, err := tbl.Column(dataset.ColVelocity)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "\tTIME\tANGLE\tANGULAR VELOCITY")
		fmt.Fprintf(w, "initial\t%.6f\t%.6f\t%.6f\n", times[0], angles[0], velocities[0])
		fmt.Fprintf(w, "final\t%.6f\t%.6f\t%.6f\n", times[last], angles[last], velocities[last])
	} else {
		fmt.Fprintln(w, "\tTIME\tANGLE")
		fmt.Fprintf(w, "initial\t%.6f\t%.6f\n", times[0], angles[0])
		fmt.Fprintf(w, "final\t%.6f\t%.6f\n", times[last], angles[last])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	minAngle, maxAngle := angles[0], angles[0]
	for _, a := range angles {
		if a < minAngle {
			minAngle = a
		}
		if a > maxAngle {
			maxAngle = a
		}
	}
	fmt.Fprintf(out, "\nangle range: [%.6f, %.6f] rad\n", minAngle, maxAngle)

	return nil
}
