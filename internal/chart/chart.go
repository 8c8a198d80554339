package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"golang.org/x/image/colornames"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Fixed presentation for the angle-vs-time figure: a 12x6 inch canvas
// exported at 300 DPI, thin blue trace, bold title, faint grid.
const (
	widthInch  = 12
	heightInch = 6
	outputDPI  = 300

	lineWidthPt = 0.8
	titleSizePt = 14
	labelSizePt = 12

	chartTitle = "Driven Damped Oscillator: Angle vs Time"
	xAxisLabel = "Time (s)"
	yAxisLabel = "Angle (rad)"
)

// Grid lines at 30% opacity over the white background.
var gridColor = color.NRGBA{A: 77}

// AngleChart is a fully styled angle-vs-time line chart, ready to save.
type AngleChart struct {
	plot    *plot.Plot
	samples int
}

// New builds the chart from parallel time and angle series. The series must
// have equal lengths; empty series produce a valid chart with unit axes.
// Samples with a NaN or infinite coordinate are not drawn and leave a gap
// in the line.
func New(times, angles []float64) (*AngleChart, error) {
	if len(times) != len(angles) {
		return nil, fmt.Errorf("%w: %d time samples vs %d angle samples",
			ErrLengthMismatch, len(times), len(angles))
	}

	p := plot.New()
	p.Title.Text = chartTitle
	p.Title.TextStyle.Font.Size = vg.Points(titleSizePt)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.X.Label.Text = xAxisLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(labelSizePt)
	p.Y.Label.Text = yAxisLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(labelSizePt)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	// plotter.NewLine rejects non-finite points, so the series is plotted
	// as one segment per run of consecutive finite samples.
	drawn := 0
	for _, run := range finiteRuns(times, angles) {
		line, err := plotter.NewLine(run)
		if err != nil {
			return nil, fmt.Errorf("chart: build line: %w", err)
		}
		line.LineStyle.Width = vg.Points(lineWidthPt)
		line.Color = colornames.Blue
		p.Add(line)
		drawn += len(run)
	}

	if drawn == 0 {
		// Nothing drawable leaves the axis ranges unset; pin them so the
		// figure still renders with labeled unit axes.
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
	}

	return &AngleChart{plot: p, samples: len(times)}, nil
}

// finiteRuns splits the series into maximal runs of consecutive points
// whose time and angle are both finite.
func finiteRuns(times, angles []float64) []plotter.XYs {
	var runs []plotter.XYs
	var run plotter.XYs
	for i := range times {
		if !finite(times[i]) || !finite(angles[i]) {
			if len(run) > 0 {
				runs = append(runs, run)
				run = nil
			}
			continue
		}
		run = append(run, plotter.XY{X: times[i], Y: angles[i]})
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}
	return runs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Len returns the number of samples in the series, drawn or not.
func (c *AngleChart) Len() int { return c.samples }

// SavePNG renders the chart and writes it to path, overwriting any existing
// file. The parent directory must already exist; nothing is created
// implicitly. Rendering is deterministic, so equal inputs give equal bytes.
func (c *AngleChart) SavePNG(path string) error {
	img := vgimg.NewWith(
		vgimg.UseWH(widthInch*vg.Inch, heightInch*vg.Inch),
		vgimg.UseDPI(outputDPI),
	)
	c.plot.Draw(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}
