package memplot

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
)

// Format selects the chart encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

const (
	defaultWidth  = 1024
	defaultHeight = 512

	// The original analysis fixed the y axis to integer ticks 0 through 7
	// regardless of the data range; values above the top tick are clipped.
	// Kept as-is so charts stay comparable across benchmark runs.
	fixedYTickMax = 7
)

// RenderError indicates that a series collection cannot be drawn.
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string { return "render: " + e.Reason }

// RenderOptions control chart output. The zero value reproduces the
// original chart: PNG at 1024x512 with y ticks fixed at 0..7.
type RenderOptions struct {
	Width  int
	Height int
	Format Format

	// AutoScaleY drops the fixed 0..7 ticks and fits the axis to the data.
	AutoScaleY bool
}

// Render draws one line per series, tagged with the matching label, adds
// a legend, and encodes the chart to w. Every series must be non-empty
// and len(series) must equal len(labels).
func Render(w io.Writer, series []Series, labels []string, opts RenderOptions) error {
	if len(series) != len(labels) {
		return &RenderError{Reason: fmt.Sprintf("%d series but %d labels", len(series), len(labels))}
	}

	for i, s := range series {
		if len(s) == 0 {
			return &RenderError{Reason: fmt.Sprintf("series %q has no samples", labels[i])}
		}
	}

	var provider chart.RendererProvider
	switch opts.Format {
	case PNG, "":
		provider = chart.PNG
	case SVG:
		provider = chart.SVG
	default:
		return &RenderError{Reason: fmt.Sprintf("unknown format %q", opts.Format)}
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:           "entries",
			ValueFormatter: chart.IntValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "memory per entry / payload bytes",
		},
	}

	if !opts.AutoScaleY {
		ticks := make([]chart.Tick, 0, fixedYTickMax+1)
		for i := 0; i <= fixedYTickMax; i++ {
			ticks = append(ticks, chart.Tick{Value: float64(i), Label: strconv.Itoa(i)})
		}
		graph.YAxis.Ticks = ticks
		graph.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: fixedYTickMax}
	}

	for i, s := range series {
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    labels[i],
			XValues: s.XValues(),
			YValues: s.YValues(),
		})
	}

	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	// Render to a byte buffer first so an encoding failure leaves w untouched
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(provider, buffer); err != nil {
		return pfx.Err(err)
	}
	if _, err := buffer.WriteTo(w); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// RenderFile renders the chart into a newly created file at path.
func RenderFile(path string, series []Series, labels []string, opts RenderOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := Render(f, series, labels, opts); err != nil {
		return err
	}

	return f.Close()
}
