package memplot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// A Point is one parsed sample: X is the number of entries that had been
// inserted into the map under test, Y is the measured memory per entry
// relative to the raw payload size (16 bytes for a long-long pair).
type Point struct {
	X int64
	Y float64
}

// A Series is the ordered contents of one sample file. Line order is
// preserved: it defines the order in which the curve's points are drawn.
type Series []Point

// A SeriesSpec associates a sample file with the human-readable label
// shown in the chart legend.
type SeriesSpec struct {
	Source string
	Label  string
}

// DefaultSpecs lists the four sample files produced by the memory
// benchmark, in display order.
var DefaultSpecs = []SeriesSpec{
	{Source: "LongLongHashMapMemory", Label: "LongLongMap"},
	{Source: "HashMapMemory", Label: "HashMap"},
	{Source: "HashtableMemory", Label: "Hashtable"},
	{Source: "TreeMapMemory", Label: "TreeMap"},
}

// FileAccessError indicates that a sample file could not be opened.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError indicates a malformed line in a sample file.
type ParseError struct {
	Path string
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: bad sample line %q: %v", e.Path, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads one sample file. Each non-blank line must contain exactly
// two whitespace-separated tokens: an integer entry count and a floating
// point memory ratio. Points are returned in file order.
func Load(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	out := make(Series, 0)

	lineNum := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &ParseError{Path: path, Line: lineNum, Text: line,
				Err: fmt.Errorf("want 2 fields, got %d", len(fields))}
		}

		x, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNum, Text: line, Err: err}
		}

		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNum, Text: line, Err: err}
		}

		out = append(out, Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

// LoadAll loads each spec's sample file from dir (the current directory
// when dir is empty), stopping at the first failure. It returns the
// series alongside the parallel slice of display labels.
func LoadAll(dir string, specs []SeriesSpec) ([]Series, []string, error) {
	series := make([]Series, 0, len(specs))
	labels := make([]string, 0, len(specs))

	for _, spec := range specs {
		s, err := Load(filepath.Join(dir, spec.Source))
		if err != nil {
			return nil, nil, err
		}

		series = append(series, s)
		labels = append(labels, spec.Label)
	}

	return series, labels, nil
}

// WriteTo writes the series in the sample file format, one "x y" pair per
// line. Floats use the shortest representation that parses back exactly.
func (s Series) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, p := range s {
		n, err := fmt.Fprintf(w, "%d %s\n", p.X, strconv.FormatFloat(p.Y, 'g', -1, 64))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// XValues returns the entry counts as floats, for plotting.
func (s Series) XValues() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = float64(p.X)
	}

	return out
}

// YValues returns the memory ratios.
func (s Series) YValues() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Y
	}

	return out
}
