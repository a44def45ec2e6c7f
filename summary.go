package memplot

import (
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// A SeriesSummary describes one memory curve numerically: how many
// samples it holds, where the benchmark stopped, and the spread of the
// per-entry memory ratio.
type SeriesSummary struct {
	Label        string  `csv:"label"`
	Samples      int     `csv:"samples"`
	FinalEntries int64   `csv:"final_entries"`
	MinRatio     float64 `csv:"min_ratio"`
	MeanRatio    float64 `csv:"mean_ratio"`
	MaxRatio     float64 `csv:"max_ratio"`
	P99Ratio     float64 `csv:"p99_ratio"`
}

// Summarize computes the descriptive statistics for one labeled series.
func Summarize(label string, s Series) (SeriesSummary, error) {
	out := SeriesSummary{Label: label, Samples: len(s)}
	if len(s) == 0 {
		return out, nil
	}
	out.FinalEntries = s[len(s)-1].X

	data := stats.LoadRawData(s.YValues())

	var err error
	if out.MinRatio, err = data.Min(); err != nil {
		return out, err
	}
	if out.MeanRatio, err = data.Mean(); err != nil {
		return out, err
	}
	if out.MaxRatio, err = data.Max(); err != nil {
		return out, err
	}

	sorted := s.YValues()
	sort.Float64s(sorted)
	out.P99Ratio = stat.Quantile(0.99, stat.LinInterp, sorted, nil)

	return out, nil
}

// WriteSummaries emits the summaries as CSV, one row per series, with a
// header row.
func WriteSummaries(w io.Writer, summaries []SeriesSummary) error {
	return gocsv.Marshal(&summaries, w)
}
