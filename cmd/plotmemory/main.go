// plotmemory charts the memory-consumption curves captured by the
// long-long map benchmark. It expects the four fixed sample files
// (LongLongHashMapMemory, HashMapMemory, HashtableMemory, TreeMapMemory)
// in the working directory, each holding one "entries ratio" pair per
// line, and writes a combined line chart with a legend.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/memplot"
	"github.com/carbocation/pfx"
)

func main() {
	var dir, out, format, summaryPath string
	var width, height int
	var autoscale, hist bool

	flag.StringVar(&dir, "dir", "", "Directory containing the benchmark sample files (defaults to the current directory)")
	flag.StringVar(&out, "o", "memory_consumption.png", "Output image path")
	flag.StringVar(&format, "format", "", "Output format, png or svg (inferred from -o when empty)")
	flag.IntVar(&width, "width", 0, "(Optional) chart pixel width")
	flag.IntVar(&height, "height", 0, "(Optional) chart pixel height")
	flag.BoolVar(&autoscale, "autoscale", false, "Fit the y axis to the data instead of the fixed 0-7 ticks?")
	flag.BoolVar(&hist, "hist", false, "Print an ASCII histogram of each series' ratios before rendering?")
	flag.StringVar(&summaryPath, "summary", "", "(Optional) write per-series summary statistics to this CSV file")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(dir, out, format, summaryPath, width, height, autoscale, hist); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func run(dir, out, format, summaryPath string, width, height int, autoscale, hist bool) error {
	series, labels, err := memplot.LoadAll(dir, memplot.DefaultSpecs)
	if err != nil {
		return err
	}

	for i := range series {
		log.Printf("%s: %d samples", labels[i], len(series[i]))
	}

	if hist {
		for i := range series {
			fmt.Println(labels[i])
			h := histogram.Hist(10, series[i].YValues())
			if err := histogram.Fprint(os.Stdout, h, histogram.Linear(40)); err != nil {
				return err
			}
		}
	}

	if summaryPath != "" {
		if err := writeSummaries(summaryPath, series, labels); err != nil {
			return err
		}
	}

	opts := memplot.RenderOptions{Width: width, Height: height, AutoScaleY: autoscale}
	switch {
	case format != "":
		opts.Format = memplot.Format(strings.ToLower(format))
	case strings.HasSuffix(out, ".svg"):
		opts.Format = memplot.SVG
	}

	if err := memplot.RenderFile(out, series, labels, opts); err != nil {
		return err
	}
	log.Println("Wrote", out)

	return nil
}

func writeSummaries(path string, series []memplot.Series, labels []string) error {
	summaries := make([]memplot.SeriesSummary, 0, len(series))
	for i := range series {
		summary, err := memplot.Summarize(labels[i], series[i])
		if err != nil {
			return err
		}
		summaries = append(summaries, summary)
	}

	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	return memplot.WriteSummaries(f, summaries)
}
