// Plotdata loads a grouped tabular data file and renders one of the
// standard chart types as PNG or SVG.
//
// Usage:
//
//	plotdata -file run.csv -cols 6 -x 1 -y 2 -o out.png
//	plotdata -file run.xlsx -mode xyy -x 1 -y 2 -x2 1 -y2 3 -o cmp.png
//	plotdata -file run.csv -table
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/SJRBCXK/PlotLib"
	"github.com/SJRBCXK/PlotLib/gonumplot"
)

var (
	file     = flag.String("file", "", "input data file (.csv, .txt, .dat, .xlsx)")
	cols     = flag.Int("cols", 6, "columns per dataset group, identifier included")
	fraction = flag.Float64("fraction", 0, "expected group share of the total width, 0 to derive it")
	mode     = flag.String("mode", "lines", "chart type: lines, groups, yy or xyy")
	xcol     = flag.Int("x", 1, "group-local x column")
	ycol     = flag.Int("y", 2, "group-local y column")
	x2col    = flag.Int("x2", 1, "group-local x column of the second axis (mode xyy)")
	y2col    = flag.Int("y2", 3, "group-local y column of the second axis (modes yy, xyy)")
	merge    = flag.Bool("merge", false, "draw all groups into one figure (mode groups)")
	rows     = flag.Int("range", 0, "rows to draw per series, 0 for all")
	out      = flag.String("o", "plot.png", "output image, format by extension")
	table    = flag.Bool("table", false, "print the loaded DataSet instead of plotting")
	summary  = flag.Bool("summary", false, "print per-column statistics instead of plotting")
)

func main() {
	log.SetPrefix("plotdata: ")
	log.SetFlags(0)
	flag.Parse()
	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := plotlib.DefaultLoaderConfig()
	cfg.ColumnsPerDataset = *cols
	cfg.DatasetFraction = *fraction
	loader, err := plotlib.NewLoader(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ds, err := loader.Load(*file)
	if err != nil {
		log.Fatal(err)
	}

	if *table {
		ds.Fprint(os.Stdout)
		return
	}
	if *summary {
		printSummary(ds)
		return
	}

	p := plotlib.NewPlotter(ds, gonumplot.New())
	p.XCol, p.YCol = *xcol, *ycol
	p.PlotRange = *rows

	switch *mode {
	case "lines":
		fig, err := p.PlotLines(plotlib.PlotOptions{})
		if err != nil {
			log.Fatal(err)
		}
		if err := fig.Save(*out); err != nil {
			log.Fatal(err)
		}
	case "groups":
		p.Groups = wholeFileGroups(ds)
		figs, err := p.GroupPlot(*merge, plotlib.PlotOptions{})
		if err != nil {
			log.Fatal(err)
		}
		saveAll(figs)
	case "yy":
		figs, err := p.SubplotYY(*ycol, *y2col, plotlib.PlotOptions{})
		if err != nil {
			log.Fatal(err)
		}
		saveAll(figs)
	case "xyy":
		figs, err := p.SubplotXYY(*xcol, *ycol, *x2col, *y2col, plotlib.XYYOptions{})
		if err != nil {
			log.Fatal(err)
		}
		saveAll(figs)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func printSummary(ds *plotlib.DataSet) {
	tr := plotlib.NewTransformer(ds)
	for _, c := range ds.Columns() {
		s, err := tr.Summarize(c.Idx)
		if err != nil {
			log.Fatal(err)
		}
		if s.N == 0 {
			continue // identifier columns have no numbers
		}
		fmt.Printf("%s [%s]: n=%d mean=%g stddev=%g min=%g median=%g max=%g\n",
			c.Name, c.Unit, s.N, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
	}
}

// wholeFileGroups labels every group of ds with its group name so that
// -mode groups needs no extra configuration.
func wholeFileGroups(ds *plotlib.DataSet) plotlib.GroupConfig {
	cfg := make(plotlib.GroupConfig)
	for _, g := range ds.Groups() {
		label := fmt.Sprintf("group %d", g)
		for c, gi := range ds.GroupsIdx {
			if gi == g && ds.Names[c] != "" {
				label = ds.Names[c]
				break
			}
		}
		cfg[label] = plotlib.GroupSpec{Members: []int{g}}
	}
	return cfg
}

func saveAll(figs []plotlib.Figure) {
	if len(figs) == 1 {
		if err := figs[0].Save(*out); err != nil {
			log.Fatal(err)
		}
		return
	}
	ext := filepath.Ext(*out)
	base := strings.TrimSuffix(*out, ext)
	for i, fig := range figs {
		if err := fig.Save(fmt.Sprintf("%s_%d%s", base, i, ext)); err != nil {
			log.Fatal(err)
		}
	}
}
