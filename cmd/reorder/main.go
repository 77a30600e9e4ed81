// Reorder permutes or drops the dataset groups of a grouped tabular
// file and writes the result as CSV.
//
// Usage:
//
//	reorder -file run.csv -cols 6 -order 2,0,1 -o reordered.csv
package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/SJRBCXK/PlotLib"
)

var (
	file  = flag.String("file", "", "input data file (.csv, .txt, .dat, .xlsx)")
	cols  = flag.Int("cols", 6, "columns per dataset group, identifier included")
	order = flag.String("order", "", "comma separated target order of source group indices, e.g. 2,0,1")
	out   = flag.String("o", "", "output CSV file, default stdout")
)

func main() {
	log.SetPrefix("reorder: ")
	log.SetFlags(0)
	flag.Parse()
	if *file == "" || *order == "" {
		flag.Usage()
		os.Exit(2)
	}

	var perm []int
	for _, tok := range strings.Split(*order, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			log.Fatalf("bad -order entry %q", tok)
		}
		perm = append(perm, n)
	}

	loader, err := plotlib.NewLoader(plotlib.LoaderConfig{ColumnsPerDataset: *cols})
	if err != nil {
		log.Fatal(err)
	}
	grid, err := loader.ReadGrid(*file)
	if err != nil {
		log.Fatal(err)
	}
	grid, err = plotlib.ReorderGroups(grid, *cols, perm)
	if err != nil {
		log.Fatal(err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	if err := plotlib.WriteGridCSV(w, grid, ','); err != nil {
		log.Fatal(err)
	}
}
