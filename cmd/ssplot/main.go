// 12 Sep 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/pdbmodel/pkg/common"
	"github.com/andrew-torda/pdbmodel/pkg/ssplot"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] file.pdb")
	flag.PrintDefaults()
	return ExitUsageError
}

// main
func main() {
	flags := ssplot.DfltFlags()
	var outfile string
	flag.IntVar(&flags.CellWidth, "w", flags.CellWidth, "width of each residue in pixels")
	flag.IntVar(&flags.RowHeight, "h", flags.RowHeight, "height of each chain in pixels")
	flag.StringVar(&outfile, "o", "", "output png, default from input name")
	flag.Parse()
	if flag.NArg() != 1 {
		os.Exit(usage())
	}
	if err := ssplot.Mymain(&flags, flag.Arg(0), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
