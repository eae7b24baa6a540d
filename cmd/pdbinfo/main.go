// 3 Aug 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/pdbmodel/pkg/common"
	"github.com/andrew-torda/pdbmodel/pkg/pdbinfo"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] file.pdb ...")
	flag.PrintDefaults()
	return ExitUsageError
}

// main
func main() {
	flags := pdbinfo.DfltFlags()
	var cfgfile, outfile, chains string
	flag.BoolVar(&flags.AllModels, "a", false, "all models, not just the first")
	flag.StringVar(&cfgfile, "c", "", "yaml options file")
	flag.BoolVar(&flags.Geometry, "g", false, "write CA geometry as csv")
	flag.StringVar(&flags.LogFile, "l", "", "log file, \"stdout\" or discarded by default")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.StringVar(&chains, "r", "", "chains to remove, like A,B")
	flag.Parse()

	if flag.NArg() == 0 {
		os.Exit(usage())
	}
	flags.Remove = pdbinfo.SplitChains(chains)
	opts := &flags
	if cfgfile != "" {
		fromFile, err := pdbinfo.LoadOptions(cfgfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitUsageError)
		}
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		opts = pdbinfo.Merge(fromFile, &flags, set)
	}
	if err := pdbinfo.Mymain(opts, flag.Args(), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
