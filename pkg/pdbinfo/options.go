// 3 Aug 2020

package pdbinfo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DfltContactCutoff is the CA to CA distance for counting contacts.
const DfltContactCutoff = 8.0

// CmdFlag is the command line flags after parsing. The same things can be
// put in a yaml file and read with LoadOptions.
type CmdFlag struct {
	AllModels     bool     `yaml:"all_models"`     // summarise every model, not just the first
	Remove        []string `yaml:"remove_chains"`  // chains to take out before looking
	Geometry      bool     `yaml:"geometry"`       // write the CA geometry table
	LogFile       string   `yaml:"log"`            // "", "stdout" or a file name
	ContactCutoff float64  `yaml:"contact_cutoff"` // only settable in the file
}

// LoadOptions reads a yaml options file. Fields that are not there keep
// their defaults. An empty file is fine. Unknown fields are an error,
// since they are probably spelling mistakes.
func LoadOptions(fname string) (*CmdFlag, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	opts := CmdFlag{ContactCutoff: DfltContactCutoff}
	dec := yaml.NewDecoder(fp)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("options file %s: %w", fname, err)
	}
	if opts.ContactCutoff <= 0 {
		return nil, fmt.Errorf("options file %s: contact_cutoff must be positive, got %g", fname, opts.ContactCutoff)
	}
	return &opts, nil
}

// Merge puts the flags from the command line on top of what came from a
// file. set has the names of the flags that were given.
func Merge(file, cmdline *CmdFlag, set map[string]bool) *CmdFlag {
	ret := *file
	if set["a"] {
		ret.AllModels = cmdline.AllModels
	}
	if set["r"] {
		ret.Remove = cmdline.Remove
	}
	if set["g"] {
		ret.Geometry = cmdline.Geometry
	}
	if set["l"] {
		ret.LogFile = cmdline.LogFile
	}
	return &ret
}

// SplitChains turns "A,B" or "AB" into chain IDs. Chain IDs are a single
// character, so commas are optional.
func SplitChains(s string) []string {
	var ret []string
	for _, c := range strings.ReplaceAll(s, ",", "") {
		if c != ' ' {
			ret = append(ret, string(c))
		}
	}
	return ret
}
