// 3 Aug 2020

// Package pdbinfo is the body of the pdbinfo command. It reads PDB files
// and writes a short summary of each model: how many atoms, residues and
// chains, the secondary structure, symmetry matrices and, if asked for,
// the geometry along the alpha carbon trace.
package pdbinfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/andrew-torda/pdbmodel/pdb"
	"github.com/andrew-torda/pdbmodel/pdb/geom"
	"github.com/andrew-torda/pdbmodel/pdb/pdbfile"
	"github.com/andrew-torda/pdbmodel/pdb/zwrap"
)

// DfltFlags gives the settings when there is no options file.
func DfltFlags() CmdFlag { return CmdFlag{ContactCutoff: DfltContactCutoff} }

// a fakecloser is a wrapper around an io.Writer which turns it into
// a WriteCloser.
type fakecloser struct {
	io.Writer
}

func (fakecloser) Close() error { return nil }

// logWhere decides where to send logged output. Give it "" to throw the
// output away, "stdout", or a file name to append to.
func logWhere(outinfo string) (*log.Logger, io.WriteCloser, error) {
	var iowriter io.WriteCloser
	switch outinfo {
	case "":
		iowriter = fakecloser{io.Discard}
	case "stdout":
		iowriter = fakecloser{os.Stdout}
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
	}
	return log.New(iowriter, "", log.Lshortfile), iowriter, nil
}

// fileResult is what we got from one file.
type fileResult struct {
	name   string
	models []*pdb.Model
	err    error
}

// openReader gives a reader for a file name. "-" is standard input, which
// may be gzipped, but is not checked for mmCIF.
func openReader(fname string) (*pdb.Reader, io.Closer, error) {
	if fname == "-" {
		z, err := zwrap.WrapMaybe(io.NopCloser(os.Stdin))
		if err != nil {
			return nil, nil, fmt.Errorf("stdin: %w", err)
		}
		return pdb.NewReader(z), z, nil
	}
	f, err := pdbfile.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	return f.Reader, f, nil
}

// readOne reads the models from a file. If we only want the first model,
// we stop there.
func readOne(fname string, flags *CmdFlag, lgr *log.Logger) fileResult {
	res := fileResult{name: fname}
	f, closer, err := openReader(fname)
	if err != nil {
		res.err = err
		return res
	}
	defer closer.Close()
	f.SetLogger(lgr)
	for m, err := range f.All() {
		if err != nil {
			res.err = fmt.Errorf("%s: %w", fname, err)
			break
		}
		for _, c := range flags.Remove {
			m.RemoveChain(c)
		}
		res.models = append(res.models, m)
		if !flags.AllModels {
			break
		}
	}
	lgr.Println(fname, len(res.models), "models,", f.Line(), "lines")
	return res
}

// readFiles reads each file in its own goroutine. Results come back in
// the order of the names.
func readFiles(infiles []string, flags *CmdFlag, lgr *log.Logger) []fileResult {
	results := make([]fileResult, len(infiles))
	var wg sync.WaitGroup
	for i, fname := range infiles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = readOne(fname, flags, lgr)
		}()
	}
	wg.Wait()
	return results
}

// nan2str prints an angle in degrees, or NA.
func nan2str(x float64, degrees bool) string {
	if math.IsNaN(x) {
		return "NA"
	}
	if degrees {
		x = x * 180 / math.Pi
	}
	return fmt.Sprintf("%.2f", x)
}

// wrtModel writes the summary of one model.
func wrtModel(w io.Writer, fname string, imodel int, m *pdb.Model, flags *CmdFlag) {
	fmt.Fprintf(w, "file %s model %d\n", fname, imodel+1)
	fmt.Fprintf(w, "  atoms %d hetatoms %d connections %d\n", len(m.Atoms), len(m.HetAtoms), len(m.Connections))
	fmt.Fprintf(w, "  residues %d chains %d (%s)\n", len(m.Residues), len(m.Chains), strings.Join(m.ChainIDs(), ","))
	ss := m.SecondaryCounts()
	fmt.Fprintf(w, "  %s %d %s %d %s %d\n", pdb.SSHelix, ss[pdb.SSHelix],
		pdb.SSStrand, ss[pdb.SSStrand], pdb.SSCoil, ss[pdb.SSCoil])
	fmt.Fprintf(w, "  biomt %d smtry %d\n", len(m.BioMatrixes), len(m.SymMatrixes))
	c := m.Center()
	fmt.Fprintf(w, "  center %.3f %.3f %.3f\n", c[0], c[1], c[2])
	trace := m.CaTrace()
	nbreak := 0
	geo := geom.CaGeometry(trace)
	for _, g := range geo[min(1, len(geo)):] {
		if g.Break {
			nbreak++
		}
	}
	fmt.Fprintf(w, "  calpha %d breaks %d contacts %d (%.1f A)\n", len(trace), nbreak,
		geom.CountContacts(trace, flags.ContactCutoff), flags.ContactCutoff)
	if !flags.Geometry {
		return
	}
	ncontact := geom.ContactsPerAtom(geom.ContactMap(geom.DistMatrix(trace), flags.ContactCutoff))
	fmt.Fprintln(w, "chain,resseq,resname,bond,angle,dihedral,contacts")
	for i, g := range geo {
		fmt.Fprintf(w, "%s,%d,%s,%s,%s,%s,%d\n", g.Atom.ChainID, g.Atom.ResSeq, g.Atom.ResName,
			nan2str(g.Bond, false), nan2str(g.Angle, true), nan2str(g.Dihedral, true), ncontact[i])
	}
}

// Mymain reads the files and writes the summaries to outfile, or
// standard output if outfile is "" or "-". A file that cannot be read
// does not stop the others. The errors are collected and returned at
// the end.
func Mymain(flags *CmdFlag, infiles []string, outfile string) (err error) {
	if len(infiles) == 0 {
		return errors.New("no input files")
	}
	lgr, lgClose, err := logWhere(flags.LogFile)
	if err != nil {
		return fmt.Errorf("%w creating log file", err)
	}
	defer lgClose.Close()

	var out io.Writer = os.Stdout
	if outfile != "" && outfile != "-" {
		fp, e := os.Create(outfile)
		if e != nil {
			return e
		}
		defer func() {
			if e := fp.Close(); e != nil && err == nil {
				err = e
			}
		}()
		out = fp
	}
	w := bufio.NewWriter(out)
	defer func() {
		if e := w.Flush(); e != nil && err == nil {
			err = e
		}
	}()

	var errs []error
	for _, res := range readFiles(infiles, flags, lgr) {
		if res.err != nil {
			errs = append(errs, res.err)
		}
		for i, m := range res.models {
			wrtModel(w, res.name, i, m, flags)
		}
	}
	return errors.Join(errs...)
}
