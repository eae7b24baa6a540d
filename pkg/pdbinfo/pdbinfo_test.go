package pdbinfo_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/andrew-torda/pdbmodel/pkg/common"
	"github.com/andrew-torda/pdbmodel/pkg/pdbinfo"
)

// Chain A has three residues in a zigzag, chain B one. The second model
// only has chain A.
const twoModels = `HELIX    1  HA ALA A    1  GLY A    2  1                                   2
ATOM      1  CA  ALA A   1       0.000   0.000   0.000  1.00 20.00           C
ATOM      2  CA  GLY A   2       3.000   2.332   0.000  1.00 20.00           C
ATOM      3  CA  SER A   3       6.000   0.000   0.000  1.00 20.00           C
ATOM      4  CA  ALA B   1      50.000   0.000   0.000  1.00 20.00           C
HETATM    5 ZN    ZN B 101      52.000   0.000   0.000  1.00 20.00          ZN
ENDMDL
ATOM      1  CA  ALA A   1       0.100   0.000   0.000  1.00 20.00           C
ENDMDL
`

func wrtTemp(t *testing.T, s, ext string) string {
	t.Helper()
	name, err := common.WrtTempExt(s, ext)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(name) })
	return name
}

// run calls Mymain and gives back what it wrote.
func run(t *testing.T, flags *pdbinfo.CmdFlag, infiles ...string) (string, error) {
	t.Helper()
	outfile := filepath.Join(t.TempDir(), "out.txt")
	err := pdbinfo.Mymain(flags, infiles, outfile)
	b, e := os.ReadFile(outfile)
	if e != nil {
		t.Fatal(e)
	}
	return string(b), err
}

func TestSummary(t *testing.T) {
	flags := pdbinfo.DfltFlags()
	out, err := run(t, &flags, wrtTemp(t, twoModels, ".pdb"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"model 1\n",
		"atoms 4 hetatoms 1 connections 0\n",
		"residues 4 chains 2 (A,B)\n",
		"Helix 2 Strand 0 Coil 2\n",
		"biomt 0 smtry 0\n",
		"calpha 4 breaks 1 contacts 3 (8.0 A)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
	if strings.Contains(out, "model 2") || strings.Contains(out, "chain,resseq") {
		t.Errorf("asked for too little to get\n%s", out)
	}
}

func TestAllModelsRemove(t *testing.T) {
	flags := pdbinfo.DfltFlags()
	flags.AllModels = true
	flags.Remove = []string{"B"}
	out, err := run(t, &flags, wrtTemp(t, twoModels, ".pdb"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "atoms 3 hetatoms 0") || !strings.Contains(out, "chains 1 (A)") {
		t.Errorf("chain B still there\n%s", out)
	}
	if !strings.Contains(out, "model 2\n") {
		t.Errorf("second model missing\n%s", out)
	}
}

func TestGeometry(t *testing.T) {
	flags := pdbinfo.DfltFlags()
	flags.Geometry = true
	out, err := run(t, &flags, wrtTemp(t, twoModels, ".pdb"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	i := slices.Index(lines, "chain,resseq,resname,bond,angle,dihedral,contacts")
	if i < 0 || len(lines) < i+5 {
		t.Fatalf("no geometry table in\n%s", out)
	}
	if got := lines[i+1]; got != "A,1,ALA,NA,NA,NA,2" {
		t.Errorf("first row %q", got)
	}
	if got := lines[i+2]; !strings.HasPrefix(got, "A,2,GLY,3.80,104.") || !strings.HasSuffix(got, ",NA,2") {
		t.Errorf("second row %q", got)
	}
	if got := lines[i+4]; got != "B,1,ALA,NA,NA,NA,0" {
		t.Errorf("chain B row %q", got)
	}
}

// A bad file gives an error, but the good one is still summarised.
func TestBadFile(t *testing.T) {
	flags := pdbinfo.DfltFlags()
	good := wrtTemp(t, twoModels, ".pdb")
	cif := wrtTemp(t, "data_1ABC\n", ".cif")
	out, err := run(t, &flags, "/no/such/file.pdb", good, cif)
	if err == nil {
		t.Error("no error for missing file")
	} else if !strings.Contains(err.Error(), "/no/such/file.pdb") || !strings.Contains(err.Error(), cif) {
		t.Errorf("error does not name the files: %v", err)
	}
	if !strings.Contains(out, good) {
		t.Errorf("good file missing from\n%s", out)
	}
}

func TestNoFiles(t *testing.T) {
	flags := pdbinfo.DfltFlags()
	if err := pdbinfo.Mymain(&flags, nil, ""); err == nil {
		t.Error("no error with no input files")
	}
}

func TestLogFile(t *testing.T) {
	flags := pdbinfo.DfltFlags()
	flags.LogFile = filepath.Join(t.TempDir(), "log.txt")
	short := "ATOM      1  CA  ALA A   1       0.000\n" + twoModels
	if _, err := run(t, &flags, wrtTemp(t, short, ".pdb")); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(flags.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "line 1:") || !strings.Contains(string(b), "1 models") {
		t.Errorf("log has\n%s", b)
	}
}

func TestStdin(t *testing.T) {
	fp, err := os.Open(wrtTemp(t, twoModels, ".pdb"))
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	saved := os.Stdin
	os.Stdin = fp
	defer func() { os.Stdin = saved }()

	flags := pdbinfo.DfltFlags()
	out, err := run(t, &flags, "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "file - model 1\n") || !strings.Contains(out, "chains 2 (A,B)") {
		t.Errorf("stdin not read\n%s", out)
	}
}
