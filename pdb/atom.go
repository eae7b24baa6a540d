package pdb

import (
	"fmt"
	"strings"
)

// Minimum line lengths for ATOM/HETATM. A full record is 80 columns, but
// many files lose the blanks in the charge column, so 78 is enough.
const (
	atomMinLen    = 78
	elementMinLen = 78
	chargeMinLen  = 80
)

// Atom has the contents of an ATOM or HETATM record.
// Once made, an atom is never changed. The same pointer lives in
// Model.Atoms and in one Residue.
type Atom struct {
	Serial     int    // unique within one model, kept in file order
	Name       string // like "CA"
	AltLoc     string // alternate location indicator
	ResName    string // like "ALA"
	ChainID    string // like "A"
	ResSeq     int    // residue number from the file. Not an index.
	ICode      string // insertion code
	X, Y, Z    float64
	Occupancy  float64
	TempFactor float64
	Element    string
	Charge     string
}

// decodeAtom reads an ATOM or HETATM line. The record name is not checked.
// Lines of 78 or 79 columns are accepted, they just have no charge. Below
// 78, ok is false.
func decodeAtom(line string) (a *Atom, ok bool) {
	if len(line) < atomMinLen {
		return nil, false
	}
	a = &Atom{
		Serial:     intAt(line, 6, 11),
		Name:       textAt(line, 12, 16),
		AltLoc:     textAt(line, 16, 17),
		ResName:    textAt(line, 17, 20),
		ChainID:    textAt(line, 21, 22),
		ResSeq:     intAt(line, 22, 26),
		ICode:      textAt(line, 26, 27),
		X:          floatAt(line, 30, 38),
		Y:          floatAt(line, 38, 46),
		Z:          floatAt(line, 46, 54),
		Occupancy:  floatAt(line, 54, 60),
		TempFactor: floatAt(line, 60, 66),
	}
	if len(line) >= elementMinLen {
		a.Element = textAt(line, 76, 78)
	}
	if len(line) >= chargeMinLen {
		a.Charge = textAt(line, 78, 80)
	}
	return a, true
}

// Coords returns x, y and z as an array.
func (a *Atom) Coords() [3]float64 { return [3]float64{a.X, a.Y, a.Z} }

func (a *Atom) String() string {
	return fmt.Sprintf("(%d, %s, %s %s%d, [%0.3f %0.3f %0.3f])",
		a.Serial, a.Name, a.ResName, a.ChainID, a.ResSeq, a.X, a.Y, a.Z)
}

// Atoms names a slice of atom pointers so it can print itself.
type Atoms []*Atom

func (as Atoms) String() string {
	lines := make([]string, len(as))
	for i, a := range as {
		lines[i] = a.String()
	}
	return strings.Join(lines, "\n")
}
