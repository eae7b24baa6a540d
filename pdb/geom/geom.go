// Package geom calculates some geometry on alpha carbon traces: lengths,
// angles, dihedrals, and the distance and contact matrices.
package geom

import (
	"math"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/pdbmodel/pdb"
)

// Limits for the distance between neighbouring alpha carbons. Outside of
// these, we say the chain is broken.
const (
	MinCaDist = 2.6
	MaxCaDist = 4.1
	mindist2  = MinCaDist * MinCaDist
	maxdist2  = MaxCaDist * MaxCaDist
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrTooClose Error = "geom: atoms too close"
	ErrTooFar   Error = "geom: atoms too far apart"
	ErrAngle    Error = "geom: broken angle"
)

type Xyz = [3]float64

func diff(start, end Xyz) Xyz { return Xyz{end[0] - start[0], end[1] - start[1], end[2] - start[2]} }

func sclrProd(u, v Xyz) float64 { return u[0]*v[0] + u[1]*v[1] + u[2]*v[2] }

func vecProd(u, v Xyz) Xyz {
	return Xyz{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

func scale(s float64, v Xyz) Xyz { return Xyz{s * v[0], s * v[1], s * v[2]} }

// Dist is the distance between two points.
func Dist(a, b Xyz) float64 { return math.Sqrt(sclrProd(diff(a, b), diff(a, b))) }

// CaDist is the distance between neighbouring alpha carbons, but if it is
// outside of MinCaDist and MaxCaDist, there is an error as well.
func CaDist(a, b Xyz) (float64, error) {
	d := diff(a, b)
	r2 := sclrProd(d, d)
	switch {
	case r2 <= mindist2:
		return math.Sqrt(r2), ErrTooClose
	case r2 >= maxdist2:
		return math.Sqrt(r2), ErrTooFar
	}
	return math.Sqrt(r2), nil
}

// Angle takes three points and returns the angle at the middle one in
// radians.
func Angle(a, b, c Xyz) (float64, error) {
	x1, x2 := diff(b, a), diff(b, c)
	cosalpha := sclrProd(x1, x2) / math.Sqrt(sclrProd(x1, x1)*sclrProd(x2, x2))
	switch {
	case cosalpha > 1 && cosalpha < 1.01: // numerical noise
		return 0, nil
	case cosalpha < -1 && cosalpha > -1.01:
		return math.Pi, nil
	case !(cosalpha >= -1 && cosalpha <= 1): // NaN lands here too
		return math.NaN(), ErrAngle
	}
	return math.Acos(cosalpha), nil
}

// Dihedral takes four points and returns the dihedral angle in radians,
// from -pi to pi. It is not defined if three points are on a line.
func Dihedral(ii, jj, kk, ll Xyz) float64 {
	rij := diff(ii, jj)
	rkj := diff(kk, jj)
	rkl := diff(kk, ll)
	lenkj2 := sclrProd(rkj, rkj)
	rim := diff(rij, scale(sclrProd(rij, rkj)/lenkj2, rkj))
	rln := diff(scale(sclrProd(rkl, rkj)/lenkj2, rkj), rkl)
	tCos := sclrProd(rim, rln) / math.Sqrt(sclrProd(rim, rim)*sclrProd(rln, rln))
	var tau float64
	switch {
	case tCos > 1:
		tau = 0
	case tCos < -1:
		tau = math.Pi
	default:
		tau = math.Acos(tCos)
	}
	if sclrProd(rij, vecProd(rkj, rkl)) <= 0 { // IUPAC sign, clockwise is positive
		return tau
	}
	return -tau
}

// CaGeom is the local geometry around one alpha carbon. Anything that
// cannot be calculated, because of a chain end or a break, is NaN.
type CaGeom struct {
	Atom     *pdb.Atom
	Bond     float64 // distance to the previous CA
	Angle    float64 // previous, this, next
	Dihedral float64 // previous, this, next, next but one
	Break    bool    // no usable bond to the previous CA
}

// connected says if two alpha carbons are neighbours in a chain.
func connected(a, b *pdb.Atom) bool {
	if a.ChainID != b.ChainID {
		return false
	}
	_, err := CaDist(a.Coords(), b.Coords())
	return err == nil
}

// CaGeometry walks along a trace, as from Model.CaTrace, and gets bond
// lengths, angles and dihedrals. A chain change or a distance outside of
// the CA limits starts a new segment.
func CaGeometry(trace []*pdb.Atom) []CaGeom {
	n := len(trace)
	ret := make([]CaGeom, n)
	link := make([]bool, n) // link[i] means i-1 and i are bonded
	for i := 1; i < n; i++ {
		link[i] = connected(trace[i-1], trace[i])
	}
	nan := math.NaN()
	for i, a := range trace {
		g := CaGeom{Atom: a, Bond: nan, Angle: nan, Dihedral: nan, Break: !link[i]}
		if i > 0 && link[i] {
			g.Bond = Dist(trace[i-1].Coords(), a.Coords())
		}
		if i > 0 && i+1 < n && link[i] && link[i+1] {
			if ang, err := Angle(trace[i-1].Coords(), a.Coords(), trace[i+1].Coords()); err == nil {
				g.Angle = ang
			}
		}
		if i > 0 && i+2 < n && link[i] && link[i+1] && link[i+2] {
			g.Dihedral = Dihedral(trace[i-1].Coords(), a.Coords(), trace[i+1].Coords(), trace[i+2].Coords())
		}
		ret[i] = g
	}
	return ret
}

// DistMatrix gives all the distances between a set of atoms.
func DistMatrix(atoms []*pdb.Atom) *matrix.FMatrix2d {
	dm := matrix.NewFMatrix2d(len(atoms), len(atoms))
	m := dm.Mat
	for i := range atoms {
		for j := i + 1; j < len(atoms); j++ {
			d := float32(Dist(atoms[i].Coords(), atoms[j].Coords()))
			m[i][j], m[j][i] = d, d
		}
	}
	return dm
}

// ContactMap has a 1 where two atoms in a distance matrix are closer
// than cutoff, otherwise 0. The diagonal is 1.
func ContactMap(dm *matrix.FMatrix2d, cutoff float64) *matrix.BMatrix2d {
	n, _ := dm.Size()
	cm := matrix.NewBMatrix2d(n, n)
	for i, row := range dm.Mat {
		cm.Mat[i][i] = 1
		for j := i + 1; j < n; j++ {
			if float64(row[j]) < cutoff {
				cm.Mat[i][j], cm.Mat[j][i] = 1, 1
			}
		}
	}
	return cm
}

// ContactsPerAtom counts the contacts of each atom, not including itself.
func ContactsPerAtom(cm *matrix.BMatrix2d) []int {
	ret := make([]int, len(cm.Mat))
	for i, row := range cm.Mat {
		for j, c := range row {
			if j != i {
				ret[i] += int(c)
			}
		}
	}
	return ret
}

// CountContacts counts pairs of atoms closer than cutoff, each pair once.
// It does not build a matrix, so it is fine for big structures.
func CountContacts(atoms []*pdb.Atom, cutoff float64) int {
	n := 0
	cut2 := cutoff * cutoff
	for i, a := range atoms {
		for _, b := range atoms[i+1:] {
			d := diff(a.Coords(), b.Coords())
			if sclrProd(d, d) < cut2 {
				n++
			}
		}
	}
	return n
}
