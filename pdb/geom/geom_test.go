package geom_test

import (
	"math"
	"slices"
	"testing"

	"github.com/andrew-torda/pdbmodel/pdb"
	. "github.com/andrew-torda/pdbmodel/pdb/geom"
)

var disttests = []struct {
	name   string
	x1, x2 Xyz
	e      error
}{
	{"3.8", Xyz{3.80, 0.00, 0}, Xyz{0, 0, 0}, nil},
	{"onex", Xyz{0.00, 0.00, 0}, Xyz{1, 0, 0}, ErrTooClose},
	{"333", Xyz{3.00, 3.00, 3}, Xyz{1, 0, 0}, ErrTooFar},
	{"diag", Xyz{1.95, 1.95, 3}, Xyz{0, 0, 0}, nil},
	{"555", Xyz{5.00, 5.00, 5}, Xyz{1, 0, 0}, ErrTooFar},
}

// permuteXyz rotates x, y and z for tests whose answers should not change
// when we move the axes around.
func permuteXyz(x Xyz) Xyz { return Xyz{x[1], x[2], x[0]} }

func TestCaDist(t *testing.T) {
	for _, test := range disttests {
		x1, x2 := test.x1, test.x2
		dist1, e1 := CaDist(x1, x2)
		dist2, e2 := CaDist(x2, x1)
		x1, x2 = permuteXyz(x1), permuteXyz(x2)
		dist3, e3 := CaDist(x1, x2)
		if dist1 != dist2 || notApproxEqual(dist1, dist3) {
			t.Errorf("test %s. Did not get identical results, %f %f %f", test.name, dist1, dist2, dist3)
		}
		if e1 != test.e || e2 != test.e || e3 != test.e {
			t.Errorf("test %s, got errors %v %v %v want %v", test.name, e1, e2, e3, test.e)
		}
		if notApproxEqual(dist1, Dist(test.x1, test.x2)) {
			t.Errorf("test %s: CaDist and Dist differ", test.name)
		}
	}
}

// angleDiff is the difference between two angles, taking care of the
// jump between pi and -pi.
func angleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	return math.Min(d, 2*math.Pi-d)
}

// notApproxEqual returns true if x and y are not approximately equal.
func notApproxEqual(x, y float64) bool {
	diff := math.Abs(x - y)
	return math.IsNaN(diff) || diff > 0.00001
}

var angletests = []struct {
	x1, x2, x3 Xyz
	res        float64
}{
	{Xyz{+1, 0, 0}, Xyz{0, 0, 0}, Xyz{0.9999, 0, 0}, 0},
	{Xyz{-0, 1, 0}, Xyz{0, 0, 0}, Xyz{1.0000, 0, 0}, math.Pi / 2},
	{Xyz{-1, 0, 0}, Xyz{0, 0, 0}, Xyz{1.0000, 0, 0}, math.Pi},
	{Xyz{+0, 1, 0}, Xyz{0, 0, 0}, Xyz{0.1000, 0, 0}, math.Pi / 2},
	{Xyz{+0, 1, 0}, Xyz{0, 0, 0}, Xyz{9.9000, 0, 0}, math.Pi / 2},
	{Xyz{-1, 0, 0}, Xyz{0, 0, 0}, Xyz{1.0000, 1, 0}, math.Pi * 3 / 4},
	{Xyz{-1, 0, 0}, Xyz{0, 0, 0}, Xyz{9.9, 9.9, 0}, math.Pi * 3 / 4},
}

func TestAngle(t *testing.T) {
	for _, test := range angletests {
		x1, x2, x3 := test.x1, test.x2, test.x3
		for range 3 {
			if a, err := Angle(x1, x2, x3); err != nil {
				t.Errorf("%v error with %v %v %v", err, x1, x2, x3)
			} else if notApproxEqual(a, test.res) {
				t.Errorf("Angle got %f wanted %f, %v, %v, %v", a, test.res, x1, x2, x3)
			}
			x1, x2, x3 = permuteXyz(x1), permuteXyz(x2), permuteXyz(x3)
		}
	}
}

// Two points on top of each other have no angle.
func TestAngleBroken(t *testing.T) {
	if a, err := Angle(Xyz{1, 0, 0}, Xyz{1, 0, 0}, Xyz{2, 0, 0}); err != ErrAngle || !math.IsNaN(a) {
		t.Errorf("got %f, %v", a, err)
	}
}

// The first three points stay put and the last goes round the z axis.
var dhdrltests = []struct {
	l   Xyz
	deg float64
}{
	{Xyz{1, 0, 1}, 0},
	{Xyz{1, 1, 1}, 45},
	{Xyz{0, 1, 1}, 90},
	{Xyz{-1, 0, 1}, 180},
	{Xyz{0, -1, 1}, -90},
	{Xyz{1, -1, 1}, -45},
}

func TestDihedral(t *testing.T) {
	for _, test := range dhdrltests {
		i, j, k, l := Xyz{1, 0, 0}, Xyz{0, 0, 0}, Xyz{0, 0, 1}, test.l
		want := test.deg * math.Pi / 180
		for range 3 {
			if d := Dihedral(i, j, k, l); angleDiff(d, want) > 0.00001 {
				t.Errorf("%v %v %v %v got %f want %f", i, j, k, l, d*180/math.Pi, test.deg)
			}
			i, j, k, l = permuteXyz(i), permuteXyz(j), permuteXyz(k), permuteXyz(l)
		}
		// Reversing the order gives the same angle
		if d := Dihedral(l, k, j, i); angleDiff(d, want) > 0.00001 {
			t.Errorf("reversed %v got %f", test.l, d*180/math.Pi)
		}
	}
}

// zigY puts neighbours in zigzag 3.8 A apart when x steps by 3.
var zigY = math.Sqrt(3.8*3.8 - 9)

// zigzag is a flat trace with 3.8 A between neighbours.
// The last A atom is too far away to be bonded, then there is a B.
func zigzag() []*pdb.Atom {
	var atoms []*pdb.Atom
	for i := range 5 {
		atoms = append(atoms, &pdb.Atom{Name: "CA", ChainID: "A", ResSeq: i + 1,
			X: 3 * float64(i), Y: zigY * float64(i%2)})
	}
	atoms = append(atoms, &pdb.Atom{Name: "CA", ChainID: "A", ResSeq: 6, X: 30})
	atoms = append(atoms, &pdb.Atom{Name: "CA", ChainID: "B", ResSeq: 1, X: 33.8})
	return atoms
}

func TestCaGeometry(t *testing.T) {
	trace := zigzag()
	geo := CaGeometry(trace)
	if len(geo) != len(trace) {
		t.Fatalf("got %d", len(geo))
	}
	wantAngle := math.Acos((-9 + zigY*zigY) / (9 + zigY*zigY))
	for i, g := range geo {
		if g.Atom != trace[i] {
			t.Errorf("%d: wrong atom", i)
		}
		wantBreak := i == 0 || i == 5 || i == 6
		if g.Break != wantBreak {
			t.Errorf("%d: break %v", i, g.Break)
		}
		if wantBreak != math.IsNaN(g.Bond) {
			t.Errorf("%d: bond %f", i, g.Bond)
		}
		if !wantBreak && math.Abs(g.Bond-3.8) > 0.001 {
			t.Errorf("%d: bond %f", i, g.Bond)
		}
		if i >= 1 && i <= 3 {
			if notApproxEqual(g.Angle, wantAngle) {
				t.Errorf("%d: angle %f want %f", i, g.Angle, wantAngle)
			}
		} else if !math.IsNaN(g.Angle) {
			t.Errorf("%d: angle %f should be NaN", i, g.Angle)
		}
		if i == 1 || i == 2 {
			if angleDiff(g.Dihedral, math.Pi) > 0.00001 {
				t.Errorf("%d: flat trace gave dihedral %f", i, g.Dihedral)
			}
		} else if !math.IsNaN(g.Dihedral) {
			t.Errorf("%d: dihedral %f should be NaN", i, g.Dihedral)
		}
	}
	if len(CaGeometry(nil)) != 0 {
		t.Error("geometry from nothing")
	}
}

func TestDistMatrix(t *testing.T) {
	trace := zigzag()[:5]
	dm := DistMatrix(trace)
	if r, c := dm.Size(); r != 5 || c != 5 {
		t.Fatalf("size %d %d", r, c)
	}
	for i := range trace {
		if dm.Mat[i][i] != 0 {
			t.Errorf("diagonal %d is %f", i, dm.Mat[i][i])
		}
		for j := range trace {
			if dm.Mat[i][j] != dm.Mat[j][i] {
				t.Errorf("not symmetric at %d %d", i, j)
			}
		}
	}
	if notApproxEqual(float64(dm.Mat[0][1]), 3.8) || notApproxEqual(float64(dm.Mat[0][2]), 6) {
		t.Errorf("distances %f %f", dm.Mat[0][1], dm.Mat[0][2])
	}
}

func TestContactMap(t *testing.T) {
	trace := zigzag()[:5]
	cm := ContactMap(DistMatrix(trace), 4)
	for i := range trace {
		if cm.Mat[i][i] != 1 {
			t.Errorf("diagonal %d", i)
		}
	}
	if cm.Mat[0][1] != 1 || cm.Mat[1][0] != 1 || cm.Mat[0][2] != 0 {
		t.Errorf("contacts %v", cm.Mat)
	}
	want := []int{1, 2, 2, 2, 1}
	if got := ContactsPerAtom(cm); !slices.Equal(got, want) {
		t.Errorf("per atom got %v want %v", got, want)
	}
	if got := ContactsPerAtom(ContactMap(DistMatrix(trace), 100)); !slices.Equal(got, []int{4, 4, 4, 4, 4}) {
		t.Errorf("everything in contact gave %v", got)
	}
}

// CountContacts has to agree with the matrix version.
func TestCountContacts(t *testing.T) {
	trace := zigzag()
	for _, cutoff := range []float64{0, 4, 6.5, 100} {
		nmat := 0
		for _, n := range ContactsPerAtom(ContactMap(DistMatrix(trace), cutoff)) {
			nmat += n
		}
		if got := CountContacts(trace, cutoff); got != nmat/2 {
			t.Errorf("cutoff %g: got %d, matrix says %d", cutoff, got, nmat/2)
		}
	}
	if n := CountContacts(trace[:5], 4); n != 4 {
		t.Errorf("got %d contacts want 4", n)
	}
	if n := CountContacts(nil, 4); n != 0 {
		t.Errorf("%d contacts from nothing", n)
	}
}
