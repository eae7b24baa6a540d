package pdb

import "strings"

// Matrix is a 4x4 transformation. Rows 0-2 come from three lines in the
// file. Row 3 is always 0 0 0 1.
type Matrix [4][4]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Apply transforms a point. The fourth column is the translation.
func (m *Matrix) Apply(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z + m[0][3],
		m[1][0]*x + m[1][1]*y + m[1][2]*z + m[1][3],
		m[2][0]*x + m[2][1]*y + m[2][2]*z + m[2][3]
}

// The two kinds of matrix we collect. In the file they look like
//   REMARK 350   BIOMT1   1  1.000000  0.000000  0.000000        0.00000
//   REMARK 290   SMTRY1   1  1.000000  0.000000  0.000000        0.00000
// The digit straight after BIOMT / SMTRY says which row (1, 2 or 3).
const (
	bioMatrixTag  = "REMARK 350   BIOMT"
	symMatrixTag  = "REMARK 290   SMTRY"
	matrixMinLen  = 24 // the line must be longer than 23
	matrixRowCol  = 18
	lastMatrixRow = 2
)

type matrixKind byte

const (
	noMatrix matrixKind = iota
	bioMatrix
	symMatrix
)

// matrixKindOf says if this line is a matrix row, and which kind.
func matrixKindOf(line string) matrixKind {
	if len(line) < matrixMinLen {
		return noMatrix
	}
	switch {
	case strings.HasPrefix(line, bioMatrixTag):
		return bioMatrix
	case strings.HasPrefix(line, symMatrixTag):
		return symMatrix
	}
	return noMatrix
}

// decodeMatrixRow gets the row index (0, 1 or 2) and the values.
// The last column is wide and may be missing. Then it is just zero.
func decodeMatrixRow(line string) (row int, vals [4]float64, ok bool) {
	row = intAt(line, matrixRowCol, matrixRowCol+1) - 1
	if row < 0 || row > lastMatrixRow {
		return 0, vals, false
	}
	vals[0] = floatAt(line, 23, 33)
	vals[1] = floatAt(line, 33, 43)
	vals[2] = floatAt(line, 43, 53)
	vals[3] = floatAt(line, 53, 68)
	return row, vals, true
}

// matrixAcc collects rows until it has all three.
type matrixAcc struct {
	cur Matrix
}

func newMatrixAcc() matrixAcc { return matrixAcc{cur: Identity()} }

// add puts a row in place. When the last row arrives, the finished matrix
// is returned with done set, and we start again from the identity.
func (acc *matrixAcc) add(row int, vals [4]float64) (m Matrix, done bool) {
	acc.cur[row] = vals
	if row != lastMatrixRow {
		return m, false
	}
	m = acc.cur
	acc.cur = Identity()
	return m, true
}
