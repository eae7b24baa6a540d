package ssplot

import (
	"image"

	"github.com/andrew-torda/pdbmodel/pdb"
)

var OutName = outName

// CellCenter says where the middle of a residue's cell is.
func CellCenter(m *pdb.Model, flags *CmdFlag, ichain, ires int) (image.Point, error) {
	l, err := newLayout(m, "", flags)
	if err != nil {
		return image.Point{}, err
	}
	r := l.cell(ichain, ires)
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2), nil
}
