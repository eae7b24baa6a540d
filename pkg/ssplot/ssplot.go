// 12 Sep 2020

// Package ssplot draws the secondary structure of a protein as a strip
// per chain, one coloured cell per residue, and writes it as a png.
// Labels are drawn with freetype and the Go fonts, so there is nothing to
// install.
package ssplot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/andrew-torda/pdbmodel/pdb"
	"github.com/andrew-torda/pdbmodel/pdb/pdbfile"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// CmdFlag is the command line flags after parsing.
type CmdFlag struct {
	CellWidth int // pixels per residue
	RowHeight int // pixels per chain
}

// DfltFlags gives the settings if you do not want to think.
func DfltFlags() CmdFlag { return CmdFlag{CellWidth: 4, RowHeight: 20} }

// SSColors is how each kind of residue is painted.
var SSColors = map[pdb.ResidueType]color.RGBA{
	pdb.SSUnknown: {255, 255, 255, 255},
	pdb.SSCoil:    {190, 190, 190, 255},
	pdb.SSHelix:   {210, 40, 40, 255},
	pdb.SSStrand:  {240, 190, 0, 255},
}

const (
	fontSize = 12 // points, and at 72 dpi also pixels
	dpi      = 72
	margin   = 8
	lineH    = 18 // one line of text
	rowGap   = 6
	boxSize  = 10 // legend colour boxes
)

// legendTypes are the types in the legend, in order.
var legendTypes = []pdb.ResidueType{pdb.SSHelix, pdb.SSStrand, pdb.SSCoil}

var loadFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// layout says where everything goes.
type layout struct {
	cellW, rowH   int
	labelW        int // left of the cells
	rowsTop       int
	legendY       int // baseline of the legend
	width, height int
	face          font.Face
}

func textWidth(face font.Face, s string) int { return font.MeasureString(face, s).Ceil() }

func chainLabel(c *pdb.Chain) string {
	if c.ChainID == "" {
		return "Chain -"
	}
	return "Chain " + c.ChainID
}

func newLayout(m *pdb.Model, title string, flags *CmdFlag) (*layout, error) {
	if len(m.Chains) == 0 {
		return nil, errors.New("no chains to plot")
	}
	if flags.CellWidth < 1 || flags.RowHeight < 1 {
		return nil, fmt.Errorf("cell width %d and row height %d must be positive", flags.CellWidth, flags.RowHeight)
	}
	f, err := loadFont()
	if err != nil {
		return nil, err
	}
	l := &layout{cellW: flags.CellWidth, rowH: flags.RowHeight}
	l.face = truetype.NewFace(f, &truetype.Options{Size: fontSize, DPI: dpi})
	maxRes := 0
	for _, c := range m.Chains {
		l.labelW = max(l.labelW, textWidth(l.face, chainLabel(c)))
		maxRes = max(maxRes, len(c.Residues))
	}
	l.labelW += margin
	l.rowsTop = margin + lineH + rowGap
	l.legendY = l.rowsTop + len(m.Chains)*(l.rowH+rowGap) + lineH - rowGap
	l.height = l.legendY + margin + rowGap
	legendW := 0
	for _, typ := range legendTypes {
		legendW += boxSize + 4 + textWidth(l.face, typ.String()) + 2*margin
	}
	l.width = max(2*margin+l.labelW+maxRes*l.cellW, 2*margin+legendW, 2*margin+textWidth(l.face, title))
	return l, nil
}

// cell is where residue ires of chain ichain goes.
func (l *layout) cell(ichain, ires int) image.Rectangle {
	x := margin + l.labelW + ires*l.cellW
	y := l.rowsTop + ichain*(l.rowH+rowGap)
	return image.Rect(x, y, x+l.cellW, y+l.rowH)
}

// Plot draws the model. Nothing is written.
func Plot(m *pdb.Model, title string, flags *CmdFlag) (*image.RGBA, error) {
	l, err := newLayout(m, title, flags)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, l.width, l.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	f, _ := loadFont() // already loaded by newLayout
	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(f)
	ctx.SetFontSize(fontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.Black)

	txt := func(s string, x, y int) {
		if err == nil {
			_, err = ctx.DrawString(s, freetype.Pt(x, y))
		}
	}
	txt(title, margin, margin+lineH-4)
	for ic, c := range m.Chains {
		r := l.cell(ic, 0)
		txt(chainLabel(c), margin, r.Min.Y+l.rowH/2+fontSize/2-1)
		for ir, res := range c.Residues {
			draw.Draw(img, l.cell(ic, ir), image.NewUniform(SSColors[res.Type]), image.Point{}, draw.Src)
		}
	}
	x := margin
	for _, typ := range legendTypes {
		box := image.Rect(x, l.legendY-boxSize, x+boxSize, l.legendY)
		draw.Draw(img, box, image.NewUniform(SSColors[typ]), image.Point{}, draw.Src)
		x += boxSize + 4
		txt(typ.String(), x, l.legendY)
		x += textWidth(l.face, typ.String()) + 2*margin
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// outName makes 1abc.png from dir/1abc.pdb.gz.
func outName(infile string) string {
	s := filepath.Base(infile)
	if i := strings.IndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	return s + ".png"
}

// Mymain plots the first model from infile. If outfile is "", the name
// comes from the input file.
func Mymain(flags *CmdFlag, infile, outfile string) (err error) {
	f, err := pdbfile.Open(infile)
	if err != nil {
		return err
	}
	m, err := f.Read()
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: no model: %w", infile, err)
	}
	img, err := Plot(m, filepath.Base(infile), flags)
	if err != nil {
		return fmt.Errorf("%s: %w", infile, err)
	}
	if outfile == "" {
		outfile = outName(infile)
	}
	fp, err := os.Create(outfile)
	if err != nil {
		return err
	}
	defer func() {
		if e := fp.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return png.Encode(fp, img)
}
