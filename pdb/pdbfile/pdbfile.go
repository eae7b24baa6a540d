// Package pdbfile opens PDB files by name. It decides if a file is
// compressed, checks that it really is in the old PDB format and not
// mmCIF, and hands back a pdb.Reader on top of it.
// Uncompressed files are mapped into memory rather than read.
package pdbfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/pdbmodel/pdb"
	"github.com/andrew-torda/pdbmodel/pdb/zwrap"
	"github.com/edsrzf/mmap-go"
)

var (
	ErrMmcif         = errors.New("file is mmCIF, only PDB format is read")
	ErrUnknownFormat = errors.New("cannot recognise format")
)

type format byte

const (
	pdbFmt format = iota
	mmcifFmt
	unkFmt
)

// File is an open PDB file. Read models from it with the embedded Reader.
type File struct {
	*pdb.Reader
	name       string
	fp         *os.File
	mm         mmap.MMap // nil if compressed or empty
	zrdr       *zwrap.FpGzip
	compressed bool
}

// Open opens a file, which may be gzipped. An mmCIF file gives ErrMmcif,
// something we do not recognise gives ErrUnknownFormat. Errors carry the
// file name.
func Open(name string) (*File, error) {
	f, err := open(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

func open(name string) (*File, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var magic [2]byte
	n, err := fp.ReadAt(magic[:], 0)
	if err != nil && err != io.EOF {
		fp.Close()
		return nil, err
	}
	f := &File{name: name, fp: fp}
	var src io.Reader
	if zwrap.IsGzip(magic[:n]) {
		if f.zrdr, err = zwrap.Wrap(fp); err != nil {
			fp.Close()
			return nil, err
		}
		f.compressed = true
		src = f.zrdr
	} else {
		if f.mm, err = mapFile(fp); err != nil {
			fp.Close()
			return nil, err
		}
		src = bytes.NewReader(f.mm)
	}

	if err = f.checkFormat(); err != nil {
		f.Close()
		return nil, err
	}
	f.Reader = pdb.NewReader(src)
	return f, nil
}

// mapFile maps the whole file read-only. mmap refuses zero length, so an
// empty file gives a nil slice.
func mapFile(fp *os.File) (mmap.MMap, error) {
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		return nil, nil
	}
	return mmap.Map(fp, mmap.RDONLY, 0)
}

// checkFormat trusts the file name if it can. Otherwise it looks inside.
func (f *File) checkFormat() error {
	typ := formatByName(f.name)
	if typ == unkFmt {
		var err error
		if typ, err = f.formatByContents(); err != nil {
			return err
		}
	}
	switch typ {
	case mmcifFmt:
		return ErrMmcif
	case unkFmt:
		return ErrUnknownFormat
	}
	return nil
}

// formatByName looks at everything after the first dot. We cannot use
// filepath.Ext, since it would give .gz for 1abc.pdb.gz.
func formatByName(name string) format {
	s := filepath.Base(name)
	i := strings.IndexByte(s, '.')
	if i == -1 {
		return unkFmt
	}
	s = strings.ToLower(s[i+1:])
	switch {
	case strings.Contains(s, "cif"):
		return mmcifFmt
	case strings.Contains(s, "pdb"), strings.Contains(s, "ent"):
		return pdbFmt
	}
	return unkFmt
}

const maxTestLines = 5000

var (
	pdbWords   = []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "CRYST1", "MODEL ", "HETATM", "ATOM  "}
	mmcifWords = []string{"data_", "loop_", "_entry.id"}
)

// formatByContents reads up to maxTestLines and goes with the first line
// that looks like one format or the other.
func (f *File) formatByContents() (format, error) {
	var rdr io.Reader
	if f.compressed {
		fp, err := os.Open(f.name) // a second look, the first stream is kept for reading
		if err != nil {
			return unkFmt, err
		}
		defer fp.Close()
		zr, err := zwrap.Wrap(fp)
		if err != nil {
			return unkFmt, err
		}
		rdr = zr
	} else {
		rdr = bytes.NewReader(f.mm)
	}
	return sniff(rdr)
}

func sniff(rdr io.Reader) (format, error) {
	scnr := bufio.NewScanner(rdr)
	for i := 0; i < maxTestLines && scnr.Scan(); i++ {
		s := scnr.Text()
		for _, w := range mmcifWords {
			if strings.HasPrefix(s, w) {
				return mmcifFmt, nil
			}
		}
		for _, w := range pdbWords {
			if strings.HasPrefix(s, w) {
				return pdbFmt, nil
			}
		}
	}
	return unkFmt, scnr.Err()
}

// Name is the name the file was opened with.
func (f *File) Name() string { return f.name }

// Compressed says if the file was gzipped.
func (f *File) Compressed() bool { return f.compressed }

// Close unmaps or stops decompressing, then closes the file.
// Models already read stay valid. They do not point into the mapping.
func (f *File) Close() error {
	var errs []error
	if f.mm != nil {
		errs = append(errs, f.mm.Unmap())
	}
	if f.zrdr != nil {
		errs = append(errs, f.zrdr.Close()) // closes fp as well
	} else {
		errs = append(errs, f.fp.Close())
	}
	return errors.Join(errs...)
}

// ReadFile opens a file and reads every model from it.
func ReadFile(name string) ([]*pdb.Model, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	models, err := f.ReadAll()
	if err != nil {
		return models, fmt.Errorf("%s: %w", name, err)
	}
	return models, nil
}
