// Package zwrap takes a file pointer and, if the contents are gzipped,
// wraps it so that reads are decompressed. Close shuts the decompressor,
// then the underlying file.
// Most of the PDB is distributed as .ent.gz, so this sits under pdbfile.
package zwrap

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
)

// gzip streams start with these two bytes.
var gzMagic = [2]byte{0x1f, 0x8b}

// IsGzip says if b starts like a gzip stream.
func IsGzip(b []byte) bool {
	return len(b) >= len(gzMagic) && b[0] == gzMagic[0] && b[1] == gzMagic[1]
}

// FpGzip is what we return. If zrdr is nil, the data was not
// compressed and we read straight from src.
type FpGzip struct {
	fp   io.Closer
	src  io.Reader
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying file.
func (fc *FpGzip) Close() error {
	var zerr error
	if fc.zrdr != nil {
		zerr = fc.zrdr.Close()
	}
	return errors.Join(zerr, fc.fp.Close())
}

// Read makes sure we read from the decompressed stream, if there is one.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.src.Read(p)
}

// Compressed says if we are decompressing.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap assumes fp is gzipped. If it is not, the error from gzip comes
// back. fp is still open then, and it is the caller's job to close it.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, src: fp, zrdr: zrdr}, nil
}

// WrapMaybe peeks at the first bytes to decide if fp is compressed and
// wraps it if necessary. Unlike Wrap, it does not need to seek back, so
// it works on pipes and http bodies too.
// An empty input is not an error. It just gives nothing to read.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	brdr := bufio.NewReader(fp)
	magic, err := brdr.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !IsGzip(magic) {
		return &FpGzip{fp: fp, src: brdr}, nil
	}
	zrdr, err := gzip.NewReader(brdr)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, src: brdr, zrdr: zrdr}, nil
}
