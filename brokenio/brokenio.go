// Package brokenio wraps an io.ReadCloser so that it misbehaves.
// We use it to check what the PDB reader does when the stream under it
// goes wrong: a file that turns out empty, a download that dies half way,
// a gzip stream that is damaged.
//
// Typical use: wrap whatever you would have read from
//
//	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(s)))
//	rdr.SetFailAfter(100, io.ErrUnexpectedEOF)
//
// and hand rdr to the code under test.
//
// There are two kinds of breakage. Deterministic (SetFailAfter) is what
// tests want. Random (SetProbFail, SetProbZeroFile) is for hammering a
// program by hand.
package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is what we return when a random failure is triggered.
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdrClsr behaves like the reader it wraps, until it decides not to.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser
	failAfter    int   // fail once this many bytes have gone through. <0 means never
	failErr      error // returned by the deterministic failure
	probZeroFile float32
	probFail     float32
	nCalled      int
	nByte        int
	verbose      bool
}

// NewReader wraps rIn. Until one of the Set functions is called, nothing
// breaks.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, failAfter: -1}
}

// SetFailAfter makes the reader hand over exactly n bytes and then return
// err on every later call. If err is nil, ErrBroken is used.
func (r *BrknRdrClsr) SetFailAfter(n int, err error) {
	if err == nil {
		err = ErrBroken
	}
	r.failAfter, r.failErr = n, err
}

// SetProbZeroFile sets the chance that the first read says io.EOF and
// nothing else. This is what a zero length file looks like. The value
// should be from 0 to 1 and is not checked.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the chance that any one read returns ErrBroken.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetVerbose says if Close should print how much went through.
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// NByte is the number of bytes handed over so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// Read passes the call on to the wrapped reader, apart from when it has
// been told to break.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	first := r.nCalled == 0
	r.nCalled++
	if first && r.probZeroFile > 0 && rand.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	if r.probFail > 0 && rand.Float32() < r.probFail {
		return 0, ErrBroken
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, r.failErr
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close closes the wrapped reader.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdrOrig.Close()
}
