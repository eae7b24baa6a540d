package pdb

import "strconv"

// ReadError is returned when the underlying reader fails. Broken records are
// not errors. They are skipped. This is only for the stream itself.
type ReadError struct {
	Line int   // last line successfully read
	Err  error // what the io.Reader said
}

func (e *ReadError) Error() string {
	return "pdb: reading after line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }
