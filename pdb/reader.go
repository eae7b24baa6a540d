package pdb

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"log"
)

// Record names. They are the first six columns of a line and are compared
// exactly, trailing blanks included.
const (
	tagAtom   = "ATOM  "
	tagHetatm = "HETATM"
	tagConect = "CONECT"
	tagHelix  = "HELIX "
	tagSheet  = "SHEET "
	tagEndmdl = "ENDMDL"
	tagLen    = 6
)

// maxLine is the longest line we can cope with. Longer lines are a read
// error. Nothing sane comes near it, but junk REMARKs can be far longer
// than bufio's default of 64k.
const maxLine = 64 * 1024 * 1024

// Reader gets models, one after the other, from a stream of PDB lines.
// It remembers where it is in the stream, so do not share one between
// goroutines.
type Reader struct {
	scnr *bufio.Scanner
	n    int // line number, for messages
	log  *log.Logger
	err  error // once we have had a read error, we keep returning it
}

// NewReader makes a Reader. The caller decides what r is: a file,
// something decompressed, a string in a test.
func NewReader(r io.Reader) *Reader {
	scnr := bufio.NewScanner(r)
	scnr.Buffer(make([]byte, 0, 64*1024), maxLine)
	scnr.Split(scanAnyLines)
	return &Reader{
		scnr: scnr,
		log:  log.New(io.Discard, "", 0),
	}
}

// SetLogger sends complaints about skipped records to l.
// A nil logger switches them off again.
func (r *Reader) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	r.log = l
}

// Line returns the number of lines read so far.
func (r *Reader) Line() int { return r.n }

// Read returns the next model. It reads lines until ENDMDL or the end of
// input. ENDMDL only counts once we have seen something, so a file that
// starts with a lonely ENDMDL does not give an empty model.
// When there is nothing left, the model is nil and the error is io.EOF.
// A failure of the underlying reader comes back as a *ReadError.
func (r *Reader) Read() (*Model, error) {
	if r.err != nil {
		return nil, r.err
	}
	m := new(Model)
	found := false
	bioAcc, symAcc := newMatrixAcc(), newMatrixAcc()

	for {
		if !r.scnr.Scan() {
			if err := r.scnr.Err(); err != nil {
				r.err = &ReadError{Line: r.n, Err: err}
				return nil, r.err
			}
			break
		}
		r.n++
		line := r.scnr.Text()
		tag := cols(line, 0, tagLen)
		if found && tag == tagEndmdl {
			break
		}

		switch tag {
		case tagAtom, tagHetatm:
			a, ok := decodeAtom(line)
			if !ok {
				r.log.Printf("line %d: %s record too short (%d)", r.n, tag, len(line))
				continue
			}
			if tag == tagAtom {
				m.Atoms = append(m.Atoms, a)
			} else {
				m.HetAtoms = append(m.HetAtoms, a)
			}
			found = true
		case tagConect:
			m.Connections = append(m.Connections, decodeConnections(line)...)
			found = true
		case tagHelix:
			if h, ok := decodeHelix(line); ok {
				m.Helixes = append(m.Helixes, h)
				found = true
			} else {
				r.log.Printf("line %d: HELIX record too short (%d)", r.n, len(line))
			}
		case tagSheet:
			if s, ok := decodeStrand(line); ok {
				m.Strands = append(m.Strands, s)
				found = true
			} else {
				r.log.Printf("line %d: SHEET record too short (%d)", r.n, len(line))
			}
		default:
			r.matrixLine(line, m, &bioAcc, &symAcc)
		}
	}

	if !found {
		return nil, io.EOF
	}
	m.build()
	return m, nil
}

// matrixLine looks after BIOMT and SMTRY rows. Each kind has its own
// accumulator, so the two can never be mixed up.
func (r *Reader) matrixLine(line string, m *Model, bioAcc, symAcc *matrixAcc) {
	kind := matrixKindOf(line)
	if kind == noMatrix {
		return
	}
	row, vals, ok := decodeMatrixRow(line)
	if !ok {
		r.log.Printf("line %d: bad matrix row number %q", r.n, cols(line, matrixRowCol, matrixRowCol+1))
		return
	}
	switch kind {
	case bioMatrix:
		if mat, done := bioAcc.add(row, vals); done {
			m.BioMatrixes = append(m.BioMatrixes, mat)
		}
	case symMatrix:
		if mat, done := symAcc.add(row, vals); done {
			m.SymMatrixes = append(m.SymMatrixes, mat)
		}
	}
}

// ReadAll reads every model up to the end of the input.
// If there is a read error, the models read so far are returned with it.
func (r *Reader) ReadAll() ([]*Model, error) {
	var models []*Model
	for m, err := range r.All() {
		if err != nil {
			return models, err
		}
		models = append(models, m)
	}
	return models, nil
}

// All lets you range over the models. It stops quietly at the end of input.
// A read error is handed over once and then the sequence stops.
// It can only be walked once, since the lines are gone after reading.
func (r *Reader) All() iter.Seq2[*Model, error] {
	return func(yield func(*Model, error) bool) {
		for {
			m, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(m, err) || err != nil {
				return
			}
		}
	}
}

// scanAnyLines is like bufio.ScanLines, but also accepts a lone \r as the
// end of a line, as in files that have been through old Macs.
func scanAnyLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		return 0, nil, nil // a \r at the end of the buffer. Need to see the next byte.
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
