package pdb

import (
	"strconv"
	"strings"
)

// cols returns line[start:end], but never panics. If the line is too short,
// we give back what there is, which may be nothing.
// Columns are counted from zero and end is exclusive, like any go slice.
func cols(line string, start, end int) string {
	if start < 0 || start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	if end < start {
		return ""
	}
	return line[start:end]
}

// asciiSpace is what C calls isspace. Anything else, including unicode
// spaces, is kept.
const asciiSpace = " \t\n\v\f\r"

func trimSpace(s string) string { return strings.Trim(s, asciiSpace) }

// decodeText removes leading and trailing white space.
func decodeText(field string) string {
	return trimSpace(field)
}

// decodeInt converts a field to an integer. Empty or broken fields give 0.
// Do not "fix" this. It is how broken PDB files get read.
func decodeInt(field string) int {
	s := trimSpace(field)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// decodeFloat is like decodeInt, but for float64.
func decodeFloat(field string) float64 {
	s := trimSpace(field)
	if s == "" {
		return 0
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return x
}

// The next three are what the record decoders call. They combine column
// slicing with conversion so there is exactly one place where the policy
// for broken fields lives.

func textAt(line string, start, end int) string { return decodeText(cols(line, start, end)) }
func intAt(line string, start, end int) int { return decodeInt(cols(line, start, end)) }
func floatAt(line string, start, end int) float64 { return decodeFloat(cols(line, start, end)) }
