package pdb_test

import (
	"fmt"
	"strings"
)

// atomLine writes an 80 column ATOM or HETATM record.
func atomLine(tag string, serial int, name, resName, chain string, resSeq int,
	x, y, z float64) string {
	return fmt.Sprintf("%-6s%5d %-4s%1s%3s %1s%4d%1s   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%2s",
		tag, serial, name, "", resName, chain, resSeq, "", x, y, z, 1.0, 20.0,
		strings.TrimSpace(name)[:1], "")
}

// Real looking records, checked column by column.
const (
	helixLine  = "HELIX    1  HA GLY A   86  GLY A   94  1                                   9    "
	sheetLine  = "SHEET    2   A 5 THR A 107  ARG A 110 -1  N  THR A 107   O  ARG A 110 "
	conectLine = "CONECT  413  412  414    0  415"
	biomt1     = "REMARK 350   BIOMT1   1  1.000000  0.000000  0.000000        0.00000"
	biomt2     = "REMARK 350   BIOMT2   1  0.000000  1.000000  0.000000        0.00000"
	biomt3     = "REMARK 350   BIOMT3   1  0.000000  0.000000  1.000000        0.00000"
	smtry1     = "REMARK 290   SMTRY1   2 -1.000000  0.000000  0.000000       10.00000"
	smtry2     = "REMARK 290   SMTRY2   2  0.000000 -1.000000  0.000000        5.00000"
	smtry3     = "REMARK 290   SMTRY3   2  0.000000  0.000000  1.000000       12.50000"
)

// Two records as written by programs that strip trailing blanks (78 columns).
const (
	shortN  = "ATOM      1  N   ALA A   1      11.104  13.207   2.052  1.00 20.00           N"
	shortCA = "ATOM      2  CA  ALA A   1      12.560  13.282   2.068  1.00 20.00           C"
)

// residueLines makes ATOM lines with the given residue numbers, all on chain,
// named CA.
func residueLines(chain string, seqs ...int) []string {
	ret := make([]string, len(seqs))
	for i, s := range seqs {
		ret[i] = atomLine("ATOM", i+1, " CA ", "GLY", chain, s, float64(i), 0, 0)
	}
	return ret
}

func joinLines(lines ...string) string { return strings.Join(lines, "\n") + "\n" }
