// Package pdb reads coordinates and annotation from files in the old,
// fixed column PDB format and builds a model of atoms, residues and chains.
//
// Only a few record types are looked at:
//   ATOM, HETATM   coordinates
//   CONECT         bonds, up to four per line
//   HELIX, SHEET   secondary structure ranges
//   REMARK 350 BIOMT and REMARK 290 SMTRY   transformation matrices
// Everything else is jumped over.
//
// The format is positional. Columns are not separated by anything, so a field
// is just a slice of the line. Numbers which cannot be read are quietly
// turned into zero. Real files are full of junk in numeric columns and we
// would rather have a zero than throw away the structure. Lines which are too
// short for their record type are skipped.
//
// A file may hold many models (NMR ensembles), each finished by ENDMDL.
// Make a Reader and call Read() repeatedly. Each call gives you the next
// model. When there is nothing more, you get io.EOF.
//
// Grouping of atoms into residues and of residues into chains is done by
// looking at neighbours. If the residue number changes, we start a new
// residue. If residue 1 comes back after residue 2, it is a new residue,
// not more of the old one.
package pdb
