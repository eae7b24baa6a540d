package pdb

import "fmt"

// ResidueType is the secondary structure we give a residue.
type ResidueType byte

const (
	SSUnknown ResidueType = iota
	SSCoil
	SSHelix
	SSStrand
)

func (typ ResidueType) String() string {
	switch typ {
	case SSUnknown:
		return "Unknown"
	case SSCoil:
		return "Coil"
	case SSHelix:
		return "Helix"
	case SSStrand:
		return "Strand"
	}
	return fmt.Sprintf("ResidueType(%d)", byte(typ))
}

// Residue is a run of neighbouring atoms with the same residue number.
// ResName, ChainID and ResSeq come from the first atom.
type Residue struct {
	ResName     string
	ChainID     string
	ResSeq      int
	Atoms       []*Atom
	AtomsByName map[string]*Atom // if a name is repeated, the last atom wins
	Type        ResidueType
}

// Atom returns the atom with this name, or nil.
func (r *Residue) Atom(name string) *Atom { return r.AtomsByName[name] }

// newResidue makes a residue from a group of atoms. It returns nil if there
// are no atoms.
func newResidue(atoms []*Atom) *Residue {
	if len(atoms) == 0 {
		return nil
	}
	r := &Residue{
		ResName:     atoms[0].ResName,
		ChainID:     atoms[0].ChainID,
		ResSeq:      atoms[0].ResSeq,
		Atoms:       atoms,
		AtomsByName: make(map[string]*Atom, len(atoms)),
		Type:        SSCoil,
	}
	for _, a := range atoms {
		r.AtomsByName[a.Name] = a
	}
	return r
}

// Chain is a run of neighbouring residues with the same chain ID.
type Chain struct {
	ChainID  string
	Residues []*Residue
}

func newChain(residues []*Residue) *Chain {
	if len(residues) == 0 {
		return nil
	}
	return &Chain{ChainID: residues[0].ChainID, Residues: residues}
}

// Atoms returns the atoms of the chain in file order.
func (c *Chain) Atoms() []*Atom {
	n := 0
	for _, r := range c.Residues {
		n += len(r.Atoms)
	}
	ret := make([]*Atom, 0, n)
	for _, r := range c.Residues {
		ret = append(ret, r.Atoms...)
	}
	return ret
}

// residuesForAtoms walks along the atoms and starts a new residue every time
// the residue number changes from the atom before. We do not collect equal
// numbers from all over the file. If numbering goes 1 1 2 2 1 1, that is
// three residues.
// Then secondary structure is assigned. Helices first, then strands, so a
// residue claimed by both ends up as a strand.
func residuesForAtoms(atoms []*Atom, helixes []*Helix, strands []*Strand) []*Residue {
	var residues []*Residue
	var group []*Atom
	previous := 0
	for _, a := range atoms {
		if a.ResSeq != previous && len(group) > 0 {
			residues = append(residues, newResidue(group))
			group = nil
		}
		group = append(group, a)
		previous = a.ResSeq
	}
	if len(group) > 0 {
		residues = append(residues, newResidue(group))
	}

	for _, r := range residues {
		for _, h := range helixes {
			if h.Contains(r) {
				r.Type = SSHelix
			}
		}
		for _, s := range strands {
			if s.Contains(r) {
				r.Type = SSStrand
			}
		}
	}
	return residues
}

// chainsForResidues does the same neighbour grouping as residuesForAtoms,
// but on chain ID.
func chainsForResidues(residues []*Residue) []*Chain {
	var chains []*Chain
	var group []*Residue
	previous := ""
	for _, r := range residues {
		if r.ChainID != previous && len(group) > 0 {
			chains = append(chains, newChain(group))
			group = nil
		}
		group = append(group, r)
		previous = r.ChainID
	}
	if len(group) > 0 {
		chains = append(chains, newChain(group))
	}
	return chains
}
