package pdb

// Model is one frame from a file. Everything between the start of the file
// (or the last ENDMDL) and the next ENDMDL (or end of file).
//
// Atoms owns the atoms. Residues and Chains hold pointers into the same
// atoms, so if you take something out, take it out everywhere. Use
// RemoveChain for that.
type Model struct {
	Atoms       []*Atom
	HetAtoms    []*Atom
	Connections []Connection
	Helixes     []*Helix
	Strands     []*Strand
	BioMatrixes []Matrix // REMARK 350 biological assembly
	SymMatrixes []Matrix // REMARK 290 crystallographic symmetry
	Residues    []*Residue
	Chains      []*Chain
}

// build groups atoms into residues and residues into chains.
func (m *Model) build() {
	m.Residues = residuesForAtoms(m.Atoms, m.Helixes, m.Strands)
	m.Chains = chainsForResidues(m.Residues)
}

// RemoveChain takes out every atom, het atom, residue and chain with this
// chain ID. If there is no such chain, nothing happens.
func (m *Model) RemoveChain(chainID string) {
	keepAtom := func(a *Atom) bool { return a.ChainID != chainID }
	m.Atoms = filter(m.Atoms, keepAtom)
	m.HetAtoms = filter(m.HetAtoms, keepAtom)
	m.Residues = filter(m.Residues, func(r *Residue) bool { return r.ChainID != chainID })
	m.Chains = filter(m.Chains, func(c *Chain) bool { return c.ChainID != chainID })
}

// filter keeps the elements for which keep is true. It works in place.
func filter[T any](s []T, keep func(T) bool) []T {
	out := s[:0]
	for _, x := range s {
		if keep(x) {
			out = append(out, x)
		}
	}
	var zero T // let the garbage collector have the tail
	for i := len(out); i < len(s); i++ {
		s[i] = zero
	}
	return out
}

// Chain returns the first chain with this ID, or nil.
// Since grouping looks at neighbours, there may be more than one.
func (m *Model) Chain(chainID string) *Chain {
	for _, c := range m.Chains {
		if c.ChainID == chainID {
			return c
		}
	}
	return nil
}

// ChainIDs returns the chain IDs in the order they appear.
// An ID is only listed once.
func (m *Model) ChainIDs() (ret []string) {
	seen := make(map[string]bool)
	for _, c := range m.Chains {
		if !seen[c.ChainID] {
			seen[c.ChainID] = true
			ret = append(ret, c.ChainID)
		}
	}
	return ret
}

// CaTrace gives the alpha carbons, chain by chain, residue by residue.
// This is what a backbone tube or a physics model is built from.
// A residue without a CA is skipped.
func (m *Model) CaTrace() []*Atom {
	ret := make([]*Atom, 0, len(m.Residues))
	for _, c := range m.Chains {
		for _, r := range c.Residues {
			for _, a := range r.Atoms {
				if a.Name == "CA" {
					ret = append(ret, a)
				}
			}
		}
	}
	return ret
}

// Center is the mean of the atom coordinates. Het atoms are not included.
// With no atoms, it is the origin.
func (m *Model) Center() (c [3]float64) {
	if len(m.Atoms) == 0 {
		return c
	}
	for _, a := range m.Atoms {
		c[0] += a.X
		c[1] += a.Y
		c[2] += a.Z
	}
	n := float64(len(m.Atoms))
	c[0], c[1], c[2] = c[0]/n, c[1]/n, c[2]/n
	return c
}

// SecondaryCounts says how many residues there are of each type.
func (m *Model) SecondaryCounts() map[ResidueType]int {
	ret := make(map[ResidueType]int)
	for _, r := range m.Residues {
		ret[r.Type]++
	}
	return ret
}
