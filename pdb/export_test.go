package pdb

// Export some internal functions for testing

var (
	Cols              = cols
	DecodeText        = decodeText
	DecodeInt         = decodeInt
	DecodeFloat       = decodeFloat
	DecodeAtom        = decodeAtom
	DecodeHelix       = decodeHelix
	DecodeStrand      = decodeStrand
	DecodeConnections = decodeConnections
	DecodeMatrixRow   = decodeMatrixRow
	ResiduesForAtoms  = residuesForAtoms
	ChainsForResidues = chainsForResidues
	ScanAnyLines      = scanAnyLines
)

func (m *Model) Build() { m.build() }
