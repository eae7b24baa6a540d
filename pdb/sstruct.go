package pdb

const (
	helixMinLen  = 76
	strandMinLen = 70
	conectMinLen = 31
)

// Helix is a HELIX record. Only the chain and the residue range are used
// when building a model. The rest is carried along for whoever wants it.
type Helix struct {
	Serial      int
	HelixID     string
	InitResName string
	InitChainID string
	InitSeqNum  int
	InitICode   string
	EndResName  string
	EndChainID  string
	EndSeqNum   int
	EndICode    string
	Class       int
	Length      int
}

// Strand is one line of a SHEET record.
// The registration atoms (Cur..., Prev...) are read, but not used by us.
type Strand struct {
	Strand      int
	SheetID     string
	NumStrands  int
	InitResName string
	InitChainID string
	InitSeqNum  int
	InitICode   string
	EndResName  string
	EndChainID  string
	EndSeqNum   int
	EndICode    string
	Sense       int
	CurAtom     string
	CurResName  string
	CurChainID  string
	CurResSeq   int
	CurICode    string
	PrevAtom    string
	PrevResName string
	PrevChainID string
	PrevResSeq  int
	PrevICode   string
}

// Connection is a bond between two atoms given by serial number.
// Order does not matter and duplicates are kept.
type Connection struct {
	Serial1, Serial2 int
}

func decodeHelix(line string) (*Helix, bool) {
	if len(line) < helixMinLen {
		return nil, false
	}
	return &Helix{
		Serial:      intAt(line, 7, 10),
		HelixID:     textAt(line, 11, 14),
		InitResName: textAt(line, 15, 18),
		InitChainID: textAt(line, 19, 20),
		InitSeqNum:  intAt(line, 21, 25),
		InitICode:   textAt(line, 25, 26),
		EndResName:  textAt(line, 27, 30),
		EndChainID:  textAt(line, 31, 32),
		EndSeqNum:   intAt(line, 33, 37),
		EndICode:    textAt(line, 37, 38),
		Class:       intAt(line, 38, 40),
		Length:      intAt(line, 71, 76),
	}, true
}

func decodeStrand(line string) (*Strand, bool) {
	if len(line) < strandMinLen {
		return nil, false
	}
	return &Strand{
		Strand:      intAt(line, 7, 10),
		SheetID:     textAt(line, 11, 14),
		NumStrands:  intAt(line, 14, 16),
		InitResName: textAt(line, 17, 20),
		InitChainID: textAt(line, 21, 22),
		InitSeqNum:  intAt(line, 22, 26),
		InitICode:   textAt(line, 26, 27),
		EndResName:  textAt(line, 28, 31),
		EndChainID:  textAt(line, 32, 33),
		EndSeqNum:   intAt(line, 33, 37),
		EndICode:    textAt(line, 37, 38),
		Sense:       intAt(line, 38, 40),
		CurAtom:     textAt(line, 41, 45),
		CurResName:  textAt(line, 45, 48),
		CurChainID:  textAt(line, 49, 50),
		CurResSeq:   intAt(line, 50, 54),
		CurICode:    textAt(line, 54, 55),
		PrevAtom:    textAt(line, 56, 60),
		PrevResName: textAt(line, 60, 63),
		PrevChainID: textAt(line, 64, 65),
		PrevResSeq:  intAt(line, 65, 69),
		PrevICode:   textAt(line, 69, 70),
	}, true
}

// decodeConnections reads a CONECT line. One line can give up to four
// bonds, all from the same source atom. A partner serial of zero means
// there is nothing in that slot. A short line gives an empty slice.
func decodeConnections(line string) []Connection {
	if len(line) < conectMinLen {
		return nil
	}
	src := intAt(line, 6, 11)
	var ret []Connection
	for start := 11; start < conectMinLen; start += 5 {
		if partner := intAt(line, start, start+5); partner != 0 {
			ret = append(ret, Connection{Serial1: src, Serial2: partner})
		}
	}
	return ret
}

// contains says if a residue on chain chainID, numbered resSeq, falls in
// the inclusive range [init, end] on chain rangeChain.
func contains(rangeChain string, init, end int, chainID string, resSeq int) bool {
	return chainID == rangeChain && resSeq >= init && resSeq <= end
}

// Contains reports if the residue lies within the helix.
func (h *Helix) Contains(r *Residue) bool {
	return contains(h.InitChainID, h.InitSeqNum, h.EndSeqNum, r.ChainID, r.ResSeq)
}

// Contains reports if the residue lies within the strand.
func (s *Strand) Contains(r *Residue) bool {
	return contains(s.InitChainID, s.InitSeqNum, s.EndSeqNum, r.ChainID, r.ResSeq)
}
