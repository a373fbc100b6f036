package hssp

import (
	"fmt"
	"math"

	"github.com/jglaser/xssp/internal/mas"
)

// Residue carries the per position statistics of one query residue. A
// zero Letter marks a chain break, written as the exclamation row of
// the report.
type Residue struct {
	Letter byte
	Chain  byte
	Dssp   string
	SeqNr  int
	PdbNr  int
	Pos    int // column in the alignment

	Nocc, Ndel, Nins int
	Entropy          float32
	Consweight       float32
	Dist             [20]int
}

// NewResidue builds a residue record. The Dssp field is the 34 column
// DSSP line fragment between the residue number and the accessibility,
// with the pairing and flag columns blank.
func NewResidue(seqNr, pdbNr int, chain, letter, ss byte) *Residue {
	return &Residue{
		Letter:     letter,
		Chain:      chain,
		Dssp:       fmt.Sprintf("%5d %c %c  %c %7s%4d%4d %4d ", pdbNr, chain, letter, ss, "", 0, 0, 0),
		SeqNr:      seqNr,
		PdbNr:      pdbNr,
		Consweight: 1,
	}
}

// NewBreak builds a chain break marker.
func NewBreak(seqNr int) *Residue {
	return &Residue{SeqNr: seqNr, Consweight: 1}
}

// ssCode normalizes a secondary structure letter to its DSSP code,
// folding the common coil spellings into blank.
func ssCode(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	switch c {
	case 0, '-', '.', 'C':
		return ' '
	}
	return c
}

// BuildResidues derives the residue list from the non gap columns of
// the query row. ss, when given, assigns a secondary structure letter
// per query residue.
func BuildResidues(q *Seq, ss string) ([]*Residue, error) {
	var res []*Residue

	pdbNr := 0
	for i := 0; i < len(q.seq); i++ {
		if isGap(q.seq[i]) {
			continue
		}
		pdbNr++

		var s byte = ' '
		if ss != "" {
			if pdbNr > len(ss) {
				return nil, mas.Dataf("secondary structure is shorter than the query (%d residues)", len(ss))
			}
			s = ssCode(ss[pdbNr-1])
		}

		r := NewResidue(len(res)+1, pdbNr, 'A', q.seq[i], s)
		r.Pos = i
		res = append(res, r)
	}

	if ss != "" && len(ss) != pdbNr {
		return nil, mas.Dataf("secondary structure is %d long, query has %d residues", len(ss), pdbNr)
	}
	if len(res) == 0 {
		return nil, mas.Dataf("query sequence is empty")
	}
	return res, nil
}

// CalculateVariability fills the residue distribution, occupancy,
// entropy and the insertion and deletion counters from the hits
// aligned over this position.
func (r *Residue) CalculateVariability(q *Seq, hits []*Hit) {
	r.Dist = [20]int{}
	r.Entropy = 0

	ix := residueIndex[r.Letter]
	if ix < 0 {
		return
	}
	r.Dist[ix] = 1
	r.Nocc = 1
	r.Ndel, r.Nins = 0, 0

	// an insertion in a hit shows as lower case against a gap that
	// follows the query residue
	gap := r.Pos+1 < len(q.seq) && isGap(q.seq[r.Pos+1])

	for _, h := range hits {
		if h.Chain != r.Chain {
			continue
		}
		t := h.Seq

		if jx := residueIndex[t.seq[r.Pos]]; jx >= 0 {
			r.Nocc++
			r.Dist[jx]++
		}
		if r.Pos > t.Begin && r.Pos < t.End && isGap(t.seq[r.Pos]) {
			r.Ndel++
		}
		if gap && t.seq[r.Pos] >= 'a' && t.seq[r.Pos] <= 'y' {
			r.Nins++
		}
	}

	for a := 0; a < 20; a++ {
		freq := float64(r.Dist[a]) / float64(r.Nocc)
		r.Dist[a] = int(100*freq + 0.5)
		if freq > 0 {
			r.Entropy -= float32(freq * math.Log(freq))
		}
	}
}
