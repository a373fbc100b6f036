package align

import (
	"github.com/jglaser/xssp/internal/mas"
	"github.com/jglaser/xssp/internal/mat"
	"github.com/jglaser/xssp/internal/seqio"
)

// Entry is one sequence being aligned. Groups share entries by pointer, so
// a gap inserted through one group member is seen by every holder of the
// entry. Positions, when present, carry anchor numbers per column and are
// kept in lockstep with the sequence, as is the secondary structure string.
type Entry struct {
	Nr        int
	ID        string
	Seq       []mat.Residue
	Positions []int16
	SS        []byte
	Weight    float32
}

// NewEntry encodes a residue string into a fresh entry with weight one.
func NewEntry(nr int, id, seq string) (*Entry, error) {
	s, err := mat.Encode(seq)
	if err != nil {
		return nil, err
	}
	return &Entry{Nr: nr, ID: id, Seq: s, Weight: 1}, nil
}

// FromRecords converts parsed sequence records into entries, numbering them
// in input order. Gaps in the input are dropped; the aligner reintroduces
// its own.
func FromRecords(recs []seqio.Record) ([]*Entry, error) {
	entries := make([]*Entry, 0, len(recs))
	for i, rec := range recs {
		e, err := NewEntry(i, rec.ID, rec.Seq)
		if err != nil {
			return nil, mas.Formatf("sequence %s: %v", rec.ID, err)
		}
		e.RemoveGaps()
		entries = append(entries, e)
	}
	return entries, nil
}

// Len returns the current sequence length, gaps included.
func (e *Entry) Len() int { return len(e.Seq) }

// InsertGap inserts a gap column before pos, appending when pos is past the
// end. A zero anchor and a blank structure code keep the side arrays in
// lockstep.
func (e *Entry) InsertGap(pos int) {
	if pos > len(e.Seq) {
		e.AppendGap()
		return
	}

	e.Seq = append(e.Seq, 0)
	copy(e.Seq[pos+1:], e.Seq[pos:])
	e.Seq[pos] = mat.GapCode

	if len(e.Positions) > 0 {
		e.Positions = append(e.Positions, 0)
		copy(e.Positions[pos+1:], e.Positions[pos:])
		e.Positions[pos] = 0
	}
	if len(e.SS) > 0 {
		e.SS = append(e.SS, 0)
		copy(e.SS[pos+1:], e.SS[pos:])
		e.SS[pos] = ' '
	}

	e.checkLockstep()
}

// AppendGap adds a gap column at the end of the sequence.
func (e *Entry) AppendGap() {
	e.Seq = append(e.Seq, mat.GapCode)
	if len(e.Positions) > 0 {
		e.Positions = append(e.Positions, 0)
	}
	if len(e.SS) > 0 {
		e.SS = append(e.SS, ' ')
	}

	e.checkLockstep()
}

// RemoveGaps strips all gap columns. Entries carrying anchor positions
// cannot do this, the arrays would go out of sync.
func (e *Entry) RemoveGaps() {
	if len(e.Positions) > 0 {
		panic("align: removing gaps from an entry with anchor positions")
	}

	out := e.Seq[:0]
	ss := e.SS[:0]
	for i, r := range e.Seq {
		if r == mat.GapCode {
			continue
		}
		out = append(out, r)
		if len(e.SS) > 0 {
			ss = append(ss, e.SS[i])
		}
	}
	e.Seq = out
	if len(e.SS) > 0 {
		e.SS = ss
	}
}

// DropPositions discards the anchor numbers, turning a constrained entry
// into a free one.
func (e *Entry) DropPositions() { e.Positions = nil }

// AttachSS sets secondary structure annotations, matching them to
// entries by ID. Entries without a matching record stay bare, annotated
// ones must match their sequence length.
func AttachSS(entries []*Entry, ss map[string]string) error {
	for _, e := range entries {
		s, ok := ss[e.ID]
		if !ok {
			continue
		}
		if len(s) != len(e.Seq) {
			return mas.Dataf("secondary structure for %s is %d long, sequence is %d", e.ID, len(s), len(e.Seq))
		}
		e.SS = []byte(s)
	}
	return nil
}

func (e *Entry) checkLockstep() {
	if len(e.Positions) > 0 && len(e.Positions) != len(e.Seq) {
		panic("align: positions out of lockstep with sequence")
	}
	if len(e.SS) > 0 && len(e.SS) != len(e.Seq) {
		panic("align: secondary structure out of lockstep with sequence")
	}
}
