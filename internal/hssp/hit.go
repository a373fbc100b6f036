package hssp

import (
	"sort"

	"github.com/jglaser/xssp/internal/mas"
)

// Hit is one accepted homologue of the query, positioned in query
// coordinates. Chain and Offset cover multi chain queries where the
// residue numbering of a later chain starts beyond the first.
type Hit struct {
	Seq    *Seq
	Chain  byte
	Nr     int
	Ifir   int
	Ilas   int
	Offset int

	Ide  float32 // fraction of identical residues over LALI
	Wsim float32 // fraction of similar residues over LALI
}

// NewHit wraps an updated sequence as a hit on the given chain.
func NewHit(s *Seq, chain byte, offset int) *Hit {
	h := &Hit{
		Seq:    s,
		Chain:  chain,
		Ifir:   s.Ifir + offset,
		Ilas:   s.Ilas + offset,
		Offset: offset,
	}
	if s.Length > 0 {
		h.Ide = float32(s.Identical) / float32(s.Length)
		h.Wsim = float32(s.Similar) / float32(s.Length)
	}
	return h
}

// less orders hits best first: by identity, then alignment length, then
// id, each descending.
func (h *Hit) less(o *Hit) bool {
	if h.Ide != o.Ide {
		return h.Ide > o.Ide
	}
	if h.Seq.Length != o.Seq.Length {
		return h.Seq.Length > o.Seq.Length
	}
	return h.Seq.ID2 > o.Seq.ID2
}

// rankHits sorts the hits best first, caps the list at maxHits and
// numbers the survivors. Sequences behind discarded hits are marked
// pruned so the conservation pass skips them.
func rankHits(hits []*Hit, maxHits int) ([]*Hit, error) {
	sort.Slice(hits, func(i, j int) bool { return hits[i].less(hits[j]) })

	if maxHits > 0 && len(hits) > maxHits {
		for _, h := range hits[maxHits:] {
			h.Seq.Pruned = true
		}
		hits = hits[:maxHits]
	}

	if len(hits) == 0 {
		return nil, mas.Dataf("no hits found or remaining")
	}

	for i, h := range hits {
		h.Nr = i + 1
	}
	return hits, nil
}
