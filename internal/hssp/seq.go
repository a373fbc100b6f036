// Package hssp derives homology statistics from a multiple sequence
// alignment and writes them as a fixed width HSSP file: per hit identity
// and gap statistics, per residue occupancy, amino acid distribution,
// entropy and conservation weights, and the insertion list.
package hssp

import (
	"math"
	"regexp"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/jglaser/xssp/internal/mas"
	"github.com/jglaser/xssp/internal/mat"
)

// profileLetters orders the residues the way the HSSP profile columns
// do. residueIndex maps bytes straight into this order.
const profileLetters = "VLIMFWYGAPSTCHRKQEND"

const (
	codeInvalid = -1
	codeGap     = -2
	codeAmbig   = -3 // B, Z and X: legal but never similar
)

var (
	residueIndex [256]int8

	// dayhoff holds the Dayhoff similarity of two residues, the PAM250
	// exchange score scaled so that the best score is 1.5.
	dayhoff [20][20]float32

	// homologyThreshold[L-10] is the minimum fraction of identical
	// residues for an alignment of length L to count as homologous,
	// following Sander and Schneider. Alignments shorter than 10 or
	// longer than 80 use the nearest table entry.
	homologyThreshold [71]float32
)

func init() {
	for i := range residueIndex {
		residueIndex[i] = codeInvalid
	}
	for i := 0; i < len(profileLetters); i++ {
		c := profileLetters[i]
		residueIndex[c] = int8(i)
		residueIndex[c+'a'-'A'] = int8(i)
	}
	for _, c := range []byte("-~._ ") {
		residueIndex[c] = codeGap
	}
	for _, c := range []byte("BZXbzx") {
		residueIndex[c] = codeAmbig
	}

	pam := mat.MustLoad("PAM250")
	for i := 0; i < 20; i++ {
		ri, _ := mat.EncodeLetter(profileLetters[i])
		for j := 0; j < 20; j++ {
			rj, _ := mat.EncodeLetter(profileLetters[j])
			dayhoff[i][j] = float32(pam.Score(ri, rj)) * 1.5 / 17
		}
	}

	for i := range homologyThreshold {
		l := float64(i + 10)
		homologyThreshold[i] = float32(290.15 * math.Pow(l, -0.562) / 100)
	}
}

func isGap(c byte) bool { return residueIndex[c] == codeGap }

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Insertion is a stretch of hit residues absent from the query. Seq is
// bracketed by the lower cased residues flanking the insertion point.
type Insertion struct {
	Ipos, Jpos int
	Seq        string
}

// Seq is one row of the alignment together with the statistics Update
// derives for it against the query row.
type Seq struct {
	ID, ID2, Acc, PDB, Desc string

	Ifir, Ilas int // alignment range in the query, 1 based
	Jfir, Jlas int // alignment range in the hit, from the id suffix

	Length     int // alignment length excluding gap columns (LALI)
	Identical  int
	Similar    int
	Begin, End int // column span of the alignment
	Gaps       int // number of gap stretches (NGAP)
	Gapn       int // total gapped columns (LGAP)

	Insertions []Insertion
	Score      float32
	Pruned     bool

	seq    []byte
	seqlen int // residue count of the stored hit sequence
}

var (
	reUniprot = regexp.MustCompile(`^(?:tr|sp)\|([0-9A-Za-z]+)\|(.+)$`)
	reRange   = regexp.MustCompile(`^([-a-zA-Z0-9_]+)/(\d+)-(\d+)$`)
)

// NewSeq registers a named sequence. UniProt style ids surrender their
// accession, jackhmmer style id/first-last suffixes their hit range.
func NewSeq(id, desc string) *Seq {
	s := &Seq{ID: id, ID2: id, Desc: desc}

	if m := reUniprot.FindStringSubmatch(s.ID2); m != nil {
		s.Acc = m[1]
		s.ID2 = m[2]
	}
	if m := reRange.FindStringSubmatch(s.ID2); m != nil {
		s.Jfir, _ = strconv.Atoi(m[2])
		s.Jlas, _ = strconv.Atoi(m[3])
		s.ID2 = m[1]
	}

	return s
}

// Append extends the stored sequence with another alignment block.
func (s *Seq) Append(block string) {
	s.seq = append(s.seq, block...)
	s.End = len(s.seq)
}

// Len returns the stored alignment width.
func (s *Seq) Len() int { return len(s.seq) }

// Lseq approximates the full length of the hit protein. Without the
// source databank the best available value is the stored residue count,
// or the claimed hit range end when that reaches further.
func (s *Seq) Lseq() int {
	if s.Jlas > s.seqlen {
		return s.Jlas
	}
	return s.seqlen
}

// Update walks the hit against the query row and rebuilds all alignment
// statistics: the residue ranges, identity and similarity counts, gap
// statistics and the insertion list. Insertions are marked in place by
// lower casing their bracketing residues; columns outside the aligned
// span are blanked and deletions shown as dots.
func (s *Seq) Update(q *Seq) error {
	if len(s.seq) != len(q.seq) {
		return mas.Dataf("alignment width of %s differs from the query", s.ID)
	}

	ipos, jpos := 1, s.Jfir
	if jpos == 0 {
		jpos = 1
	}

	sgapf, qgapf := false, false
	gapn, gaps := 0, 0
	var ins Insertion

	s.Ifir, s.Ilas, s.Similar, s.Identical, s.Gapn, s.Gaps = 0, 0, 0, 0, 0, 0
	s.Length, s.seqlen = 0, 0
	s.Insertions = nil
	s.Begin, s.End = -1, 0

	length := 0

	for i := 0; i < len(q.seq); i++ {
		qgap := isGap(q.seq[i])
		sgap := isGap(s.seq[i])

		if qgap && sgap {
			continue
		}

		// only grows once the alignment has started
		if length > 0 {
			length++
		}

		if !sgap {
			s.seqlen++
		}

		if sgap {
			if !(sgapf || qgapf) {
				gaps++
			}
			sgapf = true
			gapn++
			ipos++
			continue
		} else if qgap {
			if !qgapf {
				g := i - 1
				for g > 0 && isGap(s.seq[g]) {
					g--
				}
				if g < 0 {
					g = 0
				}
				s.seq[g] = lower(s.seq[g])
				ins = Insertion{Ipos: ipos, Jpos: jpos, Seq: string(s.seq[g])}
			}
			ins.Seq += string(s.seq[i])

			if !(sgapf || qgapf) {
				gaps++
			}
			qgapf = true
			gapn++
			jpos++
		} else {
			if qgapf {
				s.seq[i] = lower(s.seq[i])
				ins.Seq += string(s.seq[i])
				s.Insertions = append(s.Insertions, ins)
			}

			sgapf = false
			qgapf = false

			s.Ilas = ipos
			if s.Ifir == 0 { // the alignment starts here
				s.Ifir = ipos
				length = 1
			} else {
				s.Gapn += gapn
				s.Gaps += gaps
				s.Length = length
			}

			gaps = 0
			gapn = 0

			ipos++
			jpos++
		}

		if q.seq[i] == s.seq[i] {
			s.Identical++
		}

		rq := residueIndex[q.seq[i]]
		if rq == codeInvalid {
			return mas.Formatf("invalid letter in query sequence (%c)", q.seq[i])
		}
		rs := residueIndex[s.seq[i]]
		if rs == codeInvalid {
			return mas.Formatf("invalid letter in hit sequence (%c)", s.seq[i])
		}
		if rq >= 0 && rs >= 0 && dayhoff[rq][rs] >= 0 {
			s.Similar++
		}

		if s.Begin < 0 {
			s.Begin = i
		}
		s.End = i + 1
	}

	if s.Begin < 0 {
		s.Begin, s.End = 0, 0
	} else {
		for i := range s.seq {
			if i < s.Begin || i >= s.End {
				s.seq[i] = ' '
			} else if isGap(s.seq[i]) {
				s.seq[i] = '.'
			}
		}
	}

	if s.Length > 0 {
		s.Score = float32(s.Identical) / float32(s.Length)
	} else {
		s.Score = 0
	}
	return nil
}

// UpdateAll runs Update for every hit in the alignment, fanned out over
// workers goroutines. The first error encountered wins.
func UpdateAll(msa []*Seq, workers int) error {
	if workers < 1 {
		workers = 1
	}

	q := msa[0]
	jobs := make(chan *Seq, workers)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var first error

	for t := 0; t < workers; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				mu.Lock()
				stop := first != nil
				mu.Unlock()
				if stop {
					// first error wins, drain without working
					continue
				}

				if err := s.Update(q); err != nil {
					mu.Lock()
					if first == nil {
						first = err
					}
					mu.Unlock()
				}
			}
		}()
	}

	for _, s := range msa[1:] {
		jobs <- s
	}
	close(jobs)
	wg.Wait()

	return first
}

// Drop reports whether the hit scores below the length dependent
// homology threshold, shifted up by cutoff.
func (s *Seq) Drop(cutoff float32) bool {
	ix := max(10, min(s.Length, 80)) - 10

	drop := s.Score < homologyThreshold[ix]+cutoff
	if drop {
		log.Tracef("dropping %s because identity %.2f is below threshold %.2f",
			s.ID, s.Score, homologyThreshold[ix])
	}
	return drop
}
