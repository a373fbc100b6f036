package hssp

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/jglaser/xssp/internal/mas"
)

// Options configure CreateHSSP.
type Options struct {
	MaxHits  int     // cap on reported hits, zero keeps all
	Cutoff   float32 // shift applied to the homology threshold
	Threads  int
	Databank string // sequence database name for the SEQBASE line
	SS       string // query secondary structure, one letter per residue
	Progress Progress
}

// CreateHSSP derives the homology statistics from a multiple sequence
// alignment whose first row is the query, and writes the report. The
// alignment rows are updated in place.
func CreateHSSP(w io.Writer, msa []*Seq, meta Metadata, opts Options) error {
	if len(msa) == 0 {
		return mas.Dataf("no alignment")
	}
	if opts.Threads < 1 {
		opts.Threads = 1
	}
	progress := opts.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	if err := UpdateAll(msa, opts.Threads); err != nil {
		return err
	}

	kept := msa[:1]
	for _, s := range msa[1:] {
		if !s.Drop(opts.Cutoff) {
			kept = append(kept, s)
		}
	}
	log.Debugf("%d of %d hits pass the homology threshold", len(kept)-1, len(msa)-1)
	msa = kept

	if len(msa) < 2 {
		return mas.Dataf("no alignment")
	}

	query := msa[0]
	res, err := BuildResidues(query, opts.SS)
	if err != nil {
		return err
	}

	hits := make([]*Hit, 0, len(msa)-1)
	for _, s := range msa[1:] {
		hits = append(hits, NewHit(s, 'A', 0))
	}
	hits, err = rankHits(hits, opts.MaxHits)
	if err != nil {
		return err
	}

	m := int64(len(hits) + 1)
	progress.Start("calculating conservation", m*(m-1)/2)
	CalculateConservation(msa, res, opts.Threads, progress)

	for _, r := range res {
		r.CalculateVariability(query, hits)
	}

	meta.Threshold = opts.Cutoff
	meta.Databank = opts.Databank
	meta.SeqLength = len(res)
	meta.NChain = 1
	meta.KChain = 1
	meta.UsedChains = "A"
	if meta.ProteinID == "" {
		meta.ProteinID = "UNDF"
	}

	return CreateOutput(w, meta, hits, res)
}
