// Package align implements progressive multiple sequence alignment: a
// pairwise distance matrix feeds a neighbour joining guide tree, and the
// tree orders profile against profile alignments with position specific
// gap penalties. Entries read from structure annotated sources carry
// anchor positions that pin alignment columns together.
package align

import (
	"math/bits"
	"runtime"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/jglaser/xssp/internal/mas"
	"github.com/jglaser/xssp/internal/mat"
)

// Progress receives totals and increments from the long running stages
// of an alignment. Step may be called from concurrent workers.
type Progress interface {
	Start(name string, total int64)
	Step(n int64)
}

type nopProgress struct{}

func (nopProgress) Start(string, int64) {}
func (nopProgress) Step(int64)          {}

// Options bundle the tuning knobs of an alignment run. The zero value
// for Threads and ForkDepth means pick something sensible for the
// machine, the other fields have no usable zero value.
type Options struct {
	Family    *mat.Family
	GapOpen   float32
	GapExtend float32
	Magic     float32

	// IgnorePositions drops the anchor positions from all entries
	// before aligning, so annotated input aligns unconstrained.
	IgnorePositions bool

	// Threads is the worker count for the distance matrix, ForkDepth
	// the tree depth down to which profile alignments fork goroutines.
	Threads   int
	ForkDepth int

	Progress Progress
}

// Align aligns the entries in place and returns them ordered by entry
// number, together with the guide tree root. At least two entries are
// required.
func Align(data []*Entry, opts Options) ([]*Entry, *Joined, error) {
	pr := opts.Progress
	if pr == nil {
		pr = nopProgress{}
	}
	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	forkDepth := opts.ForkDepth
	if forkDepth <= 0 {
		forkDepth = bits.Len(uint(threads))
	}

	if opts.IgnorePositions {
		for _, e := range data {
			e.DropPositions()
		}
	}

	if len(data) < 2 {
		return nil, nil, mas.Dataf("insufficient number of sequences")
	}

	var root *Joined
	if len(data) == 2 {
		// No need for difficult stuff, just align the two sequences.
		dist := Distance(data[0], data[1])
		root = NewJoined(&Leaf{data[0]}, &Leaf{data[1]}, dist/2, dist/2)
	} else {
		pairs := int64(len(data)) * int64(len(data)-1) / 2
		pr.Start("calculating guide tree", pairs)
		d := DistanceMatrix(data, threads, func() { pr.Step(1) })

		tree := make([]Node, len(data))
		for i, e := range data {
			tree[i] = &Leaf{e}
		}
		root = JoinNeighbours(d, tree)
	}

	log.Debugf("guide tree:\n%s;", root)

	pr.Start("calculating alignments", root.CumulativeCost())
	alignment := createAlignment(root, opts.Family, opts.GapOpen, opts.GapExtend, opts.Magic, forkDepth, 0, pr.Step)

	sort.Slice(alignment, func(i, j int) bool { return alignment[i].Nr < alignment[j].Nr })

	return alignment, root, nil
}
