package align

import (
	"fmt"
	"math"
	"strings"
)

// Node is a vertex in the guide tree. Leaves borrow an alignment entry,
// joined nodes own their two children and the branch lengths leading to
// them.
type Node interface {
	// LeafCount returns the number of leaves below this node.
	LeafCount() int

	// Length returns the longest sequence length below this node.
	Length() int

	// Cost estimates the work needed to align this node's children.
	Cost() int64

	// CumulativeCost sums Cost over this node and all nodes below it.
	CumulativeCost() int64

	// AddWeight adds w to the weight of every entry below this node.
	AddWeight(w float32)

	write(sb *strings.Builder)
}

// Leaf wraps a single entry.
type Leaf struct {
	Entry *Entry
}

func (l *Leaf) LeafCount() int        { return 1 }
func (l *Leaf) Length() int           { return l.Entry.Len() }
func (l *Leaf) Cost() int64           { return 0 }
func (l *Leaf) CumulativeCost() int64 { return 0 }

func (l *Leaf) AddWeight(w float32) {
	l.Entry.Weight += w
}

func (l *Leaf) write(sb *strings.Builder) {
	sb.WriteString(l.Entry.ID)
}

func (l *Leaf) String() string {
	return l.Entry.ID
}

// Joined combines two subtrees at the branch lengths the guide tree
// assigned to them.
type Joined struct {
	Left, Right   Node
	DLeft, DRight float32

	leafCount int
	length    int
}

// NewJoined links two subtrees. The distance to each child, spread over
// the leaves below it, is added to the leaf weights so that later
// profile scores favour divergent sequences.
func NewJoined(left, right Node, dLeft, dRight float32) *Joined {
	left.AddWeight(dLeft / float32(left.LeafCount()))
	right.AddWeight(dRight / float32(right.LeafCount()))

	return &Joined{
		Left:      left,
		Right:     right,
		DLeft:     dLeft,
		DRight:    dRight,
		leafCount: left.LeafCount() + right.LeafCount(),
		length:    max(left.Length(), right.Length()),
	}
}

func (j *Joined) LeafCount() int { return j.leafCount }
func (j *Joined) Length() int    { return j.length }

// Cost scales with the profile size handed to the aligner, which makes
// progress reporting roughly proportional to wall time.
func (j *Joined) Cost() int64 {
	return int64(j.leafCount) * int64(j.length)
}

func (j *Joined) CumulativeCost() int64 {
	return j.Cost() + j.Left.CumulativeCost() + j.Right.CumulativeCost()
}

func (j *Joined) AddWeight(w float32) {
	j.Left.AddWeight(w)
	j.Right.AddWeight(w)
}

func (j *Joined) write(sb *strings.Builder) {
	sb.WriteByte('(')
	sb.WriteByte('\n')
	j.Left.write(sb)
	fmt.Fprintf(sb, ":%.4f", j.DLeft)
	sb.WriteByte(',')
	sb.WriteByte('\n')
	j.Right.write(sb)
	fmt.Fprintf(sb, ":%.4f", j.DRight)
	sb.WriteByte(')')
	sb.WriteByte('\n')
}

// String renders the subtree in newick notation, without the trailing
// semicolon.
func (j *Joined) String() string {
	var sb strings.Builder
	j.write(&sb)
	return sb.String()
}

// JoinNeighbours reduces the distance matrix and the matching node list
// to a single root using the neighbour joining heuristic of Saitou and
// Nei. The matrix and slice are consumed.
func JoinNeighbours(d *SymMatrix, tree []Node) *Joined {
	r := len(tree)
	if d.Size() != r {
		panic(fmt.Sprintf("align: distance matrix size %d does not match node count %d", d.Size(), r))
	}

	for r > 2 {
		sum := make([]float32, r)
		for i := 1; i < r; i++ {
			for j := 0; j < i; j++ {
				dij := d.At(i, j)
				sum[i] += dij
				sum[j] += dij
			}
		}

		// Find the pair with the lowest rate corrected distance.
		minI, minJ := 0, 0
		m := float32(math.MaxFloat32)
		for i := 1; i < r; i++ {
			for j := 0; j < i; j++ {
				v := d.At(i, j) - (sum[i]+sum[j])/float32(r-2)
				if m > v {
					minI, minJ, m = i, j, v
				}
			}
		}

		// Branch lengths to the new internal node.
		dMin := d.At(minI, minJ)
		dI := dMin/2 + abs32(sum[minI]-sum[minJ])/float32(2*(r-2))
		dJ := dMin - dI

		if dI > dJ && tree[minI].LeafCount() > tree[minJ].LeafCount() {
			dI, dJ = dJ, dI
		}

		// Distances from the remaining nodes to the new node, in the
		// order the survivors keep after the erase below.
		dn := make([]float32, 0, r-2)
		for x := 0; x < r; x++ {
			if x == minI || x == minJ {
				continue
			}
			dn = append(dn, (abs32(d.At(x, minI)-dI)+abs32(d.At(x, minJ)-dJ))/2)
		}

		jn := NewJoined(tree[minI], tree[minJ], dI, dJ)

		// minJ < minI, so remove the higher index first.
		tree = append(tree[:minI], tree[minI+1:]...)
		tree = append(tree[:minJ], tree[minJ+1:]...)
		tree = append(tree, jn)

		d.EraseTwo(minI, minJ)
		r--
		for x := 0; x < r-1; x++ {
			d.Set(x, r-1, dn[x])
		}
	}

	return NewJoined(tree[0], tree[1], d.At(0, 1)/2, d.At(0, 1)/2)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
