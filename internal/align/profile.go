package align

import (
	"fmt"
	"math"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/jglaser/xssp/internal/mat"
)

// residuePenalty holds the Pascarella and Argos residue specific gap
// modifiers as used by ClustalW, each lowered by 0.2. Indexed by residue
// code, A through V.
var residuePenalty = [mat.NumResidues]float32{
	1.13 - 0.2, // A
	0.72 - 0.2, // R
	0.63 - 0.2, // N
	0.96 - 0.2, // D
	1.13 - 0.2, // C
	1.07 - 0.2, // Q
	1.31 - 0.2, // E
	0.61 - 0.2, // G
	1.00 - 0.2, // H
	1.32 - 0.2, // I
	1.21 - 0.2, // L
	0.96 - 0.2, // K
	1.29 - 0.2, // M
	1.20 - 0.2, // F
	0.74 - 0.2, // P
	0.76 - 0.2, // S
	0.89 - 0.2, // T
	1.23 - 0.2, // W
	1.00 - 0.2, // Y
	1.25 - 0.2, // V
}

// hydrophilic marks the residues whose runs of five or more lower the
// gap open penalty, again following ClustalW.
var hydrophilic [mat.AlphabetSize]bool

func init() {
	for _, c := range []byte("DEGKNQPRS") {
		r, ok := mat.EncodeLetter(c)
		if !ok {
			panic("align: bad hydrophilic residue set")
		}
		hydrophilic[r] = true
	}
}

// score returns the average weighted substitution score for aligning
// column ixA of group a against column ixB of group b. Gapped residues
// do not contribute.
func score(a, b []*Entry, ixA, ixB int, m *mat.Matrix) float32 {
	var result float32

	for _, ea := range a {
		ra := ea.Seq[ixA]
		if ra == mat.GapCode {
			continue
		}
		for _, eb := range b {
			rb := eb.Seq[ixB]
			if rb == mat.GapCode {
				continue
			}
			result += ea.Weight * eb.Weight * m.At(ra, rb)
		}
	}

	return result / float32(len(a)*len(b))
}

// adjustGapPenalties applies the ClustalW position specific rules to the
// per column penalty arrays of one group: cheaper gaps where the group
// already has them or inside a hydrophilic stretch, dearer gaps close to
// existing ones, in secondary structure elements and at gap averse
// residues.
func adjustGapPenalties(gop, gep []float32, group []*Entry) {
	n := len(gop)

	gaps := make([]int, n)
	stretch := make([]bool, n)
	penalty := make([]float32, n)

	for _, e := range group {
		for ix := 0; ix < n; ix++ {
			r := e.Seq[ix]
			if r == mat.GapCode {
				gaps[ix]++
			}

			if ix < len(e.SS) {
				// DSSP summary codes: H/G/I helix, B bridge, E strand.
				switch e.SS[ix] {
				case 'H', 'G', 'I':
					penalty[ix] += 3.0
				case 'B':
					penalty[ix] += 2.0
				case 'E':
					penalty[ix] += 1.5
				default:
					penalty[ix] += 1.0
				}
			} else if r < mat.NumResidues {
				penalty[ix] += residuePenalty[r]
			} else {
				penalty[ix] += 1.0
			}
		}

		// Runs of five or more hydrophilic residues.
		start := 0
		for ix := 0; ix <= n; ix++ {
			if ix == n || !hydrophilic[e.Seq[ix]] {
				if ix-start >= 5 {
					for j := start; j < ix; j++ {
						stretch[j] = true
					}
				}
				start = ix + 1
			}
		}
	}

	for ix := 0; ix < n; ix++ {
		if gaps[ix] > 0 {
			gop[ix] *= 0.3 * float32(len(group)-gaps[ix]) / float32(len(group))
			gep[ix] /= 2
			continue
		}

		for d := 0; d < 8; d++ {
			if ix+d >= n || gaps[ix+d] > 0 || ix-d < 0 || gaps[ix-d] > 0 {
				gop[ix] *= float32(2+(8-d)*2) / 8
				break
			}
		}

		if stretch[ix] {
			gop[ix] /= 3
		} else {
			gop[ix] *= penalty[ix] / float32(len(group))
		}
	}
}

// alignGroups aligns two already aligned groups into one, inserting gaps
// into the member entries in place. The returned slice holds the entries
// of a followed by those of b.
//
// Entries carrying anchor positions constrain the dynamic programming:
// columns sharing a nonzero anchor are forced to pair up and the cells
// in between are filled blockwise, exactly as in Distance. Unlike there
// the traceback is kept, so the gap pattern of the winning path can be
// replayed into the entries.
func alignGroups(node *Joined, a, b []*Entry, family *mat.Family, gop, gep, magic float32) []*Entry {
	fa, fb := a[0], b[0]

	x, endX, dimX := 0, 0, fa.Len()
	y, endY, dimY := 0, 0, fb.Len()

	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("aligning groups [%s] (%d wide) and [%s] (%d wide)", groupIDs(a), dimX, groupIDs(b), dimY)
	}

	B := newFloats(dimX, dimY)
	Ix := newFloats(dimX, dimY)
	Iy := newFloats(dimX, dimY)
	tb := make([][]int8, dimX)
	for i := range tb {
		tb[i] = make([]int8, dimY)
	}

	smat := family.Select(abs32(node.DLeft+node.DRight), true)

	minLength, maxLength := float64(dimX), float64(dimY)
	if minLength > maxLength {
		minLength, maxLength = maxLength, minLength
	}
	logmin := 1 / math.Log10(minLength)
	logdiff := 1 + 0.5*math.Log10(minLength/maxLength)

	// Base gap open cost, corrected for the length ratio of the groups
	// and the magnitude of the selected matrix.
	gop = float32(float64(gop) / (logdiff * logmin) *
		float64(abs32(smat.MismatchAverage())) * float64(smat.ScaleFactor()) * float64(magic))

	var avgWeightA, avgWeightB float32
	for _, e := range a {
		avgWeightA += e.Weight
	}
	avgWeightA /= float32(len(a))
	for _, e := range b {
		avgWeightB += e.Weight
	}
	avgWeightB /= float32(len(b))

	// Position specific penalties; gap extension is also adjusted for
	// the difference in group widths.
	gopA := make([]float32, dimX)
	gepA := make([]float32, dimX)
	for i := range gopA {
		gopA[i] = gop * avgWeightA
		gepA[i] = float32(float64(gep) * (1 + math.Log10(float64(dimX)/float64(dimY))) * float64(avgWeightA))
	}
	adjustGapPenalties(gopA, gepA, a)

	gopB := make([]float32, dimY)
	gepB := make([]float32, dimY)
	for i := range gopB {
		gopB[i] = gop * avgWeightB
		gepB[i] = float32(float64(gep) * (1 + math.Log10(float64(dimY)/float64(dimX))) * float64(avgWeightB))
	}
	adjustGapPenalties(gopB, gepB, b)

	pa, pb := fa.Positions, fb.Positions

	if len(pa) == 0 || len(pb) == 0 {
		endX = dimX
		endY = dimY
	}

	highX, highY := 0, 0

	for x < dimX && y < dimY {
		if x == endX && y == endY {
			if pa[x] == pb[y] && pa[x] != 0 {
				tb[x][y] = 0
				highX = x
				highY = y
				x++
				endX++
				y++
				endY++
				continue
			}
		}

		// move endX/endY to the next shared anchor, or the far corner
		for endX < dimX || endY < dimY {
			if endX < dimX && pa[endX] == 0 {
				endX++
				continue
			}
			if endY < dimY && pb[endY] == 0 {
				endY++
				continue
			}
			if endX < dimX && endY < dimY && pa[endX] == pb[endY] && pa[endX] != 0 {
				break
			}
			if endX < dimX {
				for endX < dimX && (endY == dimY || pa[endX] < pb[endY]) {
					endX++
				}
			}
			if endY < dimY {
				for endY < dimY && (endX == dimX || pb[endY] < pa[endX]) {
					endY++
				}
			}
			if endX < dimX && endY < dimY && pa[endX] != pb[endY] {
				continue
			}
			break
		}

		var high float32
		startX, startY := x, y

		if y > 0 {
			for ix := x; ix < endX; ix++ {
				tb[ix][y-1] = 1
			}
		}
		if x > 0 {
			for iy := y; iy < endY; iy++ {
				tb[x-1][iy] = -1
			}
		}

		for x = startX; x < endX; x++ {
			for y = startY; y < endY; y++ {
				var ix1, iy1 float32
				if x > startX {
					ix1 = Ix[x-1][y]
				}
				if y > startY {
					iy1 = Iy[x][y-1]
				}

				M := score(a, b, x, y, smat)
				if x > startX && y > startY {
					M += B[x-1][y-1]
				}

				var s float32
				switch {
				case M >= ix1 && M >= iy1:
					tb[x][y] = 0
					s = M
				case ix1 >= iy1:
					tb[x][y] = 1
					s = ix1
				default:
					tb[x][y] = -1
					s = iy1
				}
				B[x][y] = s

				if (x == endX-1 || y == endY-1) && high <= s {
					high = s
					highX = x
					highY = y
				}

				// End gaps are free.
				openX := M
				if x < dimX-1 {
					openX = M - gopA[x]
				}
				Ix[x][y] = max(openX, ix1-gepA[x])

				openY := M
				if y < dimY-1 {
					openY = M - gopB[y]
				}
				Iy[x][y] = max(openY, iy1-gepB[y])
			}
		}

		if endY > 0 {
			for ix := highX + 1; ix < endX; ix++ {
				tb[ix][endY-1] = 1
			}
		}
		if endX > 0 {
			for iy := highY + 1; iy < endY; iy++ {
				tb[endX-1][iy] = -1
			}
		}

		x = endX
		y = endY
	}

	if endY > 0 {
		for ix := highX + 1; ix < dimX; ix++ {
			tb[ix][endY-1] = 1
		}
	}
	if endX > 0 {
		for iy := highY + 1; iy < dimY; iy++ {
			tb[endX-1][iy] = -1
		}
	}

	// Trace back, inserting gaps into the group that lost the step.
	x = dimX - 1
	y = dimY - 1

	for x >= 0 && y >= 0 {
		switch tb[x][y] {
		case -1:
			for _, e := range a {
				e.InsertGap(x + 1)
			}
			y--
		case 1:
			for _, e := range b {
				e.InsertGap(y + 1)
			}
			x--
		case 0:
			x--
			y--
		default:
			panic(fmt.Sprintf("align: corrupt traceback value %d at %d:%d", tb[x][y], x, y))
		}
	}

	// and finally the start gaps
	for x >= 0 {
		for _, e := range b {
			e.InsertGap(y + 1)
		}
		x--
	}
	for y >= 0 {
		for _, e := range a {
			e.InsertGap(x + 1)
		}
		y--
	}

	c := make([]*Entry, 0, len(a)+len(b))
	c = append(c, a...)
	c = append(c, b...)

	// Merge the anchors into the leading entry so alignments further up
	// the tree stay pinned.
	pa, pb = fa.Positions, fb.Positions
	if len(pa) > 0 && len(pb) > 0 {
		if len(pa) != len(pb) {
			panic("align: anchor positions out of lockstep after alignment")
		}
		for i := range pa {
			if pb[i] > pa[i] {
				pa[i] = pb[i]
			}
		}
	}

	return c
}

func groupIDs(group []*Entry) string {
	ids := make([]byte, 0, 64)
	for i, e := range group {
		if i > 0 {
			ids = append(ids, ' ')
		}
		ids = append(ids, e.ID...)
	}
	return string(ids)
}

// createAlignment aligns the subtree under node. While depth is below
// the fork cap a joined child is aligned on its own goroutine, so the
// independent subtrees of a bushy guide tree proceed in parallel.
func createAlignment(node *Joined, family *mat.Family, gop, gep, magic float32, forkDepth, depth int, step func(int64)) []*Entry {
	var a, b []*Entry

	left, leftJoined := node.Left.(*Joined)
	right, rightJoined := node.Right.(*Joined)

	if leftJoined && depth < forkDepth {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			a = createAlignment(left, family, gop, gep, magic, forkDepth, depth+1, step)
		}()
		if rightJoined {
			b = createAlignment(right, family, gop, gep, magic, forkDepth, depth+1, step)
		} else {
			b = []*Entry{node.Right.(*Leaf).Entry}
		}
		wg.Wait()
	} else {
		if leftJoined {
			a = createAlignment(left, family, gop, gep, magic, forkDepth, depth+1, step)
		} else {
			a = []*Entry{node.Left.(*Leaf).Entry}
		}
		if rightJoined {
			b = createAlignment(right, family, gop, gep, magic, forkDepth, depth+1, step)
		} else {
			b = []*Entry{node.Right.(*Leaf).Entry}
		}
	}

	c := alignGroups(node, a, b, family, gop, gep, magic)
	if step != nil {
		step(node.Cost())
	}
	return c
}
