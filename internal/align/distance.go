package align

import (
	"fmt"
	"math"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/jglaser/xssp/internal/mat"
)

// Distance alignments always score against the same matrix, regardless of
// which family the profile alignment later uses.
var distanceMatrix = mat.MustLoad("GONNET250")

const (
	distanceGapOpen   float32 = 10
	distanceGapExtend float32 = 0.2
)

func newFloats(x, y int) [][]float32 {
	m := make([][]float32, x)
	for i := range m {
		m[i] = make([]float32, y)
	}
	return m
}

func newCounts(x, y int) [][]uint16 {
	m := make([][]uint16, x)
	for i := range m {
		m[i] = make([]uint16, y)
	}
	return m
}

// Distance computes the dissimilarity of two entries as one minus the
// fraction of identical residues on the best scoring path, normalized by
// the longer sequence. Matching anchor positions pin the path, splitting
// the dynamic program into the sub blocks between anchors; without
// anchors a single block covers everything. The result is always within
// [0,1], anything else is a bug and panics.
func Distance(a, b *Entry) float32 {
	x, endX, dimX := 0, 0, a.Len()
	y, endY, dimY := 0, 0, b.Len()

	pa, pb := a.Positions, b.Positions

	B := newFloats(dimX, dimY)
	Ix := newFloats(dimX, dimY)
	Iy := newFloats(dimX, dimY)
	id := newCounts(dimX, dimY)

	var highID uint16

	if len(pa) == 0 || len(pb) == 0 {
		endX = dimX
		endY = dimY
	}

	for x < dimX && y < dimY {
		if x == endX && y == endY {
			if pa[x] == pb[y] && pa[x] != 0 {
				if a.Seq[x] == b.Seq[y] {
					highID++
				}
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

		startX, startY := x, y
		high := float32(-math.MaxFloat32)
		var highIDSub uint16

		for x = startX; x < endX; x++ {
			for y = startY; y < endY; y++ {
				var ix1, iy1 float32
				if x > startX {
					ix1 = Ix[x-1][y]
				}
				if y > startY {
					iy1 = Iy[x][y-1]
				}

				M := distanceMatrix.At(a.Seq[x], b.Seq[y])
				if x > startX && y > startY {
					M += B[x-1][y-1]
				}

				var s float32
				var i uint16
				if a.Seq[x] == b.Seq[y] {
					i = 1
				}

				switch {
				case M >= ix1 && M >= iy1:
					if x > startX && y > startY {
						i += id[x-1][y-1]
					}
					s = M
				case ix1 >= iy1:
					if x > startX {
						i += id[x-1][y]
					}
					s = ix1
				default:
					if y > startY {
						i += id[x][y-1]
					}
					s = iy1
				}

				B[x][y] = s
				id[x][y] = i

				if (x == endX-1 || y == endY-1) && high < s {
					high = s
					highIDSub = i
				}

				Ix[x][y] = max(M-distanceGapOpen, ix1-distanceGapExtend)
				Iy[x][y] = max(M-distanceGapOpen, iy1-distanceGapExtend)
			}
		}

		highID += highIDSub
		x = endX
		y = endY
	}

	result := 1 - float32(highID)/float32(max(dimX, dimY))

	if result < 0 || result > 1 {
		panic(fmt.Sprintf("align: distance %f for %s:%s outside [0,1]", result, a.ID, b.ID))
	}

	log.Debugf("sequences (%d:%d) aligned, distance %4.2f", a.Nr+1, b.Nr+1, result)

	return result
}

// DistanceMatrix fills the matrix of pairwise distances, fanning the
// pairs out over workers goroutines. Every worker drains the same jobs
// channel until it is closed, so all of them terminate no matter how the
// pair count relates to the worker count. step, when non nil, is invoked
// once per finished pair and may be called from several goroutines at
// once.
func DistanceMatrix(data []*Entry, workers int, step func()) *SymMatrix {
	n := len(data)
	d := NewSymMatrix(n)

	if workers < 1 {
		workers = 1
	}

	jobs := make(chan [2]int, workers)
	var wg sync.WaitGroup
	for t := 0; t < workers; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				d.Set(p[0], p[1], Distance(data[p[0]], data[p[1]]))
				if step != nil {
					step()
				}
			}
		}()
	}

	for a := 0; a < n-1; a++ {
		for b := a + 1; b < n; b++ {
			jobs <- [2]int{a, b}
		}
	}
	close(jobs)
	wg.Wait()

	return d
}
