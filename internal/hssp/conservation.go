package hssp

import (
	"sync"
)

// Progress receives phase announcements and step counts from the long
// running passes.
type Progress interface {
	Start(name string, total int64)
	Step(n int64)
}

type nopProgress struct{}

func (nopProgress) Start(string, int64) {}
func (nopProgress) Step(int64)          {}

// CalculateConservation computes the per column conservation weight
// over all unpruned sequence pairs. For each pair the evolutionary
// distance is the fraction of differing residues over the shared span;
// every shared column then accumulates the distance weighted Dayhoff
// similarity against the distance weighted maximum. The ratio of the
// two sums is the column weight.
func CalculateConservation(msa []*Seq, res []*Residue, workers int, progress Progress) {
	if workers < 1 {
		workers = 1
	}
	if progress == nil {
		progress = nopProgress{}
	}

	width := msa[0].Len()
	sumvar := make([]float32, width)
	sumdist := make([]float32, width)

	jobs := make(chan int, workers)

	var wg sync.WaitGroup
	var mu sync.Mutex

	for t := 0; t < workers; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			sv := make([]float32, width)
			sd := make([]float32, width)

			for i := range jobs {
				si := msa[i]
				for j := i + 1; j < len(msa); j++ {
					sj := msa[j]
					if sj.Pruned {
						continue
					}
					pairConservation(si, sj, sv, sd)
					progress.Step(1)
				}
			}

			mu.Lock()
			for x := 0; x < width; x++ {
				sumvar[x] += sv[x]
				sumdist[x] += sd[x]
			}
			mu.Unlock()
		}()
	}

	for i := 0; i < len(msa)-1; i++ {
		if msa[i].Pruned {
			continue
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, r := range res {
		if r.Letter == 0 {
			continue
		}
		r.Consweight = 1
		if sumdist[r.Pos] > 0 {
			r.Consweight = sumvar[r.Pos] / sumdist[r.Pos]
		}
	}
}

// pairConservation accumulates one sequence pair into the column sums.
func pairConservation(si, sj *Seq, sumvar, sumdist []float32) {
	b := max(si.Begin, sj.Begin)
	e := min(si.End, sj.End)

	length, agr := 0, 0
	for k := b; k < e; k++ {
		if isGap(si.seq[k]) || isGap(sj.seq[k]) {
			continue
		}
		length++
		if si.seq[k] == sj.seq[k] {
			agr++
		}
	}
	if length == 0 {
		return
	}
	distance := 1 - float32(agr)/float32(length)

	for k := b; k < e; k++ {
		if isGap(si.seq[k]) || isGap(sj.seq[k]) {
			continue
		}
		ri := residueIndex[si.seq[k]]
		rj := residueIndex[sj.seq[k]]
		if ri < 0 || rj < 0 {
			continue
		}
		sumvar[k] += distance * dayhoff[ri][rj]
		sumdist[k] += distance * 1.5
	}
}
