package align

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jglaser/xssp/internal/mas"
	"github.com/jglaser/xssp/internal/mat"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func mustEntry(t *testing.T, nr int, id, seq string) *Entry {
	t.Helper()
	e, err := NewEntry(nr, id, seq)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func mustFamily(t *testing.T) *mat.Family {
	t.Helper()
	f, err := mat.LoadFamily("BLOSUM")
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func Test_Distance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float32
	}{
		{"identical", "ARNDCQEGHI", "ARNDCQEGHI", 0},
		{"no shared residues", "AAAA", "RRRR", 1},
		{"half identical", "ARAR", "AAAA", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustEntry(t, 0, "a", tt.a)
			b := mustEntry(t, 1, "b", tt.b)
			if got := Distance(a, b); !near(got, tt.want) {
				t.Errorf("Distance() = %g, want %g", got, tt.want)
			}
		})
	}
}

func Test_Distance_symmetric(t *testing.T) {
	a := mustEntry(t, 0, "a", "ARNDCQEGHI")
	b := mustEntry(t, 1, "b", "ARNCQEGI")

	if ab, ba := Distance(a, b), Distance(b, a); !near(ab, ba) {
		t.Errorf("Distance(a,b) = %g, Distance(b,a) = %g", ab, ba)
	}
}

func Test_Distance_anchored(t *testing.T) {
	a := mustEntry(t, 0, "a", "ARND")
	a.Positions = []int16{0, 5, 0, 0}
	b := mustEntry(t, 1, "b", "RRND")
	b.Positions = []int16{0, 5, 0, 0}

	// the anchor pairs the R columns, the blocks around it align the
	// rest; only the leading A:R differs
	if got := Distance(a, b); !near(got, 0.25) {
		t.Errorf("Distance() = %g, want 0.25", got)
	}
}

func Test_SymMatrix(t *testing.T) {
	m := NewSymMatrix(4)
	m.Set(1, 0, 10)
	m.Set(2, 0, 20)
	m.Set(2, 1, 21)
	m.Set(3, 0, 30)
	m.Set(3, 1, 31)
	m.Set(3, 2, 32)

	if m.At(0, 3) != 30 || m.At(3, 0) != 30 {
		t.Error("matrix not symmetric")
	}
	if m.At(2, 2) != 0 {
		t.Error("diagonal not zero")
	}

	m.EraseTwo(1, 2)

	if m.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", m.Size())
	}
	if m.At(1, 0) != 30 {
		t.Errorf("At(1,0) = %g, want 30 (kept rows compacted)", m.At(1, 0))
	}
	if m.At(2, 0) != 0 || m.At(2, 1) != 0 {
		t.Error("appended row not zeroed")
	}
}

func Test_DistanceMatrix(t *testing.T) {
	data := []*Entry{
		mustEntry(t, 0, "s1", "ARNDCQ"),
		mustEntry(t, 1, "s2", "ARNDCQ"),
		mustEntry(t, 2, "s3", "ARNDAA"),
		mustEntry(t, 3, "s4", "WYVWYV"),
		mustEntry(t, 4, "s5", "ARWDCQ"),
	}

	for _, workers := range []int{2, 16} {
		var steps atomic.Int64
		d := DistanceMatrix(data, workers, func() { steps.Add(1) })

		if steps.Load() != 10 {
			t.Errorf("workers=%d: steps = %d, want 10", workers, steps.Load())
		}
		if d.Size() != 5 {
			t.Fatalf("workers=%d: Size() = %d, want 5", workers, d.Size())
		}
		if d.At(0, 1) != 0 {
			t.Errorf("workers=%d: identical pair distance = %g", workers, d.At(0, 1))
		}
		for i := 1; i < 5; i++ {
			for j := 0; j < i; j++ {
				v := d.At(i, j)
				if v < 0 || v > 1 {
					t.Errorf("workers=%d: d(%d,%d) = %g outside [0,1]", workers, i, j, v)
				}
			}
		}
	}
}

func Test_JoinNeighbours(t *testing.T) {
	entries := []*Entry{
		mustEntry(t, 0, "A", "ARND"),
		mustEntry(t, 1, "B", "ARND"),
		mustEntry(t, 2, "C", "ARND"),
	}

	d := NewSymMatrix(3)
	d.Set(0, 1, 0.2)
	d.Set(0, 2, 0.4)
	d.Set(1, 2, 0.4)

	tree := make([]Node, len(entries))
	for i, e := range entries {
		tree[i] = &Leaf{e}
	}

	root := JoinNeighbours(d, tree)

	want := "(\nC:0.1500,\n(\nB:0.1000,\nA:0.1000)\n:0.1500)\n"
	if got := root.String(); got != want {
		t.Errorf("newick = %q, want %q", got, want)
	}

	if root.LeafCount() != 3 {
		t.Errorf("LeafCount() = %d, want 3", root.LeafCount())
	}

	// the branch to each child is spread over the leaves below it
	if !near(entries[0].Weight, 1.175) || !near(entries[1].Weight, 1.175) {
		t.Errorf("weights A/B = %g/%g, want 1.175", entries[0].Weight, entries[1].Weight)
	}
	if !near(entries[2].Weight, 1.15) {
		t.Errorf("weight C = %g, want 1.15", entries[2].Weight)
	}
}

func Test_JoinNeighbours_sizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a size mismatch")
		}
	}()
	JoinNeighbours(NewSymMatrix(3), []Node{&Leaf{mustEntry(t, 0, "a", "AR")}})
}

func Test_adjustGapPenalties(t *testing.T) {
	newPenalties := func(n int) ([]float32, []float32) {
		gop := make([]float32, n)
		gep := make([]float32, n)
		for i := range gop {
			gop[i] = 8
			gep[i] = 1
		}
		return gop, gep
	}

	t.Run("gap column and proximity", func(t *testing.T) {
		group := []*Entry{
			mustEntry(t, 0, "a", "A-A"),
			mustEntry(t, 1, "b", "AAA"),
		}
		gop, gep := newPenalties(3)
		adjustGapPenalties(gop, gep, group)

		// gapped column: open scaled by 0.3*(n-gaps)/n, extend halved
		if !near(gop[1], 8*0.3*0.5) || !near(gep[1], 0.5) {
			t.Errorf("gap column = %g/%g, want %g/0.5", gop[1], gep[1], 8*0.3*0.5)
		}
		// neighbours: doubled for the adjacent gap, then the alanine
		// residue factor 0.93
		want := float32(8) * 2 * 0.93
		if !near(gop[0], want) || !near(gop[2], want) {
			t.Errorf("flanks = %g/%g, want %g", gop[0], gop[2], want)
		}
		if gep[0] != 1 || gep[2] != 1 {
			t.Errorf("flank extends = %g/%g, want 1", gep[0], gep[2])
		}
	})

	t.Run("hydrophilic stretch", func(t *testing.T) {
		group := []*Entry{mustEntry(t, 0, "a", "DEGKN")}
		gop, gep := newPenalties(5)
		adjustGapPenalties(gop, gep, group)

		// all five positions sit in one hydrophilic run, so the open
		// penalty is the border scaled value divided by three
		want := []float32{16.0 / 3, 14.0 / 3, 12.0 / 3, 14.0 / 3, 16.0 / 3}
		for i, w := range want {
			if !near(gop[i], w) {
				t.Errorf("gop[%d] = %g, want %g", i, gop[i], w)
			}
			if gep[i] != 1 {
				t.Errorf("gep[%d] = %g, want 1", i, gep[i])
			}
		}
	})

}

func Test_adjustGapPenalties_secondaryStructure(t *testing.T) {
	e := mustEntry(t, 0, "a", "AAAA")
	e.SS = []byte("HHE ")

	gop := []float32{8, 8, 8, 8}
	gep := []float32{1, 1, 1, 1}
	adjustGapPenalties(gop, gep, []*Entry{e})

	// border distance factors 2, 1.75, 1.75, 2 times the structure
	// weights 3 (helix), 3, 1.5 (strand) and 1 (loop)
	want := []float32{8 * 2 * 3, 8 * 1.75 * 3, 8 * 1.75 * 1.5, 8 * 2 * 1}
	for i, w := range want {
		if !near(gop[i], w) {
			t.Errorf("gop[%d] = %g, want %g", i, gop[i], w)
		}
	}
}

func Test_score(t *testing.T) {
	m := mat.MustLoad("BLOSUM62")

	a := []*Entry{mustEntry(t, 0, "a", "AR")}
	b := []*Entry{mustEntry(t, 1, "b", "A-")}

	if got := score(a, b, 0, 0, m); got != m.At(0, 0) {
		t.Errorf("score = %g, want %g", got, m.At(0, 0))
	}
	// gapped column contributes nothing
	if got := score(a, b, 1, 1, m); got != 0 {
		t.Errorf("score against gap = %g, want 0", got)
	}

	a[0].Weight = 2
	if got := score(a, b, 0, 0, m); got != 2*m.At(0, 0) {
		t.Errorf("weighted score = %g, want %g", got, 2*m.At(0, 0))
	}
}

func Test_alignGroups_anchored(t *testing.T) {
	a := mustEntry(t, 0, "a", "RN")
	a.Positions = []int16{2, 3}
	b := mustEntry(t, 1, "b", "ARN")
	b.Positions = []int16{1, 2, 3}

	node := NewJoined(&Leaf{a}, &Leaf{b}, 0.1, 0.1)
	c := alignGroups(node, []*Entry{a}, []*Entry{b}, mustFamily(t), 10, 0.2, 0.1)

	if len(c) != 2 {
		t.Fatalf("group size = %d, want 2", len(c))
	}
	if got := mat.Decode(a.Seq); got != "-RN" {
		t.Errorf("a = %s, want -RN", got)
	}
	if got := mat.Decode(b.Seq); got != "ARN" {
		t.Errorf("b = %s, want ARN", got)
	}

	// merged anchors live on the leading entry
	want := []int16{1, 2, 3}
	if len(a.Positions) != len(want) {
		t.Fatalf("positions = %v, want %v", a.Positions, want)
	}
	for i, p := range want {
		if a.Positions[i] != p {
			t.Errorf("positions = %v, want %v", a.Positions, want)
			break
		}
	}
}

func Test_Align_insufficientSequences(t *testing.T) {
	_, _, err := Align([]*Entry{mustEntry(t, 0, "only", "ARND")}, Options{Family: mustFamily(t)})

	var derr *mas.DataError
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want a data error", err)
	}
}

func Test_Align_pair(t *testing.T) {
	a := mustEntry(t, 0, "a", "ARND")
	b := mustEntry(t, 1, "b", "ARD")

	alignment, root, err := Align([]*Entry{a, b}, Options{
		Family:    mustFamily(t),
		GapOpen:   10,
		GapExtend: 0.2,
		Magic:     0.1,
		Threads:   1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if root == nil {
		t.Fatal("nil guide tree")
	}
	if len(alignment) != 2 {
		t.Fatalf("alignment size = %d", len(alignment))
	}
	if got := mat.Decode(a.Seq); got != "ARND" {
		t.Errorf("a = %s, want ARND", got)
	}
	if got := mat.Decode(b.Seq); got != "AR-D" {
		t.Errorf("b = %s, want AR-D", got)
	}
}

func Test_Align(t *testing.T) {
	const base = "ARNDCQEGHILKMFPSTWYV"
	data := []*Entry{
		mustEntry(t, 0, "s1", base),
		mustEntry(t, 1, "s2", base),
		mustEntry(t, 2, "s3", base),
		mustEntry(t, 3, "s4", "ARNDCQEGKMFPSTWYV"), // HIL deleted
	}

	alignment, root, err := Align(data, Options{
		Family:    mustFamily(t),
		GapOpen:   10,
		GapExtend: 0.2,
		Magic:     0.1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if root.CumulativeCost() <= 0 {
		t.Error("cumulative cost not positive")
	}

	for i, e := range alignment {
		if e.Nr != i {
			t.Errorf("alignment[%d].Nr = %d, output not in input order", i, e.Nr)
		}
		if e.Len() != 20 {
			t.Errorf("%s: width = %d, want 20", e.ID, e.Len())
		}
	}

	for _, e := range alignment[:3] {
		if got := mat.Decode(e.Seq); got != base {
			t.Errorf("%s = %s, want %s", e.ID, got, base)
		}
	}
	if got := mat.Decode(alignment[3].Seq); got != "ARNDCQEG---KMFPSTWYV" {
		t.Errorf("s4 = %s, want ARNDCQEG---KMFPSTWYV", got)
	}
}

func Test_Entry_InsertGap(t *testing.T) {
	e := mustEntry(t, 0, "a", "ARND")
	e.Positions = []int16{0, 5, 0, 0}
	e.SS = []byte("HHE ")

	e.InsertGap(1)

	if got := mat.Decode(e.Seq); got != "A-RND" {
		t.Errorf("seq = %s, want A-RND", got)
	}
	wantPos := []int16{0, 0, 5, 0, 0}
	for i, p := range wantPos {
		if e.Positions[i] != p {
			t.Fatalf("positions = %v, want %v", e.Positions, wantPos)
		}
	}
	if string(e.SS) != "H HE " {
		t.Errorf("ss = %q, want %q", e.SS, "H HE ")
	}

	e.InsertGap(99)
	if got := mat.Decode(e.Seq); got != "A-RND-" {
		t.Errorf("seq = %s, want A-RND-", got)
	}
}

func Test_Entry_RemoveGaps(t *testing.T) {
	e := mustEntry(t, 0, "a", "A-RN-D")
	e.RemoveGaps()
	if got := mat.Decode(e.Seq); got != "ARND" {
		t.Errorf("seq = %s, want ARND", got)
	}

	e.Positions = []int16{1, 2, 3, 4}
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for anchored gap removal")
		}
	}()
	e.RemoveGaps()
}

func Test_AttachSS(t *testing.T) {
	entries := []*Entry{
		mustEntry(t, 0, "a", "ARND"),
		mustEntry(t, 1, "b", "ARND"),
	}

	err := AttachSS(entries, map[string]string{"a": "HHHH"})
	if err != nil {
		t.Fatal(err)
	}
	if string(entries[0].SS) != "HHHH" {
		t.Errorf("ss = %q", entries[0].SS)
	}
	if entries[1].SS != nil {
		t.Error("unmatched entry got a structure")
	}

	err = AttachSS(entries, map[string]string{"b": "HH"})
	var derr *mas.DataError
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want a data error", err)
	}
}

func Test_Report_clustal(t *testing.T) {
	entries := []*Entry{
		mustEntry(t, 0, "alpha", "ACDE"),
		mustEntry(t, 1, "beta", "ACDE"),
	}

	var buf bytes.Buffer
	if err := Report(&buf, entries, "clustalw"); err != nil {
		t.Fatal(err)
	}

	want := "CLUSTAL W multiple sequence alignment\n\n" +
		"alpha       ACDE\n" +
		"beta        ACDE\n" +
		"            ****\n\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func Test_Report_clustalMarks(t *testing.T) {
	entries := []*Entry{
		mustEntry(t, 0, "a", "AC-E"),
		mustEntry(t, 1, "b", "ACDE"),
	}

	var buf bytes.Buffer
	if err := Report(&buf, entries, "clustalw"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "            ** *\n") {
		t.Errorf("conservation marks missing in %q", buf.String())
	}
}

func Test_Report_fasta(t *testing.T) {
	e := mustEntry(t, 0, "x", strings.Repeat("A", 100))

	var buf bytes.Buffer
	if err := Report(&buf, []*Entry{e}, "fasta"); err != nil {
		t.Fatal(err)
	}

	want := ">x\n" + strings.Repeat("A", 80) + "\n" + strings.Repeat("A", 20) + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func Test_Report_unknownFormat(t *testing.T) {
	err := Report(&bytes.Buffer{}, nil, "phylip")
	var cerr *mas.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want a config error", err)
	}
}
