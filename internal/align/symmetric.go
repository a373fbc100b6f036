package align

// SymMatrix is a symmetric float32 matrix holding the lower triangle only.
// The diagonal is implicitly zero. It backs the pairwise distance matrix
// and shrinks in place while the guide tree is joined up.
type SymMatrix struct {
	n    int
	data []float32
}

// NewSymMatrix returns an n by n symmetric matrix of zeroes.
func NewSymMatrix(n int) *SymMatrix {
	return &SymMatrix{n: n, data: make([]float32, n*(n-1)/2)}
}

// Size returns the current dimension.
func (m *SymMatrix) Size() int { return m.n }

func (m *SymMatrix) index(i, j int) int {
	if i < j {
		i, j = j, i
	}
	return i*(i-1)/2 + j
}

// At returns the value at (i, j), zero on the diagonal.
func (m *SymMatrix) At(i, j int) float32 {
	if i == j {
		return 0
	}
	return m.data[m.index(i, j)]
}

// Set stores a value at (i, j) and its mirror.
func (m *SymMatrix) Set(i, j int, v float32) {
	if i == j {
		panic("align: symmetric matrix diagonal is fixed at zero")
	}
	m.data[m.index(i, j)] = v
}

// EraseTwo removes rows and columns a and b, compacts the remaining
// entries preserving their order, and appends one zeroed row and column
// for the cluster replacing the two. The matrix shrinks by one.
func (m *SymMatrix) EraseTwo(a, b int) {
	if a < b {
		a, b = b, a
	}

	keep := make([]int, 0, m.n-2)
	for x := 0; x < m.n; x++ {
		if x != a && x != b {
			keep = append(keep, x)
		}
	}

	next := NewSymMatrix(len(keep) + 1)
	for i := 1; i < len(keep); i++ {
		for j := 0; j < i; j++ {
			next.Set(i, j, m.At(keep[i], keep[j]))
		}
	}
	*m = *next
}
