package mat

import (
	"strconv"
	"strings"

	"github.com/jglaser/xssp/internal/mas"
)

// Matrix is a symmetric substitution score table over the full alphabet.
// Scores for pairings that the source table does not mention, such as
// anything against a gap, are zero.
type Matrix struct {
	name        string
	table       [AlphabetSize][AlphabetSize]int16
	mismatchAvg float32
	scale       float32
}

// Load returns the named substitution matrix from the built in table set.
func Load(name string) (*Matrix, error) {
	text, ok := tables[name]
	if !ok {
		return nil, mas.Configf("unknown substitution matrix '%s'", name)
	}
	return parse(name, text)
}

// MustLoad is Load for the matrices the package itself ships. A failure
// means the built in data is broken, so it panics.
func MustLoad(name string) *Matrix {
	m, err := Load(name)
	if err != nil {
		panic(err)
	}
	return m
}

// parse reads an NCBI format score table: an optional run of '#' comment
// lines, a header line naming the columns and one row of scores per
// residue letter. Letters outside the alphabet, like the stop codon '*',
// are skipped.
func parse(name, text string) (*Matrix, error) {
	m := &Matrix{name: name}

	var colCodes []int
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if colCodes == nil {
			// header line with the column letters
			for _, f := range fields {
				if len(f) != 1 {
					return nil, mas.Configf("matrix %s: malformed header field '%s'", name, f)
				}
				if r, ok := EncodeLetter(f[0]); ok {
					colCodes = append(colCodes, int(r))
				} else {
					colCodes = append(colCodes, -1)
				}
			}
			continue
		}

		if len(fields) != len(colCodes)+1 {
			return nil, mas.Configf("matrix %s: row '%s' has %d values, expected %d",
				name, fields[0], len(fields)-1, len(colCodes))
		}
		if len(fields[0]) != 1 {
			return nil, mas.Configf("matrix %s: malformed row label '%s'", name, fields[0])
		}
		rowCode := -1
		if r, ok := EncodeLetter(fields[0][0]); ok {
			rowCode = int(r)
		}

		for i, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, mas.Configf("matrix %s: bad score '%s' in row %s", name, f, fields[0])
			}
			if rowCode < 0 || colCodes[i] < 0 {
				continue
			}
			m.table[rowCode][colCodes[i]] = int16(v)
			m.table[colCodes[i]][rowCode] = int16(v)
		}
	}

	if colCodes == nil {
		return nil, mas.Configf("matrix %s: no data", name)
	}

	m.calculateStats()
	return m, nil
}

// calculateStats derives the two normalizers used by the gap penalty
// model: the average off diagonal score and a scale factor that relates
// gap costs to the average match score.
func (m *Matrix) calculateStats() {
	var mismatch, diag float64
	for r := 0; r < NumResidues; r++ {
		diag += float64(m.table[r][r])
		for c := 0; c < NumResidues; c++ {
			if r != c {
				mismatch += float64(m.table[r][c])
			}
		}
	}
	m.mismatchAvg = float32(mismatch / (NumResidues * (NumResidues - 1)))
	m.scale = float32(10 / (diag / NumResidues))
}

// Name returns the table name the matrix was loaded under.
func (m *Matrix) Name() string { return m.name }

// At returns the score for a residue pair.
func (m *Matrix) At(a, b Residue) float32 {
	return float32(m.table[a][b])
}

// Score returns the raw integer score for a residue pair.
func (m *Matrix) Score(a, b Residue) int16 {
	return m.table[a][b]
}

// MismatchAverage is the mean score of all non identical standard
// residue pairings, taken from the source data even for a shifted
// variant.
func (m *Matrix) MismatchAverage() float32 { return m.mismatchAvg }

// ScaleFactor relates gap penalties to the score magnitude of the table.
func (m *Matrix) ScaleFactor() float32 { return m.scale }

// Positive returns a variant with all residue pairing scores shifted up
// so the minimum becomes zero. Gap pairings stay zero; the statistics
// keep describing the unshifted data.
func (m *Matrix) Positive() *Matrix {
	min := m.table[0][0]
	for r := 0; r < AlphabetSize-1; r++ {
		for c := 0; c < AlphabetSize-1; c++ {
			if m.table[r][c] < min {
				min = m.table[r][c]
			}
		}
	}

	p := &Matrix{name: m.name, mismatchAvg: m.mismatchAvg, scale: m.scale}
	if min >= 0 {
		p.table = m.table
		return p
	}
	for r := 0; r < AlphabetSize-1; r++ {
		for c := 0; c < AlphabetSize-1; c++ {
			p.table[r][c] = m.table[r][c] - min
		}
	}
	return p
}
