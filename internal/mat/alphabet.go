// Package mat implements the protein residue alphabet and the substitution
// matrices used to score residue pairs. Matrices are shipped as NCBI format
// text tables and parsed at startup into fixed lookup tables.
package mat

import (
	"github.com/jglaser/xssp/internal/mas"
)

// Residue is the numeric code of an amino acid within Letters.
type Residue byte

// Letters lists the alphabet in code order. The first twenty are the
// standard amino acids, followed by the ambiguity codes B (Asx) and
// Z (Glx), X for unknown and finally the gap.
const Letters = "ARNDCQEGHILKMFPSTWYVBZX-"

const (
	// AlphabetSize is the number of distinct residue codes, gap included.
	AlphabetSize = 24

	// NumResidues is the number of standard amino acids, codes 0..19.
	NumResidues = 20

	// CodeX is the sentinel for an unknown residue.
	CodeX Residue = 22

	// GapCode marks a gap position within an aligned sequence.
	GapCode Residue = 23
)

const invalidResidue = 0xff

var codeOf [256]byte

func init() {
	for i := range codeOf {
		codeOf[i] = invalidResidue
	}
	for i := 0; i < len(Letters); i++ {
		c := Letters[i]
		codeOf[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			codeOf[c+'a'-'A'] = byte(i)
		}
	}
}

// EncodeLetter maps a single residue letter, either case, to its code.
// The alternate gap spellings '.', '*' and '~' fold into the gap code.
func EncodeLetter(c byte) (Residue, bool) {
	if c == '.' || c == '*' || c == '~' {
		c = '-'
	}
	r := codeOf[c]
	if r == invalidResidue {
		return 0, false
	}
	return Residue(r), true
}

// Encode translates a residue string into codes. Unknown letters yield a
// FormatError naming the offending character.
func Encode(s string) ([]Residue, error) {
	seq := make([]Residue, 0, len(s))
	for i := 0; i < len(s); i++ {
		r, ok := EncodeLetter(s[i])
		if !ok {
			return nil, mas.Formatf("invalid residue in sequence %c", s[i])
		}
		seq = append(seq, r)
	}
	return seq, nil
}

// Decode renders residue codes back into their upper case letters.
func Decode(seq []Residue) string {
	b := make([]byte, len(seq))
	for i, r := range seq {
		b[i] = Letters[r]
	}
	return string(b)
}
