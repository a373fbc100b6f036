package hssp

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"time"
)

// Metadata carries the header fields of the report that do not derive
// from the alignment itself.
type Metadata struct {
	ProteinID   string
	Description string // extra header lines, each ending in a newline
	Databank    string
	Threshold   float32
	SeqLength   int
	NChain      int
	KChain      int
	UsedChains  string
}

const notation = `NOTATION : ID: EMBL/SWISSPROT identifier of the aligned (homologous) protein
NOTATION : STRID: if the 3-D structure of the aligned protein is known, then STRID is the Protein Data Bank identifier as taken
NOTATION : from the database reference or DR-line of the EMBL/SWISSPROT entry
NOTATION : %IDE: percentage of residue identity of the alignment
NOTATION : %SIM (%WSIM):  (weighted) similarity of the alignment
NOTATION : IFIR/ILAS: first and last residue of the alignment in the test sequence
NOTATION : JFIR/JLAS: first and last residue of the alignment in the alignend protein
NOTATION : LALI: length of the alignment excluding insertions and deletions
NOTATION : NGAP: number of insertions and deletions in the alignment
NOTATION : LGAP: total length of all insertions and deletions
NOTATION : LSEQ2: length of the entire sequence of the aligned protein
NOTATION : ACCNUM: SwissProt accession number
NOTATION : PROTEIN: one-line description of aligned protein
NOTATION : SeqNo,PDBNo,AA,STRUCTURE,BP1,BP2,ACC: sequential and PDB residue numbers, amino acid (lower case = Cys), secondary
NOTATION : structure, bridge partners, solvent exposure as in DSSP (Kabsch and Sander, Biopolymers 22, 2577-2637(1983)
NOTATION : VAR: sequence variability on a scale of 0-100 as derived from the NALIGN alignments
NOTATION : pair of lower case characters (AvaK) in the alignend sequence bracket a point of insertion in this sequence
NOTATION : dots (....) in the alignend sequence indicate points of deletion in this sequence
NOTATION : SEQUENCE PROFILE: relative frequency of an amino acid type at each position. Asx and Glx are in their
NOTATION : acid/amide form in proportion to their database frequencies
NOTATION : NOCC: number of aligned sequences spanning this position (including the test sequence)
NOTATION : NDEL: number of sequences with a deletion in the test protein at this position
NOTATION : NINS: number of sequences with an insertion in the test protein at this position
NOTATION : ENTROPY: entropy measure of sequence variability at this position
NOTATION : RELENT: relative entropy, i.e.  entropy normalized to the range 0-100
NOTATION : WEIGHT: conservation weight
`

// CreateOutput writes the full fixed width report: the header, the
// per hit statistics table, the alignment blocks of seventy hits, the
// residue profile with entropy, and the insertion list.
func CreateOutput(w io.Writer, meta Metadata, hits []*Hit, res []*Residue) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "HSSP       HOMOLOGY DERIVED SECONDARY STRUCTURE OF PROTEINS , VERSION 2.0 2011")
	fmt.Fprintf(bw, "PDBID      %s\n", meta.ProteinID)
	fmt.Fprintf(bw, "DATE       file generated on %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintf(bw, "SEQBASE    %s\n", meta.Databank)
	fmt.Fprintf(bw, "THRESHOLD  according to: t(L)=(290.15 * L ** -0.562) + %.6g\n", meta.Threshold*100)
	fmt.Fprintln(bw, "REFERENCE  Sander C., Schneider R. : Database of homology-derived protein structures. Proteins, 9:56-68 (1991).")
	fmt.Fprintln(bw, "CONTACT    Maintained at https://github.com/jglaser/xssp")
	fmt.Fprint(bw, meta.Description)
	fmt.Fprintf(bw, "SEQLENGTH %5d\n", meta.SeqLength)
	fmt.Fprintf(bw, "NCHAIN     %4d chain(s) in %s data set\n", meta.NChain, meta.ProteinID)
	if meta.KChain != meta.NChain {
		fmt.Fprintf(bw, "KCHAIN     %4d chain(s) used here ; chains(s) : %s\n", meta.KChain, meta.UsedChains)
	}
	fmt.Fprintf(bw, "NALIGN     %4d\n", len(hits))
	fmt.Fprint(bw, notation)
	fmt.Fprintln(bw)

	writeHitTable(bw, hits)
	writeAlignments(bw, hits, res)
	writeProfile(bw, res)
	writeInsertions(bw, hits)

	fmt.Fprintln(bw, "//")
	return bw.Flush()
}

func writeHitTable(w io.Writer, hits []*Hit) {
	fmt.Fprintln(w, "## PROTEINS : identifier and alignment statistics")
	fmt.Fprintln(w, "  NR.    ID         STRID   %IDE %WSIM IFIR ILAS JFIR JLAS LALI NGAP LGAP LSEQ2 ACCNUM     PROTEIN")

	for _, h := range hits {
		s := h.Seq

		pdb := s.PDB
		if pdb == "" {
			pdb = "    "
		}

		fmt.Fprintf(w, "%5d : %-12.12s%4.4s    %4.2f  %4.2f%5d%5d%5d%5d%5d%5d%5d%5d  %-10.10s %s\n",
			h.Nr, s.ID, pdb,
			h.Ide, h.Wsim, h.Ifir, h.Ilas, s.Jfir, s.Jlas, s.Length,
			s.Gaps, s.Gapn, s.Lseq(),
			s.Acc, s.Desc)
	}
}

func writeAlignments(w io.Writer, hits []*Hit, res []*Residue) {
	for i := 0; i < len(hits); i += 70 {
		n := i + 70
		if n > len(hits) {
			n = len(hits)
		}

		fmt.Fprintf(w, "## ALIGNMENTS %4d - %4d\n", i+1, n)
		fmt.Fprint(w, " SeqNo  PDBNo AA STRUCTURE BP1 BP2  ACC NOCC  VAR  ")
		for c := 0; c < 7; c++ {
			fmt.Fprintf(w, "....:....%1d", ((i+10*c)/10+1)%10)
		}
		fmt.Fprintln(w)

		for _, r := range res {
			if r.Letter == 0 {
				fmt.Fprintf(w, " %5d        !  !           0   0    0    0    0\n", r.SeqNr)
				continue
			}

			aln := make([]byte, 0, n-i)
			for _, h := range hits[i:n] {
				if r.SeqNr >= h.Ifir && r.SeqNr <= h.Ilas {
					aln = append(aln, h.Seq.seq[r.Pos])
				} else {
					aln = append(aln, ' ')
				}
			}

			ivar := int(100 * (1 - r.Consweight))
			fmt.Fprintf(w, " %5d%s%4d %4d  %s\n", r.SeqNr, r.Dssp, r.Nocc, ivar, aln)
		}
	}
}

func writeProfile(w io.Writer, res []*Residue) {
	fmt.Fprintln(w, "## SEQUENCE PROFILE AND ENTROPY")
	fmt.Fprintln(w, " SeqNo PDBNo   V   L   I   M   F   W   Y   G   A   P   S   T   C   H   R   K   Q   E   N   D  NOCC NDEL NINS ENTROPY RELENT WEIGHT")

	for _, r := range res {
		if r.Letter == 0 {
			fmt.Fprintf(w, "%5d          0   0   0   0   0   0   0   0   0   0   0   0   0   0   0   0   0   0   0   0     0    0    0   0.000      0  1.00\n", r.SeqNr)
			continue
		}

		fmt.Fprintf(w, "%5d%5d %c", r.SeqNr, r.PdbNr, r.Chain)
		for _, d := range r.Dist {
			fmt.Fprintf(w, "%4d", d)
		}

		relent := int(100 * float64(r.Entropy) / math.Log(20))
		fmt.Fprintf(w, "  %4d %4d %4d   %5.3f   %4d  %4.2f\n",
			r.Nocc, r.Ndel, r.Nins, r.Entropy, relent, r.Consweight)
	}
}

func writeInsertions(w io.Writer, hits []*Hit) {
	fmt.Fprintln(w, "## INSERTION LIST")
	fmt.Fprintln(w, " AliNo  IPOS  JPOS   Len Sequence")

	for _, h := range hits {
		for _, ins := range h.Seq.Insertions {
			fmt.Fprintf(w, " %5d %5d %5d %5d ", h.Nr, ins.Ipos+h.Offset, ins.Jpos, len(ins.Seq)-2)

			s := ins.Seq
			if len(s) <= 100 {
				fmt.Fprintln(w, s)
				continue
			}

			fmt.Fprintln(w, s[:100])
			for s = s[100:]; len(s) > 0; {
				n := min(len(s), 100)
				fmt.Fprintf(w, "     +                   %s\n", s[:n])
				s = s[n:]
			}
		}
	}
}
