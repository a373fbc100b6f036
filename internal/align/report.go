package align

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jglaser/xssp/internal/mas"
	"github.com/jglaser/xssp/internal/mat"
)

// Report writes the alignment in the named format, "clustalw" or
// "fasta".
func Report(w io.Writer, alignment []*Entry, format string) error {
	switch format {
	case "clustalw":
		return reportClustal(w, alignment)
	case "fasta":
		return reportFasta(w, alignment)
	default:
		return mas.Configf("unknown output format '%s'", format)
	}
}

func reportClustal(w io.Writer, alignment []*Entry) error {
	if len(alignment) == 0 {
		return nil
	}

	seqs := make([]string, len(alignment))
	idw := 10
	for i, e := range alignment {
		seqs[i] = mat.Decode(e.Seq)
		if len(e.ID) > idw {
			idw = len(e.ID)
		}
	}

	n := len(seqs[0])
	marks := make([]byte, n)
	for k := 0; k < n; k++ {
		c := seqs[0][k]
		conserved := c != '-'
		for i := 1; conserved && i < len(seqs); i++ {
			conserved = seqs[i][k] == c
		}
		if conserved {
			marks[k] = '*'
		} else {
			marks[k] = ' '
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "CLUSTAL W multiple sequence alignment\n\n")

	for offset := 0; offset < n; offset += 60 {
		end := min(offset+60, n)
		for i, e := range alignment {
			fmt.Fprintf(bw, "%-*s  %s\n", idw, e.ID, seqs[i][offset:end])
		}
		mark := strings.TrimRight(string(marks[offset:end]), " ")
		if mark != "" {
			fmt.Fprintf(bw, "%-*s  %s\n", idw, "", mark)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

func reportFasta(w io.Writer, alignment []*Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range alignment {
		fmt.Fprintf(bw, ">%s\n", e.ID)
		s := mat.Decode(e.Seq)
		for len(s) > 80 {
			fmt.Fprintln(bw, s[:80])
			s = s[80:]
		}
		fmt.Fprintln(bw, s)
	}
	return bw.Flush()
}
