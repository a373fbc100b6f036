// Package seqio reads and writes the sequence file formats the tools
// consume: FASTA, Stockholm 1.0 and secondary structure sidecars.
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jglaser/xssp/internal/mas"
)

// Record is one named sequence. Seq holds plain residue letters, with
// gaps when the record came from an alignment.
type Record struct {
	ID   string
	Desc string
	Seq  string
}

// ReadFasta parses FASTA formatted contents. The path is only used in
// error messages.
func ReadFasta(path, contents string) ([]Record, error) {
	var recs []Record
	cur := -1

	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimRight(line, " \t\r")

		if strings.HasPrefix(line, ">") {
			id, desc := line[1:], ""
			if s := strings.IndexAny(id, " \t"); s >= 0 {
				id, desc = id[:s], strings.TrimSpace(id[s+1:])
			}
			recs = append(recs, Record{ID: id, Desc: desc})
			cur = len(recs) - 1
			continue
		}

		if cur < 0 || line == "" {
			continue
		}
		recs[cur].Seq += strings.ReplaceAll(line, " ", "")
	}

	if len(recs) == 0 {
		return nil, mas.Formatf("no sequences found in %s", path)
	}
	return recs, nil
}

// ReadFastaFile reads and parses the named FASTA file.
func ReadFastaFile(path string) ([]Record, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadFasta(path, string(contents))
}

// WriteFasta writes the records FASTA formatted, wrapping sequence lines
// at 80 columns.
func WriteFasta(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range recs {
		if rec.Desc != "" {
			fmt.Fprintf(bw, ">%s %s\n", rec.ID, rec.Desc)
		} else {
			fmt.Fprintf(bw, ">%s\n", rec.ID)
		}

		s := rec.Seq
		for len(s) > 80 {
			fmt.Fprintln(bw, s[:80])
			s = s[80:]
		}
		fmt.Fprintln(bw, s)
	}
	return bw.Flush()
}
