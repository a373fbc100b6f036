package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jglaser/xssp/config"
	"github.com/jglaser/xssp/internal/hmmer"
	"github.com/jglaser/xssp/internal/hssp"
	"github.com/jglaser/xssp/internal/seqio"
)

// hsspCmd is for deriving homology statistics from an alignment or a
// databank search and writing the HSSP report.
var hsspCmd = &cobra.Command{
	Use:                        "hssp [input file]",
	Short:                      "Derive HSSP homology statistics for a query protein",
	Run:                        runHssp,
	SuggestionsMinimumDistance: 2,
	Long: `
Write an HSSP report for a query protein. The input is either a
multiple sequence alignment with the query as its first row, FASTA or
Stockholm 1.0 formatted, or a single query sequence combined with
--databank, in which case jackhmmer collects the alignment first.

Hits failing the length dependent homology threshold are dropped, the
remainder is ranked and capped at --max-hits, and every query position
receives its amino acid distribution, entropy and conservation weight.`,
}

func runHssp(cmd *cobra.Command, args []string) {
	fs := parseHsspFlags(cmd, args)
	c := config.New()

	contents, err := os.ReadFile(fs.in)
	if err != nil {
		log.Fatalf("failed to read %s: %v", fs.in, err)
	}

	var (
		msa  []*hssp.Seq
		meta hssp.Metadata
	)
	if strings.HasPrefix(string(contents), "# STOCKHOLM 1.0") {
		st, err := seqio.ReadStockholm(string(contents), "")
		if err != nil {
			log.Fatal(err)
		}
		msa = toMSA(st.Records)
		meta.ProteinID = strings.TrimSpace(st.ID)
		meta.Description = describe(st.Header)
	} else {
		recs, err := seqio.ReadFasta(fs.in, string(contents))
		if err != nil {
			log.Fatal(err)
		}

		if len(recs) == 1 {
			// a bare query, collect its homologues first
			if fs.databank == "" {
				log.Fatalf("%s holds a single sequence and no --databank to search was given", fs.in)
			}

			query := recs[0]
			// trailing X's carry no signal for the search
			query.Seq = strings.TrimRight(query.Seq, "X")

			st, err := hmmer.Search(query, fs.databank, hmmer.Options{
				Path:       c.Hssp.Jackhmmer,
				Iterations: c.Hssp.Iterations,
				Threads:    c.Threads,
			})
			if err != nil {
				log.Fatal(err)
			}
			recs = st.Records
		}
		msa = toMSA(recs)
	}

	opts := hssp.Options{
		MaxHits: c.Hssp.MaxHits,
		Cutoff:  c.Hssp.Cutoff,
		Threads: c.Threads,
	}
	if fs.databank != "" {
		opts.Databank = filepath.Base(fs.databank)
	}
	if fs.ss != "" {
		ss, err := seqio.ReadSecStructFile(fs.ss)
		if err != nil {
			log.Fatalf("failed to read %s: %v", fs.ss, err)
		}
		opts.SS = ss[msa[0].ID]
	}

	w := openOutput(fs.out)
	if w != os.Stdout {
		defer w.Close()
	}

	progress := &barProgress{}
	opts.Progress = progress
	err = hssp.CreateHSSP(w, msa, meta, opts)
	progress.finish()
	if err != nil {
		log.Fatal(err)
	}
}

// toMSA converts alignment records into scored hit sequences, the query
// first.
func toMSA(recs []seqio.Record) []*hssp.Seq {
	msa := make([]*hssp.Seq, 0, len(recs))
	for _, rec := range recs {
		s := hssp.NewSeq(rec.ID, rec.Desc)
		s.Append(rec.Seq)
		msa = append(msa, s)
	}
	return msa
}

// describe turns stockholm annotation lines into report header lines.
// The first seven columns of an annotation line name its field; the
// fields already printed by the report itself are skipped.
func describe(header string) string {
	var b strings.Builder
	for _, line := range strings.Split(header, "\n") {
		if len(line) <= 7 {
			continue
		}
		field := strings.TrimSpace(line[:7])
		if field == "DATE" || field == "PDBID" {
			continue
		}
		fmt.Fprintf(&b, "%-11s%s\n", field, line[7:])
	}
	return b.String()
}

// set flags
func init() {
	hsspCmd.Flags().StringP("in", "i", "", "input query FASTA, alignment FASTA or Stockholm file")
	hsspCmd.Flags().StringP("out", "o", "", `output file name, "stdout" for the screen`)
	hsspCmd.Flags().StringP("databank", "d", "", "FASTA databank to search for homologues")
	hsspCmd.Flags().Bool("ss", false, "read secondary structure from a .ss file next to the input")
	hsspCmd.Flags().Float32("cutoff", 0.05, "margin over the length dependent homology threshold")
	hsspCmd.Flags().Int("max-hits", 5000, "maximum number of hits in the report, zero keeps all")
	hsspCmd.Flags().String("jackhmmer", "jackhmmer", "path to the jackhmmer executable")
	hsspCmd.Flags().IntP("iterations", "I", 5, "number of jackhmmer search rounds")

	viper.BindPFlag("hssp.cutoff", hsspCmd.Flags().Lookup("cutoff"))
	viper.BindPFlag("hssp.max-hits", hsspCmd.Flags().Lookup("max-hits"))
	viper.BindPFlag("hssp.jackhmmer", hsspCmd.Flags().Lookup("jackhmmer"))
	viper.BindPFlag("hssp.iterations", hsspCmd.Flags().Lookup("iterations"))

	RootCmd.AddCommand(hsspCmd)
}
