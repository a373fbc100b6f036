package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jglaser/xssp/config"
	"github.com/jglaser/xssp/internal/align"
	"github.com/jglaser/xssp/internal/mat"
	"github.com/jglaser/xssp/internal/seqio"
)

// alignCmd is for aligning the sequences of a FASTA file into a
// multiple sequence alignment.
var alignCmd = &cobra.Command{
	Use:                        "align [input file]",
	Short:                      "Align protein sequences into a multiple sequence alignment",
	Run:                        runAlign,
	SuggestionsMinimumDistance: 2,
	Long: `
Align two or more protein sequences. Pairwise distances order the
sequences into a neighbour joining guide tree, and profiles are merged
progressively along that tree with position specific gap penalties.

Entries annotated with position numbers, taken over from structure
derived input, keep those columns anchored to one another. Pass
--ignore-pos-nr to align such input unconstrained. With --ss a sidecar
file next to the input supplies secondary structure codes that lower
the gap penalties outside helices and strands.`,
}

func runAlign(cmd *cobra.Command, args []string) {
	fs := parseAlignFlags(cmd, args)
	c := config.New()

	recs, err := seqio.ReadFastaFile(fs.in)
	if err != nil {
		log.Fatalf("failed to read %s: %v", fs.in, err)
	}
	data, err := align.FromRecords(recs)
	if err != nil {
		log.Fatal(err)
	}

	if fs.ss != "" {
		ss, err := seqio.ReadSecStructFile(fs.ss)
		if err != nil {
			log.Fatalf("failed to read %s: %v", fs.ss, err)
		}
		if err := align.AttachSS(data, ss); err != nil {
			log.Fatal(err)
		}
	}

	family, err := mat.LoadFamily(c.Align.Matrix)
	if err != nil {
		log.Fatal(err)
	}

	progress := &barProgress{}
	alignment, root, err := align.Align(data, align.Options{
		Family:          family,
		GapOpen:         c.Align.GapOpen,
		GapExtend:       c.Align.GapExtend,
		Magic:           c.Align.Magic,
		IgnorePositions: fs.ignorePositions,
		Threads:         c.Threads,
		ForkDepth:       c.Align.ForkDepth,
		Progress:        progress,
	})
	progress.finish()
	if err != nil {
		log.Fatal(err)
	}

	if fs.tree != "" {
		f, err := os.Create(fs.tree)
		if err != nil {
			log.Fatalf("failed to write guide tree %s: %v", fs.tree, err)
		}
		fmt.Fprintf(f, "%s;\n", root)
		f.Close()
	}

	w := openOutput(fs.out)
	if w != os.Stdout {
		defer w.Close()
	}
	if err := align.Report(w, alignment, c.Align.Format); err != nil {
		log.Fatal(err)
	}
}

// set flags
func init() {
	alignCmd.Flags().StringP("in", "i", "", "input FASTA with sequences to align")
	alignCmd.Flags().StringP("out", "o", "", `output file name, "stdout" for the screen`)
	alignCmd.Flags().StringP("format", "f", "clustalw", "output format [clustalw/fasta]")
	alignCmd.Flags().String("out-tree", "", "write the guide tree to this file, newick formatted")
	alignCmd.Flags().Bool("ss", false, "read secondary structure from a .ss file next to the input")
	alignCmd.Flags().Bool("ignore-pos-nr", false, "do not keep anchor positions from annotated input")
	alignCmd.Flags().StringP("matrix", "m", "BLOSUM", "substitution matrix family")
	alignCmd.Flags().Float32("gap-open", 10, "gap open penalty")
	alignCmd.Flags().Float32("gap-extend", 0.2, "gap extension penalty")
	alignCmd.Flags().Float32("magic", 0.1, "weight of the residue specific gap modifiers")
	alignCmd.Flags().Int("fork-depth", 0, "guide tree depth aligned concurrently, 0 to derive from threads")

	viper.BindPFlag("align.matrix", alignCmd.Flags().Lookup("matrix"))
	viper.BindPFlag("align.gap-open", alignCmd.Flags().Lookup("gap-open"))
	viper.BindPFlag("align.gap-extend", alignCmd.Flags().Lookup("gap-extend"))
	viper.BindPFlag("align.magic", alignCmd.Flags().Lookup("magic"))
	viper.BindPFlag("align.format", alignCmd.Flags().Lookup("format"))
	viper.BindPFlag("align.fork-depth", alignCmd.Flags().Lookup("fork-depth"))

	RootCmd.AddCommand(alignCmd)
}
