package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Flags contains parsed cobra flags like "in" and "out" that are used
// by both the align and the hssp command.
type Flags struct {
	// the name of the file sequences are read from
	in string

	// the name of the file the report is written to, "stdout" for the screen
	out string

	// the name of the file the guide tree is written to, newick formatted
	tree string

	// the name of a sidecar file with secondary structure annotations
	ss string

	// the path of the FASTA databank searched for homologues
	databank string

	// whether anchor positions in annotated input are ignored
	ignorePositions bool
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// parseAlignFlags gathers the in path, out path and report settings from
// the align command.
func parseAlignFlags(cmd *cobra.Command, args []string) *Flags {
	var err error
	fs := &Flags{}
	p := inputParser{}

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		if len(args) > 0 {
			fs.in = args[0]
		} else if fs.in, err = p.guessInput(); err != nil {
			cmd.Help()
			log.Fatal(err)
		}
	}

	if fs.out, err = cmd.Flags().GetString("out"); fs.out == "" || err != nil {
		fs.out = p.guessOutput(fs.in, ".aln")
	}

	fs.tree, _ = cmd.Flags().GetString("out-tree")
	fs.ignorePositions, _ = cmd.Flags().GetBool("ignore-pos-nr")

	if ss, _ := cmd.Flags().GetBool("ss"); ss {
		fs.ss = p.guessOutput(fs.in, ".ss")
	}

	return fs
}

// parseHsspFlags gathers the in path, out path and databank from the
// hssp command.
func parseHsspFlags(cmd *cobra.Command, args []string) *Flags {
	var err error
	fs := &Flags{}
	p := inputParser{}

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		if len(args) > 0 {
			fs.in = args[0]
		} else if fs.in, err = p.guessInput(); err != nil {
			cmd.Help()
			log.Fatal(err)
		}
	}

	if fs.out, err = cmd.Flags().GetString("out"); fs.out == "" || err != nil {
		fs.out = p.guessOutput(fs.in, ".hssp")
	}

	fs.databank, _ = cmd.Flags().GetString("databank")

	if ss, _ := cmd.Flags().GetBool("ss"); ss {
		fs.ss = p.guessOutput(fs.in, ".ss")
	}

	return fs
}

// guessInput returns the first fasta file in the current directory. Is used
// if the user hasn't specified an input file.
func (p *inputParser) guessInput() (in string, err error) {
	dir, _ := filepath.Abs(".")
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := strings.ToUpper(filepath.Ext(file.Name()))
		if ext == ".FA" || ext == ".FASTA" {
			return file.Name(), nil
		}
	}

	return "", fmt.Errorf("failed: no input argument set and no fasta file found in %s", dir)
}

// guessOutput gets an output path from an input path (if no output path is
// specified). It uses the same name as the input path to create an output.
func (p *inputParser) guessOutput(in, ext string) (out string) {
	inExt := filepath.Ext(in)
	noExt := in[0 : len(in)-len(inExt)]
	return noExt + ext
}

// openOutput creates the output file, or hands out the screen when the
// name is the literal "stdout".
func openOutput(out string) *os.File {
	if out == "stdout" {
		return os.Stdout
	}

	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("failed to create output file %s: %v", out, err)
	}
	return f
}
