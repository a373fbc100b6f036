// Package hmmer finds homologues of a query sequence by running
// jackhmmer, the iterative profile search of the HMMER suite, against
// a FASTA databank.
package hmmer

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/jglaser/xssp/internal/mas"
	"github.com/jglaser/xssp/internal/seqio"
)

// Options holds the settings of a jackhmmer run. The zero value picks
// a "jackhmmer" found on PATH, five search rounds and all CPUs.
type Options struct {
	// Path to the jackhmmer executable.
	Path string

	// Iterations is the maximum number of search rounds (-N).
	Iterations int

	// Threads is the worker count handed to jackhmmer (--cpu).
	Threads int
}

// jackhmmerExec is a small utility struct for executing jackhmmer on a
// query sequence.
type jackhmmerExec struct {
	// the query we're finding homologues for
	query seqio.Record

	// the path to the FASTA databank we're searching against
	db string

	// the query input file
	in *os.File

	// the alignment output file, Stockholm formatted
	out *os.File

	// path to the jackhmmer executable
	jackhmmerPath string

	// maximum number of search rounds
	iterations int

	// worker threads
	threads int
}

// Search runs jackhmmer for the query against the FASTA databank at db
// and returns the resulting multiple sequence alignment, the query
// record first.
func Search(query seqio.Record, db string, opts Options) (*seqio.Stockholm, error) {
	// make sure the databank exists
	if _, err := os.Stat(db); os.IsNotExist(err) {
		return nil, mas.Configf("no sequence databank at %s", db)
	}

	j, err := newJackhmmerExec(query, db, opts)
	if err != nil {
		return nil, err
	}
	defer j.close()

	// create the input file
	if err := j.create(); err != nil {
		return nil, fmt.Errorf("failed to create jackhmmer input file %s: %v", j.in.Name(), err)
	}

	// execute jackhmmer
	if err := j.run(); err != nil {
		return nil, err
	}

	// parse the output file into an alignment
	return j.parse()
}

func newJackhmmerExec(query seqio.Record, db string, opts Options) (*jackhmmerExec, error) {
	in, err := os.CreateTemp("", "jackhmmer-in-*.fa")
	if err != nil {
		return nil, err
	}
	out, err := os.CreateTemp("", "jackhmmer-out-*.sto")
	if err != nil {
		os.Remove(in.Name())
		return nil, err
	}

	path := opts.Path
	if path == "" {
		path = "jackhmmer"
	}
	iterations := opts.Iterations
	if iterations < 1 {
		iterations = 5
	}
	threads := opts.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	return &jackhmmerExec{
		query:         query,
		db:            db,
		in:            in,
		out:           out,
		jackhmmerPath: path,
		iterations:    iterations,
		threads:       threads,
	}, nil
}

// create writes the query sequence to the input file
func (j *jackhmmerExec) create() error {
	if err := seqio.WriteFasta(j.in, []seqio.Record{j.query}); err != nil {
		return err
	}
	return j.in.Close()
}

// run calls the external jackhmmer binary
func (j *jackhmmerExec) run() error {
	hmmerCmd := exec.Command(
		j.jackhmmerPath,
		"-N", strconv.Itoa(j.iterations),
		"--cpu", strconv.Itoa(j.threads),
		"--noali",
		"-o", os.DevNull,
		"-A", j.out.Name(),
		j.in.Name(),
		j.db,
	)

	log.Debugf("running %s", strings.Join(hmmerCmd.Args, " "))

	// execute jackhmmer and wait on it to finish
	if output, err := hmmerCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to execute jackhmmer against %s: %v: %s", j.db, err, string(output))
	}
	return nil
}

// parse reads the Stockholm output into an alignment
func (j *jackhmmerExec) parse() (*seqio.Stockholm, error) {
	fileBytes, err := os.ReadFile(j.out.Name())
	if err != nil {
		return nil, err
	}
	return seqio.ReadStockholm(string(fileBytes), j.query.ID)
}

// close removes the temporary input and output files
func (j *jackhmmerExec) close() {
	os.Remove(j.in.Name())
	os.Remove(j.out.Name())
}
