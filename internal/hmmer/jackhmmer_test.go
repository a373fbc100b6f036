package hmmer

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jglaser/xssp/internal/seqio"
)

const searchResult = `# STOCKHOLM 1.0
#=GS lysozyme DE test query
#=GS hit1/2-8 DE a close homologue
lysozyme ARNDCQE
hit1/2-8 ARNECQE
//
`

func Test_newJackhmmerExec(t *testing.T) {
	j, err := newJackhmmerExec(seqio.Record{ID: "q", Seq: "ARND"}, "db.fa", Options{})
	if err != nil {
		t.Fatal(err)
	}

	if j.jackhmmerPath != "jackhmmer" {
		t.Errorf("path = %q, want jackhmmer", j.jackhmmerPath)
	}
	if j.iterations != 5 {
		t.Errorf("iterations = %d, want 5", j.iterations)
	}
	if j.threads < 1 {
		t.Errorf("threads = %d, want at least 1", j.threads)
	}
	if j.in.Name() == j.out.Name() {
		t.Error("input and output share a file")
	}

	j.close()

	if _, err := os.Stat(j.in.Name()); !os.IsNotExist(err) {
		t.Errorf("input file %s was not removed", j.in.Name())
	}
	if _, err := os.Stat(j.out.Name()); !os.IsNotExist(err) {
		t.Errorf("output file %s was not removed", j.out.Name())
	}
}

func Test_jackhmmerExec_create(t *testing.T) {
	j, err := newJackhmmerExec(seqio.Record{ID: "q", Desc: "test query", Seq: "ARND"}, "db.fa", Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer j.close()

	if err := j.create(); err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(j.in.Name())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(contents), ">q test query\nARND\n"; got != want {
		t.Errorf("input file = %q, want %q", got, want)
	}
}

func Test_jackhmmerExec_parse(t *testing.T) {
	j, err := newJackhmmerExec(seqio.Record{ID: "lysozyme", Seq: "ARNDCQE"}, "db.fa", Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer j.close()

	if err := os.WriteFile(j.out.Name(), []byte(searchResult), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := j.parse()
	if err != nil {
		t.Fatal(err)
	}

	if len(st.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(st.Records))
	}
	if st.Records[0].ID != "lysozyme" || st.Records[0].Seq != "ARNDCQE" {
		t.Errorf("query record = %+v", st.Records[0])
	}
	if st.Records[1].ID != "hit1/2-8" || st.Records[1].Seq != "ARNECQE" {
		t.Errorf("hit record = %+v", st.Records[1])
	}
	if st.Records[1].Desc != "a close homologue" {
		t.Errorf("hit description = %q", st.Records[1].Desc)
	}
}

func Test_Search(t *testing.T) {
	dir := t.TempDir()

	db := filepath.Join(dir, "uniprot.fa")
	if err := os.WriteFile(db, []byte(">hit1 a close homologue\nQARNECQEK\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := filepath.Join(dir, "result.sto")
	if err := os.WriteFile(result, []byte(searchResult), 0o644); err != nil {
		t.Fatal(err)
	}

	// stand-in executable that copies a canned alignment to the -A target
	stub := filepath.Join(dir, "jackhmmer")
	script := fmt.Sprintf("#!/bin/sh\nwhile [ $# -gt 0 ]; do\n\tif [ \"$1\" = \"-A\" ]; then\n\t\tcp '%s' \"$2\"\n\tfi\n\tshift\ndone\n", result)
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	st, err := Search(seqio.Record{ID: "lysozyme", Seq: "ARNDCQE"}, db, Options{Path: stub, Iterations: 2, Threads: 1})
	if err != nil {
		t.Fatal(err)
	}

	if len(st.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(st.Records))
	}
	if st.Records[0].ID != "lysozyme" {
		t.Errorf("query record = %+v", st.Records[0])
	}
	if st.Records[1].ID != "hit1/2-8" {
		t.Errorf("hit record = %+v", st.Records[1])
	}
}

func Test_Search_missingDatabank(t *testing.T) {
	_, err := Search(seqio.Record{ID: "q", Seq: "ARND"}, filepath.Join(t.TempDir(), "nope.fa"), Options{})
	if err == nil {
		t.Fatal("expected an error for a missing databank")
	}
}
