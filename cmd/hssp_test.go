package cmd

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jglaser/xssp/internal/seqio"
)

func Test_hsspExec(t *testing.T) {
	in, _ := filepath.Abs(path.Join("..", "test", "msa.fa"))
	out, _ := filepath.Abs(path.Join("..", "test", "msa.hssp"))
	defer os.Remove(out)

	runHssp(hsspCmd, []string{in})

	contents, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("no report written to %s: %v", out, err)
	}
	if !strings.HasPrefix(string(contents), "HSSP") {
		t.Errorf("report does not start with the HSSP banner:\n%.200s", contents)
	}
	if !strings.HasSuffix(string(contents), "//\n") {
		t.Errorf("report is not terminated with //")
	}
}

func Test_toMSA(t *testing.T) {
	msa := toMSA([]seqio.Record{
		{ID: "query", Seq: "ARND"},
		{ID: "sp|P12345|HIT1/2-5", Desc: "first hit", Seq: "AR-D"},
	})

	if len(msa) != 2 {
		t.Fatalf("got %d sequences, want 2", len(msa))
	}
	if msa[0].ID != "query" || msa[0].Len() != 4 {
		t.Errorf("query = %+v", msa[0])
	}
	if msa[1].Acc != "P12345" || msa[1].Jfir != 2 || msa[1].Jlas != 5 {
		t.Errorf("hit accession or range not parsed: %+v", msa[1])
	}
	if msa[1].Desc != "first hit" {
		t.Errorf("hit description = %q", msa[1].Desc)
	}
}

func Test_describe(t *testing.T) {
	header := "DATE   file generated on 2010-07-01\n" +
		"PDBID  1tst\n" +
		"HEADER oxidoreductase\n" +
		"COMPND mol_id: 1; molecule: rubredoxin\n"

	want := "HEADER     oxidoreductase\n" +
		"COMPND     mol_id: 1; molecule: rubredoxin\n"
	if got := describe(header); got != want {
		t.Errorf("describe() = %q, want %q", got, want)
	}
}
