package seqio

import (
	"errors"
	"strings"
	"testing"

	"github.com/jglaser/xssp/internal/mas"
)

func Test_ReadFasta(t *testing.T) {
	type args struct {
		contents string
	}
	tests := []struct {
		name    string
		args    args
		want    []Record
		wantErr bool
	}{
		{
			"two plain records",
			args{">one\nACDEF\nGHIKL\n>two\nMNPQR\n"},
			[]Record{
				{ID: "one", Seq: "ACDEFGHIKL"},
				{ID: "two", Seq: "MNPQR"},
			},
			false,
		},
		{
			"description after the id",
			args{">sp|P12345|TEST  some protein\nACDEF\n"},
			[]Record{
				{ID: "sp|P12345|TEST", Desc: "some protein", Seq: "ACDEF"},
			},
			false,
		},
		{
			"aligned input keeps its gaps",
			args{">a\nAC-DE\n>b\nACQDE\n"},
			[]Record{
				{ID: "a", Seq: "AC-DE"},
				{ID: "b", Seq: "ACQDE"},
			},
			false,
		},
		{
			"windows line endings",
			args{">a\r\nACDEF\r\n"},
			[]Record{
				{ID: "a", Seq: "ACDEF"},
			},
			false,
		},
		{
			"no sequences at all",
			args{"this is not fasta\n"},
			nil,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFasta("test.fa", tt.args.contents)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFasta() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ReadFasta() = %d records, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func Test_WriteFasta(t *testing.T) {
	long := strings.Repeat("ACDEFGHIKL", 10)

	var sb strings.Builder
	err := WriteFasta(&sb, []Record{{ID: "long", Desc: "a wide one", Seq: long}})
	if err != nil {
		t.Fatal(err)
	}

	want := ">long a wide one\n" + long[:80] + "\n" + long[80:] + "\n"
	if sb.String() != want {
		t.Errorf("WriteFasta() = %q, want %q", sb.String(), want)
	}
}

const stockholmSample = `# STOCKHOLM 1.0
#=GF ID query
#=GF CC DATE   file generated on 2010-07-01
#=GF CC PDBID  1tst
#=GF CC HEADER oxidoreductase
#=GS query DE test query
#=GS hit1 DE first hit
#=GS hit2/3-12 DE second hit

query ACDEFGHIKL
hit1  ACDEFGH--L
hit2/3-12 ACDEF--IKL

query MNPQR
hit1  MNPQR
hit2/3-12 MN--R
//
`

func Test_ReadStockholm(t *testing.T) {
	st, err := ReadStockholm(stockholmSample, "query")
	if err != nil {
		t.Fatal(err)
	}

	if st.ID != " 1tst" {
		t.Errorf("ID = %q, want %q", st.ID, " 1tst")
	}
	if !strings.Contains(st.Header, "file generated on 2010-07-01") ||
		!strings.Contains(st.Header, "oxidoreductase") {
		t.Errorf("header lines missing: %q", st.Header)
	}

	want := []Record{
		{ID: "query", Seq: "ACDEFGHIKLMNPQR"},
		{ID: "hit1", Desc: "first hit", Seq: "ACDEFGH--LMNPQR"},
		{ID: "hit2/3-12", Desc: "second hit", Seq: "ACDEF--IKLMN--R"},
	}
	if len(st.Records) != len(want) {
		t.Fatalf("got %d records, want %d", len(st.Records), len(want))
	}
	for i, rec := range st.Records {
		if rec != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, rec, want[i])
		}
	}
}

func Test_ReadStockholm_queryFromAnnotation(t *testing.T) {
	st, err := ReadStockholm(stockholmSample, "")
	if err != nil {
		t.Fatal(err)
	}
	if st.Records[0].ID != "query" {
		t.Errorf("query id = %q, want %q", st.Records[0].ID, "query")
	}
	if len(st.Records) != 3 {
		t.Errorf("got %d records, want 3", len(st.Records))
	}
}

func Test_ReadStockholm_errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			"missing magic",
			"whatever\n//\n",
		},
		{
			"truncated file",
			"# STOCKHOLM 1.0\n#=GS a DE x\na ACDEF\nb ACDEF\n",
		},
		{
			"inconsistent block order",
			"# STOCKHOLM 1.0\na ACDEF\nb ACDEF\nc ACDEF\n\na ACDEF\nc ACDEF\nb ACDEF\n//\n",
		},
		{
			"single sequence",
			"# STOCKHOLM 1.0\na ACDEF\n//\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadStockholm(tt.contents, "a"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func Test_ReadStockholm_formatError(t *testing.T) {
	_, err := ReadStockholm("not stockholm", "q")

	var ferr *mas.FormatError
	if !errors.As(err, &ferr) {
		t.Errorf("error %v is not a FormatError", err)
	}
}
