package cmd

import "testing"

func Test_inputParser_guessOutput(t *testing.T) {
	p := inputParser{}

	tests := []struct {
		name string
		in   string
		ext  string
		want string
	}{
		{"swap extension", "seqs.fasta", ".aln", "seqs.aln"},
		{"keep directory", "testdata/seqs.fa", ".hssp", "testdata/seqs.hssp"},
		{"no extension", "seqs", ".aln", "seqs.aln"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.guessOutput(tt.in, tt.ext); got != tt.want {
				t.Errorf("guessOutput(%q, %q) = %q, want %q", tt.in, tt.ext, got, tt.want)
			}
		})
	}
}
