package cmd

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func Test_alignExec(t *testing.T) {
	in, _ := filepath.Abs(path.Join("..", "test", "ubiquitin.fa"))
	out, _ := filepath.Abs(path.Join("..", "test", "ubiquitin.aln"))
	defer os.Remove(out)

	type args struct {
		cmd  *cobra.Command
		args []string
	}
	tests := []struct {
		name string
		args args
	}{
		{
			"end to end test",
			args{
				cmd:  alignCmd,
				args: []string{in},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runAlign(tt.args.cmd, tt.args.args)

			contents, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("no alignment written to %s: %v", out, err)
			}
			if !strings.HasPrefix(string(contents), "CLUSTAL W") {
				t.Errorf("alignment is not clustalw formatted:\n%s", contents)
			}
			if !strings.Contains(string(contents), "UBIQ_HUMAN") {
				t.Errorf("missing sequence row:\n%s", contents)
			}
		})
	}
}
