package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("threads", 3)
	viper.Set("align.matrix", "BLOSUM")
	viper.Set("align.gap-open", 11.0)
	viper.Set("align.gap-extend", 0.1)
	viper.Set("align.format", "fasta")
	viper.Set("align.fork-depth", 2)
	viper.Set("hssp.cutoff", 0.05)
	viper.Set("hssp.max-hits", 250)

	c := New()

	if c.Threads != 3 {
		t.Errorf("Threads = %d, want 3", c.Threads)
	}
	if c.Align.Matrix != "BLOSUM" {
		t.Errorf("Align.Matrix = %q, want BLOSUM", c.Align.Matrix)
	}
	if c.Align.GapOpen != 11 {
		t.Errorf("Align.GapOpen = %v, want 11", c.Align.GapOpen)
	}
	if c.Align.GapExtend != 0.1 {
		t.Errorf("Align.GapExtend = %v, want 0.1", c.Align.GapExtend)
	}
	if c.Align.Format != "fasta" {
		t.Errorf("Align.Format = %q, want fasta", c.Align.Format)
	}
	if c.Align.ForkDepth != 2 {
		t.Errorf("Align.ForkDepth = %d, want 2", c.Align.ForkDepth)
	}
	if c.Hssp.Cutoff != 0.05 {
		t.Errorf("Hssp.Cutoff = %v, want 0.05", c.Hssp.Cutoff)
	}
	if c.Hssp.MaxHits != 250 {
		t.Errorf("Hssp.MaxHits = %d, want 250", c.Hssp.MaxHits)
	}
}

func TestNew_defaultThreads(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	c := New()
	if c.Threads < 1 {
		t.Errorf("Threads = %d, want at least 1", c.Threads)
	}
}
