// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// AlignConfig is settings for the progressive aligner
type AlignConfig struct {
	// the substitution matrix family scored against
	Matrix string `mapstructure:"matrix"`

	// the penalty for opening a gap
	GapOpen float32 `mapstructure:"gap-open"`

	// the penalty for extending an open gap
	GapExtend float32 `mapstructure:"gap-extend"`

	// the weight of the residue specific gap penalty modifiers
	Magic float32 `mapstructure:"magic"`

	// the alignment report format, clustalw or fasta
	Format string `mapstructure:"format"`

	// the guide tree depth down to which alignments fork goroutines,
	// zero derives it from the thread count
	ForkDepth int `mapstructure:"fork-depth"`
}

// HsspConfig is settings for homology searching and the HSSP report
type HsspConfig struct {
	// the margin a hit needs over the length dependent homology
	// threshold to be kept
	Cutoff float32 `mapstructure:"cutoff"`

	// the maximum number of hits in the report, zero keeps all
	MaxHits int `mapstructure:"max-hits"`

	// the path to the jackhmmer executable
	Jackhmmer string `mapstructure:"jackhmmer"`

	// the number of jackhmmer search rounds
	Iterations int `mapstructure:"iterations"`
}

// Config is the root-level settings struct and is a mix of settings
// bound to command line arguments and their defaults
type Config struct {
	// worker threads for the distance matrix, the aligner forks and
	// the conservation statistics
	Threads int `mapstructure:"threads"`

	// aligner settings
	Align AlignConfig `mapstructure:"align"`

	// homology search settings
	Hssp HsspConfig `mapstructure:"hssp"`
}

// New returns a new Config struct populated by Viper settings bound
// to command line arguments
func New() *Config {
	c := &Config{}

	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}

	if c.Threads < 1 {
		c.Threads = runtime.NumCPU()
	}

	return c
}
