// Package cmd is for command line interactions with the mas application
package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "mas",
	Short: `Align protein sequences into a multiple sequence alignment and
derive HSSP style homology statistics from it`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		switch {
		case verbosity == 1:
			log.SetLevel(log.DebugLevel)
		case verbosity > 1:
			log.SetLevel(log.TraceLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	RootCmd.PersistentFlags().CountP("verbose", "v", "print debug logs, repeat for trace logs")
	RootCmd.PersistentFlags().IntP("threads", "T", 0, "worker threads, all CPUs when zero")

	viper.BindPFlag("threads", RootCmd.PersistentFlags().Lookup("threads"))
}
