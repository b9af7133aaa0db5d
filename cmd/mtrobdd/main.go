package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var log = logrus.New()

// verbose is registered on the global pflag.CommandLine FlagSet, in the
// style of the pack's larger CLIs that accumulate flags across several
// packages before handing them to cobra, then merged into rootCmd below.
var verbose = pflag.Bool("verbose", false, "enable debug-level logging")

func main() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(statsCmd)
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mtrobdd",
	Short: "Build and inspect shared MT-ROBDDs from a transition file",
	Long: `mtrobdd reads a text file of (source, symbol, choice, target)
transitions, inserts them into a shared multi-terminal reduced ordered
binary decision diagram, canonicalizes it, and reports on or exports the
result.`,
	// PersistentPreRun runs after cobra parses flags, so *verbose reflects
	// the command line rather than pflag.Bool's zero-value default.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if *verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().AddFlagSet(pflag.CommandLine)
}
