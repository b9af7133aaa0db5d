package main

import (
	"github.com/spf13/cobra"

	"github.com/mamonata/mtrobdd/adapter"
)

var (
	buildMaxChoices int
	buildDotPath    string
)

var buildCmd = &cobra.Command{
	Use:   "build <transitions-file>",
	Short: "Build a diagram from a transition file and report its stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		log.WithField("file", path).Info("loading transitions")
		transitions, err := loadTransitions(path)
		if err != nil {
			return err
		}
		log.WithField("count", len(transitions)).Info("loaded transitions")

		se := adapter.ByteSymbolEncoder{}
		ce := adapter.NewIndexChoiceEncoder(buildMaxChoices)
		varnum := se.NumAlphabetVars() + ce.NumChoiceVars()

		d, err := adapter.BuildDiagram(varnum, se, ce, &sliceIterator{items: transitions})
		if err != nil {
			return err
		}

		log.WithFields(logrusFields(d)).Info("diagram built")
		cmd.Println(d.Stats())

		if buildDotPath != "" {
			if err := d.SaveAsDot(buildDotPath); err != nil {
				return err
			}
			log.WithField("path", buildDotPath).Info("wrote dot file")
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().IntVar(&buildMaxChoices, "max-choices", 1, "upper bound on the number of parallel successors per (source, symbol)")
	buildCmd.Flags().StringVar(&buildDotPath, "dot", "", "write the resulting diagram as a DOT file to this path")
}
