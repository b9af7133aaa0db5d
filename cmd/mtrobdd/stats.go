package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mamonata/mtrobdd"
	"github.com/mamonata/mtrobdd/adapter"
)

var statsMaxChoices int

var statsCmd = &cobra.Command{
	Use:   "stats <transitions-file>",
	Short: "Build a diagram and print its root and node counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transitions, err := loadTransitions(args[0])
		if err != nil {
			return err
		}

		se := adapter.ByteSymbolEncoder{}
		ce := adapter.NewIndexChoiceEncoder(statsMaxChoices)
		varnum := se.NumAlphabetVars() + ce.NumChoiceVars()

		d, err := adapter.BuildDiagram(varnum, se, ce, &sliceIterator{items: transitions})
		if err != nil {
			return err
		}
		cmd.Println(d.Stats())
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsMaxChoices, "max-choices", 1, "upper bound on the number of parallel successors per (source, symbol)")
}

func logrusFields(d *mtrobdd.Diagram) logrus.Fields {
	return logrus.Fields{
		"varnum": d.Varnum(),
		"nodes":  d.NodeCount(),
		"roots":  len(d.Roots()),
	}
}
