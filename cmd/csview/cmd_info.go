package main

import (
	"os"

	"github.com/bjaus/csview"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var (
		hasHeader  bool
		maxLineLen int
	)

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Print row and column counts for a CSV file",
		Long: `Print a summary of a CSV file: row count, column count, and
whether a header row is present.

If no file is provided, reads CSV data from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args, hasHeader, maxLineLen)
			if err != nil {
				return err
			}
			defer doc.Release()
			return csview.Write(os.Stdout, csview.Info, doc)
		},
	}

	cmd.Flags().BoolVarP(&hasHeader, "header", "H", false, "treat the first line as a header row")
	cmd.Flags().IntVar(&maxLineLen, "max-line-len", csview.DefaultMaxLineLen, "line length cap in bytes; longer lines are truncated")

	return cmd
}
