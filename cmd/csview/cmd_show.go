package main

import (
	"os"

	"github.com/bjaus/csview"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var (
		hasHeader  bool
		maxLineLen int
	)

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Render a CSV file as an aligned table",
		Long: `Render a CSV file as an aligned table on stdout.

If no file is provided, reads CSV data from stdin.

Use -H to treat the first line as a header row; the header is rendered
above a dashed rule and fixes the number of displayed columns.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args, hasHeader, maxLineLen)
			if err != nil {
				return err
			}
			defer doc.Release()
			return csview.Write(os.Stdout, csview.Table, doc)
		},
	}

	cmd.Flags().BoolVarP(&hasHeader, "header", "H", false, "treat the first line as a header row")
	cmd.Flags().IntVar(&maxLineLen, "max-line-len", csview.DefaultMaxLineLen, "line length cap in bytes; longer lines are truncated")

	return cmd
}
