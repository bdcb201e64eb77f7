package main

import (
	"fmt"
	"os"

	"github.com/bjaus/csview"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var (
		hasHeader  bool
		formatName string
		output     string
		maxLineLen int
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a CSV file to another format",
		Long: `Convert a CSV file to another output format.

If no file is provided, reads CSV data from stdin. Output goes to stdout
unless -o names a destination file (created or truncated).

Supported formats: csv, table, markdown, json, yaml, info.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := csview.ParseFormat(formatName)
			if err != nil {
				return err
			}

			doc, err := loadDocument(args, hasHeader, maxLineLen)
			if err != nil {
				return err
			}
			defer doc.Release()

			if output == "" {
				return csview.Write(os.Stdout, f, doc)
			}

			out, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := csview.Write(out, f, doc); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}

	cmd.Flags().BoolVarP(&hasHeader, "header", "H", false, "treat the first line as a header row")
	cmd.Flags().StringVarP(&formatName, "format", "f", "csv", "output format")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write output to a file instead of stdout")
	cmd.Flags().IntVar(&maxLineLen, "max-line-len", csview.DefaultMaxLineLen, "line length cap in bytes; longer lines are truncated")

	return cmd
}
