package main

import (
	"fmt"
	"os"

	"github.com/bjaus/csview"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "csview",
		Short: "Inspect and convert delimiter-separated text files",
	}

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newConvertCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDocument parses the file named in args, or stdin when args is empty.
func loadDocument(args []string, hasHeader bool, maxLineLen int) (*csview.Document, error) {
	if len(args) == 0 {
		doc, err := csview.ParseLimit(os.Stdin, hasHeader, maxLineLen)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return doc, nil
	}
	return csview.ParseFileLimit(args[0], hasHeader, maxLineLen)
}
