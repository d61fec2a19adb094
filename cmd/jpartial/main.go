// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jpartial demonstrates incremental parsing of JSON documents.
//
// The replay command splits a document into fragments and reports the
// partial result after each one. The check command reports whether a
// document is complete and valid.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jpartial")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jpartial: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:           "jpartial",
		Short:         "Parse JSON documents delivered in fragments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase logging verbosity")

	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newCheckCmd())
	return rootCmd
}

// readInput reads the named file, or standard input if args is empty. It
// returns the contents and a name for the input to use in diagnostics.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "<stdin>", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	return data, args[0], nil
}
