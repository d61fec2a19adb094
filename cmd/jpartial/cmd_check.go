// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/creachadair/jpartial"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
)

var errInvalid = errors.New("invalid document")

func newCheckCmd() *cobra.Command {
	var jwcc bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report whether a document is complete and valid",
		Long: `Parse a JSON document and report "ok" if it is complete and valid.
Otherwise print the location and description of the first error.

If no file is provided, reads the document from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if jwcc {
				data, err = hujson.Standardize(data)
				if err != nil {
					return fmt.Errorf("standardize %s: %w", name, err)
				}
			}

			p := jpartial.New(jpartial.WithLogger(log))
			res := p.Resume(string(data))
			if res.Err == nil {
				res = p.End()
			}

			out := cmd.OutOrStdout()
			if res.Err == nil {
				fmt.Fprintln(out, "ok")
				return nil
			}
			c := color.New(color.FgRed, color.Bold)
			if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
			loc := res.Err.Location
			c.Fprintf(out, "%s:%d:%d:", name, loc.Line, loc.Column)
			fmt.Fprintf(out, " %s\n", res.Err.Message)
			return errInvalid
		},
	}

	cmd.Flags().BoolVar(&jwcc, "jwcc", false, "accept JSON with comments and trailing commas")

	return cmd
}
