// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/creachadair/jpartial"
	"github.com/creachadair/jpartial/internal/fragment"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
)

// A replayStep is one line of replay output.
type replayStep struct {
	Step    int    `json:"step"`
	Input   string `json:"input"`
	End     bool   `json:"end,omitempty"`
	Partial bool   `json:"partial"`
	Path    string `json:"path,omitempty"`
	Value   *any   `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
}

func newReplayCmd() *cobra.Command {
	var (
		size           int
		seed           uint64
		atEnd          bool
		jwcc           bool
		partialStrings bool
		useNumber      bool
	)

	cmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "Feed a document to the parser in fragments and show each result",
		Long: `Split a JSON document into fragments, deliver them to the parser one at a
time, and print the result after each fragment as a line of JSON.

If no file is provided, reads the document from stdin.

By default each fragment is --size bytes. If --seed is nonzero, fragment
sizes are chosen at random between 1 and --size bytes using that seed.`,
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

			var frags []string
			if seed != 0 {
				frags = fragment.Random(string(data), size, seed)
			} else {
				frags = fragment.Fixed(string(data), size)
			}
			log.Infof("replaying %s: %d bytes in %d fragments", name, len(data), len(frags))

			p := jpartial.New(
				jpartial.PartialStrings(partialStrings),
				jpartial.UseNumber(useNumber),
				jpartial.WithLogger(log),
			)
			enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(cmd.OutOrStdout())
			emit := func(step replayStep, res jpartial.Result) error {
				step.Partial = res.Partial
				step.Path = res.PendingPath.String()
				if res.HasValue {
					step.Value = &res.Value
				}
				if res.Err != nil {
					step.Error = res.Err.Error()
				}
				return enc.Encode(step)
			}

			var res jpartial.Result
			for i, frag := range frags {
				res = p.Resume(frag)
				if err := emit(replayStep{Step: i + 1, Input: frag}, res); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				if res.Err != nil {
					break
				}
			}
			if atEnd && res.Err == nil {
				res = p.End()
				if err := emit(replayStep{Step: len(frags) + 1, End: true}, res); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
			if res.Err != nil {
				return fmt.Errorf("%s: %w", name, res.Err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 1, "fragment size in bytes (maximum size with --seed)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "if nonzero, choose random fragment sizes with this seed")
	cmd.Flags().BoolVar(&atEnd, "end", false, "report the end of input after the last fragment")
	cmd.Flags().BoolVar(&jwcc, "jwcc", false, "accept JSON with comments and trailing commas")
	cmd.Flags().BoolVar(&partialStrings, "partial-strings", false, "report incomplete string values")
	cmd.Flags().BoolVar(&useNumber, "use-number", false, "report numbers with their original text")

	return cmd
}
