package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"m3umerge/internal/dedup"
)

func newDedupCommand(ctx *commandContext) *cobra.Command {
	var input string
	var output string
	var noHeader bool
	var force bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dedup -i <input> [-o <output>]",
		Short: "Drop channel blocks whose display name repeats an earlier one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			res, err := dedup.Run(cmd.Context(), dedup.Options{
				Input:   input,
				Output:  output,
				Header:  !noHeader,
				Force:   force,
				Publish: publishOptions(cfg),
				Logger:  logger,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, res)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "processed: %s\n", res.Input)
			fmt.Fprintf(out, "kept %d channel(s), dropped %d duplicate(s)\n", res.Channels, res.Duplicates)
			fmt.Fprintf(out, "output: %s (in place: %s)\n", res.Output, yesNo(res.InPlace))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input playlist")
	cmd.Flags().StringVarP(&output, "output", "o", "output.m3u", "Output playlist (may equal the input)")
	cmd.Flags().BoolVar(&noHeader, "no-extm3u", false, "Do not write an #EXTM3U header")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output that differs from the input")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
