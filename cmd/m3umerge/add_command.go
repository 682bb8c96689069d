package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"m3umerge/internal/appender"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var input string
	var output string
	var spec string
	var from string
	var group string
	var rear bool
	var mergeURLs bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "add -i <input> -o <output> (-a SPEC | --from FILE)",
		Short: "Insert hand-written channels at the head or rear of a playlist",
		Long: "Insert channels into a playlist. SPEC has the form \"name1,url1,url2;name2,url3\".\n" +
			"--from reads a YAML list of {name, group, urls} entries instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			var channels []appender.Channel
			if strings.TrimSpace(from) != "" {
				channels, err = appender.LoadFile(from)
				if err != nil {
					return err
				}
			} else {
				channels = appender.ParseSpec(spec)
			}

			g := strings.TrimSpace(group)
			if g == "" {
				g = cfg.Append.DefaultGroup
			}

			res, err := appender.Run(cmd.Context(), appender.Options{
				Input:     input,
				Output:    output,
				Channels:  channels,
				Group:     g,
				Rear:      rear,
				MergeURLs: mergeURLs,
				Publish:   publishOptions(cfg),
				Logger:    logger,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, res)
			}
			mode := "one entry per url"
			if mergeURLs {
				mode = "merged urls"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d channel(s) as %d entr(ies) at %s of %s (%s)\n",
				res.Channels, res.Entries, res.Position, res.Output, mode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input playlist")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output playlist (may equal the input)")
	cmd.Flags().StringVarP(&spec, "add", "a", "", `Channels to add: "name1,url1,url2;name2,url3"`)
	cmd.Flags().StringVar(&from, "from", "", "YAML file with channels to add")
	cmd.Flags().StringVarP(&group, "group", "g", "", "Group title for added channels (defaults to append.default_group)")
	cmd.Flags().BoolVarP(&rear, "rear", "r", false, "Append at the end instead of after the header")
	cmd.Flags().BoolVarP(&mergeURLs, "merge", "m", false, "Write all URLs of a channel under one metadata line")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	cmd.MarkFlagsMutuallyExclusive("add", "from")
	cmd.MarkFlagsOneRequired("add", "from")
	return cmd
}
