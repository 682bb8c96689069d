package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"m3umerge/internal/channelname"
	"m3umerge/internal/merge"
	"m3umerge/internal/playlist"
)

type inspectView struct {
	Path        string             `json:"path"`
	Header      string             `json:"header"`
	Occurrences int                `json:"occurrences"`
	Stats       merge.Stats        `json:"stats"`
	Groups      []inspectGroupView `json:"groups"`
}

type inspectGroupView struct {
	Group    string               `json:"group"`
	Channels []inspectChannelView `json:"channels"`
}

type inspectChannelView struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Preferred bool     `json:"preferred"`
	URLs      []string `json:"urls"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show how a playlist groups and normalizes its channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := args[0]
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read input %s: %w", path, err)
			}

			file := playlist.Parse(string(content), playlist.WithDefaultGroup(cfg.Merge.DefaultGroup))
			engine := merge.NewEngine()
			engine.Ingest(file)
			view := buildInspectView(path, len(file.Occurrences), engine)

			if asJSON {
				return writeJSON(cmd, view)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader(path, colorize) {
				fmt.Fprintln(out, line)
			}
			header := view.Header
			if header == "" {
				header = "(none)"
			}
			fmt.Fprintln(out, renderStatusLine("header", statusInfo, header, colorize))
			fmt.Fprintln(out, renderStatusLine("entries", statusInfo, strconv.Itoa(view.Occurrences), colorize))

			rows := make([][]string, 0, len(view.Groups))
			for i, g := range view.Groups {
				preferred := 0
				for _, ch := range g.Channels {
					if ch.Preferred {
						preferred++
					}
				}
				gs := view.Stats.PerGroup[i]
				rows = append(rows, []string{g.Group, strconv.Itoa(gs.Channels), strconv.Itoa(gs.URLs), strconv.Itoa(preferred)})
			}
			fmt.Fprintln(out, renderTable(tableSpec{
				headers: []string{"Group", "Channels", "URLs", "Preferred names"},
				rows:    rows,
				footer:  []string{"Total", strconv.Itoa(view.Stats.Channels), strconv.Itoa(view.Stats.URLs), ""},
				aligns:  []columnAlignment{alignLeft, alignRight, alignRight, alignRight},
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print channels per group as JSON")
	return cmd
}

func buildInspectView(path string, occurrences int, engine *merge.Engine) inspectView {
	view := inspectView{
		Path:        path,
		Header:      engine.Header(),
		Occurrences: occurrences,
		Stats:       engine.Stats(),
	}
	for _, group := range engine.Groups() {
		gv := inspectGroupView{Group: group, Channels: []inspectChannelView{}}
		for _, key := range engine.GroupKeys(group) {
			ch, ok := engine.Channel(key)
			if !ok {
				continue
			}
			gv.Channels = append(gv.Channels, inspectChannelView{
				Key:       ch.Key,
				Name:      ch.Name,
				Preferred: channelname.IsPreferred(ch.Name),
				URLs:      ch.URLs(),
			})
		}
		view.Groups = append(view.Groups, gv)
	}
	return view
}
