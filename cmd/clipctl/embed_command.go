package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"alcyxob/clipclass/internal/embed"
)

var errNoVideoID = errors.New("no video identifier")

func newEmbedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "embed <url>",
		Short: "Print the embed, watch and thumbnail links for a YouTube link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			links, ok := embed.Derive(args[0])
			if !ok {
				return fmt.Errorf("%s: %w", args[0], errNoVideoID)
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, links)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Link", "URL"},
				[][]string{
					{"Video ID", links.VideoID},
					{"Embed", links.EmbedURL},
					{"Watch", links.WatchURL},
					{"Thumbnail", links.ThumbnailURL},
				},
				nil,
			))
			return nil
		},
	}
}
