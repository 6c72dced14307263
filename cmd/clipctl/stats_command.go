package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"alcyxob/clipclass/internal/app"
	"alcyxob/clipclass/internal/domain"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd.Context(), func(catalog *app.Catalog) error {
				stats, err := catalog.Service.Stats(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, stats)
				}
				rows := [][]string{
					{"Videos", strconv.Itoa(stats.TotalVideos)},
					{"Categories", strconv.Itoa(stats.Categories)},
					{"Total minutes", strconv.Itoa(stats.TotalMinutes)},
				}
				for _, d := range domain.Difficulties {
					rows = append(rows, []string{string(d), strconv.Itoa(stats.ByDifficulty[d])})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Metric", "Value"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}
