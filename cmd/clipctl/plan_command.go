package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"alcyxob/clipclass/internal/app"
	"alcyxob/clipclass/internal/domain"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [request...]",
		Short: "Generate a workout plan from a free-text request",
		Example: `  clipctl plan advanced muscle building workout
  clipctl plan "gentle yoga for beginners" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd.Context(), func(catalog *app.Catalog) error {
				plan, err := catalog.Service.GenerateWorkoutPlan(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, plan)
				}
				printPlan(cmd, plan)
				return nil
			})
		},
	}
}

func printPlan(cmd *cobra.Command, plan *domain.WorkoutPlan) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Goal: %s | Difficulty: %s | Category: %s | %d min (%s)\n",
		plan.Goal, plan.Difficulty, plan.Category, plan.TotalDuration, plan.Strategy)
	if len(plan.MatchedVideos) == 0 {
		fmt.Fprintln(out, "The catalog is empty")
		return
	}

	rows := make([][]string, 0, len(plan.MatchedVideos))
	for i, v := range plan.MatchedVideos {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			v.Title,
			string(v.Difficulty),
			strconv.Itoa(v.Duration),
			strconv.Itoa(plan.Scores[i]),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Title", "Difficulty", "Min", "Score"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
	))

	fmt.Fprintln(out, "Narration:")
	for _, note := range plan.AudioNotes {
		fmt.Fprintf(out, "  - %s\n", note)
	}
}
