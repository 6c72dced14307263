package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"alcyxob/clipclass/internal/app"
	"alcyxob/clipclass/internal/domain"
)

func newVideosCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "videos",
		Short: "List, search and edit catalog videos",
	}
	cmd.AddCommand(newVideosListCommand(ctx))
	cmd.AddCommand(newVideosSearchCommand(ctx))
	cmd.AddCommand(newVideosAddCommand(ctx))
	cmd.AddCommand(newVideosUpdateCommand(ctx))
	cmd.AddCommand(newVideosDeleteCommand(ctx))
	return cmd
}

func newVideosListCommand(ctx *commandContext) *cobra.Command {
	var category, difficulty string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every video in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd.Context(), func(catalog *app.Catalog) error {
				videos, err := catalog.Service.SearchVideos(cmd.Context(), domain.SearchFilter{
					Category:   category,
					Difficulty: difficulty,
				})
				if err != nil {
					return err
				}
				return printVideos(cmd, ctx, videos)
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only this category")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Only this difficulty")
	return cmd
}

func newVideosSearchCommand(ctx *commandContext) *cobra.Command {
	var category, difficulty string
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Find videos whose title, category, description or tags contain text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd.Context(), func(catalog *app.Catalog) error {
				videos, err := catalog.Service.SearchVideos(cmd.Context(), domain.SearchFilter{
					Query:      strings.Join(args, " "),
					Category:   category,
					Difficulty: difficulty,
				})
				if err != nil {
					return err
				}
				return printVideos(cmd, ctx, videos)
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only this category")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Only this difficulty")
	return cmd
}

// videoFlags holds the editable fields shared by add and update.
type videoFlags struct {
	title, sourceURL, thumbnail, category, difficulty string
	machine, description, intensity                   string
	duration                                          int
	tags, bodyParts, goals                            string
}

func (f *videoFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Video title")
	cmd.Flags().StringVar(&f.sourceURL, "url", "", "YouTube link or 11 character video ID")
	cmd.Flags().StringVar(&f.thumbnail, "thumbnail", "", "Thumbnail URL (derived from --url when empty)")
	cmd.Flags().StringVar(&f.category, "category", "", "Category, e.g. HIIT or Strength")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "beginner, intermediate or advanced")
	cmd.Flags().StringVar(&f.machine, "machine", "", "Equipment, e.g. dumbbells")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "Length in minutes")
	cmd.Flags().StringVar(&f.description, "description", "", "Free text description")
	cmd.Flags().StringVar(&f.tags, "tags", "", "Comma separated tags")
	cmd.Flags().StringVar(&f.bodyParts, "body-parts", "", "Comma separated body parts")
	cmd.Flags().StringVar(&f.goals, "goals", "", "Comma separated goals")
	cmd.Flags().StringVar(&f.intensity, "intensity", "", "low, moderate, high or very high")
}

func (f *videoFlags) input() domain.VideoInput {
	return domain.VideoInput{
		Title:        f.title,
		SourceURL:    f.sourceURL,
		ThumbnailURL: f.thumbnail,
		Category:     f.category,
		Difficulty:   domain.Difficulty(f.difficulty),
		MachineType:  f.machine,
		Duration:     f.duration,
		Description:  f.description,
		Tags:         domain.SplitTags(f.tags),
		BodyParts:    domain.SplitTags(f.bodyParts),
		Goals:        domain.SplitTags(f.goals),
		Intensity:    f.intensity,
	}
}

// patch includes only the flags the user actually set.
func (f *videoFlags) patch(cmd *cobra.Command) domain.VideoPatch {
	var p domain.VideoPatch
	changed := cmd.Flags().Changed
	if changed("title") {
		p.Title = &f.title
	}
	if changed("url") {
		p.SourceURL = &f.sourceURL
	}
	if changed("thumbnail") {
		p.ThumbnailURL = &f.thumbnail
	}
	if changed("category") {
		p.Category = &f.category
	}
	if changed("difficulty") {
		d := domain.Difficulty(f.difficulty)
		p.Difficulty = &d
	}
	if changed("machine") {
		p.MachineType = &f.machine
	}
	if changed("duration") {
		p.Duration = &f.duration
	}
	if changed("description") {
		p.Description = &f.description
	}
	if changed("tags") {
		tags := domain.SplitTags(f.tags)
		p.Tags = &tags
	}
	if changed("body-parts") {
		parts := domain.SplitTags(f.bodyParts)
		p.BodyParts = &parts
	}
	if changed("goals") {
		goals := domain.SplitTags(f.goals)
		p.Goals = &goals
	}
	if changed("intensity") {
		p.Intensity = &f.intensity
	}
	return p
}

func newVideosAddCommand(ctx *commandContext) *cobra.Command {
	var flags videoFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a video to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd.Context(), func(catalog *app.Catalog) error {
				video, err := catalog.Service.AddVideo(cmd.Context(), flags.input())
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, video)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", video.Title, video.ID)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newVideosUpdateCommand(ctx *commandContext) *cobra.Command {
	var flags videoFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an existing video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd.Context(), func(catalog *app.Catalog) error {
				video, err := catalog.Service.UpdateVideo(cmd.Context(), args[0], flags.patch(cmd))
				if err != nil {
					return err
				}
				if video == nil {
					return fmt.Errorf("video %s not found", args[0])
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, video)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", video.Title, video.ID)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newVideosDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a video from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd.Context(), func(catalog *app.Catalog) error {
				if err := catalog.Service.DeleteVideo(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func printVideos(cmd *cobra.Command, ctx *commandContext, videos []domain.Video) error {
	if ctx.jsonOutput() {
		return writeJSON(cmd, videos)
	}
	if len(videos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No videos found")
		return nil
	}
	rows := make([][]string, 0, len(videos))
	for _, v := range videos {
		rows = append(rows, []string{
			v.ID,
			v.Title,
			v.Category,
			string(v.Difficulty),
			v.MachineType,
			strconv.Itoa(v.Duration),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Title", "Category", "Difficulty", "Equipment", "Min"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))
	return nil
}
