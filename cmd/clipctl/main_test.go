package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"alcyxob/clipclass/internal/domain"
)

// setupConfigDir writes a config.yaml pointing the badger store into a temp dir.
func setupConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf("snapshot:\n  backend: badger\nbadger:\n  path: %q\nlogging:\n  level: error\n",
		filepath.Join(dir, "catalog"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func runCLI(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configDir}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestVideosListShowsSeedLibrary(t *testing.T) {
	dir := setupConfigDir(t)

	out, err := runCLI(t, dir, "videos", "list")
	require.NoError(t, err)
	require.Contains(t, out, "Treadmill Cardio Blast")
	require.Contains(t, out, "Barbell Power Training")

	out, err = runCLI(t, dir, "videos", "list", "--category", "Yoga", "--json")
	require.NoError(t, err)
	var videos []domain.Video
	require.NoError(t, json.Unmarshal([]byte(out), &videos))
	require.Len(t, videos, 1)
	require.Equal(t, "3", videos[0].ID)
}

func TestVideosAddPersistsAcrossInvocations(t *testing.T) {
	dir := setupConfigDir(t)

	out, err := runCLI(t, dir, "--json", "videos", "add",
		"--title", "Kettlebell Flow",
		"--url", "https://youtu.be/abcdefghijk",
		"--category", "Strength",
		"--difficulty", "intermediate",
		"--duration", "22",
		"--tags", "kettlebell, flow",
	)
	require.NoError(t, err)
	var created domain.Video
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	require.Equal(t, []string{"kettlebell", "flow"}, created.Tags)

	out, err = runCLI(t, dir, "videos", "search", "kettlebell")
	require.NoError(t, err)
	require.Contains(t, out, "Kettlebell Flow")

	out, err = runCLI(t, dir, "videos", "update", created.ID, "--duration", "30")
	require.NoError(t, err)
	require.Contains(t, out, "Updated Kettlebell Flow")

	out, err = runCLI(t, dir, "--json", "stats")
	require.NoError(t, err)
	var stats domain.CatalogStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	require.Equal(t, 8, stats.TotalVideos)
	require.Equal(t, 233+30, stats.TotalMinutes)

	_, err = runCLI(t, dir, "videos", "delete", created.ID)
	require.NoError(t, err)
	out, err = runCLI(t, dir, "videos", "search", "kettlebell")
	require.NoError(t, err)
	require.Contains(t, out, "No videos found")
}

func TestVideosAddValidation(t *testing.T) {
	dir := setupConfigDir(t)

	_, err := runCLI(t, dir, "videos", "add", "--title", "Incomplete")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, []string{"category", "difficulty", "duration", "sourceUrl"}, vErr.Fields)
}

func TestVideosUpdateUnknown(t *testing.T) {
	dir := setupConfigDir(t)

	_, err := runCLI(t, dir, "videos", "update", "missing", "--title", "Ghost")
	require.ErrorContains(t, err, "not found")
}

func TestPlanCommand(t *testing.T) {
	dir := setupConfigDir(t)

	out, err := runCLI(t, dir, "plan", "advanced", "muscle", "building", "workout")
	require.NoError(t, err)
	require.Contains(t, out, "Goal: muscle building")
	require.Contains(t, out, "Advanced Strength Training")
	require.Contains(t, out, "Narration:")

	out, err = runCLI(t, dir, "--json", "plan", "zzz")
	require.NoError(t, err)
	var plan domain.WorkoutPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Equal(t, domain.StrategyDifficulty, plan.Strategy)
}

func TestEmbedCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "embed", "https://www.youtube.com/embed/abcdefghijk")
	require.NoError(t, err)
	require.Contains(t, out, "https://www.youtube.com/watch?v=abcdefghijk")

	_, err = runCLI(t, t.TempDir(), "embed", "not a link")
	require.ErrorIs(t, err, errNoVideoID)
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Name", "Min"}, [][]string{{"Yoga", "25"}, {"Short row"}}, []columnAlignment{alignLeft, alignRight})
	require.Contains(t, out, "Name")
	require.Contains(t, out, "Short row")
	require.Equal(t, 6, len(strings.Split(out, "\n")))

	require.Empty(t, renderTable(nil, nil, nil))
}
