package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"alcyxob/clipclass/internal/domain"
	"alcyxob/clipclass/internal/embed"
	"alcyxob/clipclass/internal/logger"
	"alcyxob/clipclass/internal/observability"
	"alcyxob/clipclass/internal/planner"
	"alcyxob/clipclass/internal/repository"
)

// --- Error Definitions ---
var (
	ErrVideoNotFound = errors.New("video not found")
)

// filterAll is the browse view's "no filter" value.
const filterAll = "all"

// --- Service Interface ---

// CatalogService owns the video catalog: writes with validation, browse
// queries and workout plan generation.
type CatalogService interface {
	AddVideo(ctx context.Context, input domain.VideoInput) (*domain.Video, error)
	// UpdateVideo returns (nil, nil) when id is unknown.
	UpdateVideo(ctx context.Context, id string, patch domain.VideoPatch) (*domain.Video, error)
	// DeleteVideo is a no-op for an unknown id.
	DeleteVideo(ctx context.Context, id string) error
	GetVideo(ctx context.Context, id string) (*domain.Video, error)
	ListVideos(ctx context.Context) ([]domain.Video, error)
	SearchVideos(ctx context.Context, filter domain.SearchFilter) ([]domain.Video, error)
	Categories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*domain.CatalogStats, error)
	GenerateWorkoutPlan(ctx context.Context, query string) (*domain.WorkoutPlan, error)
	ComposeClass(ctx context.Context, videoIDs []string) (*domain.ClassSummary, error)
}

// --- Service Implementation ---

type catalogService struct {
	videoRepo repository.VideoRepository
	planner   *planner.Planner
	log       *logger.Logger
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(videoRepo repository.VideoRepository, p *planner.Planner, log *logger.Logger) CatalogService {
	if p == nil {
		p = planner.New(planner.Options{})
	}
	if log == nil {
		log = logger.Nop()
	}
	return &catalogService{
		videoRepo: videoRepo,
		planner:   p,
		log:       log.With("component", "catalog_service"),
	}
}

// AddVideo validates input and appends a new video to the catalog.
func (s *catalogService) AddVideo(ctx context.Context, input domain.VideoInput) (*domain.Video, error) {
	input.Normalize()
	if err := validateStruct(input); err != nil {
		observability.RecordMutation("add", false)
		return nil, err
	}

	video := &domain.Video{
		Title:        input.Title,
		SourceURL:    input.SourceURL,
		ThumbnailURL: input.ThumbnailURL,
		Category:     input.Category,
		Difficulty:   input.Difficulty,
		MachineType:  input.MachineType,
		Duration:     input.Duration,
		Description:  input.Description,
		Tags:         input.Tags,
		BodyParts:    input.BodyParts,
		Goals:        input.Goals,
		Intensity:    input.Intensity,
	}
	if video.ThumbnailURL == "" {
		video.ThumbnailURL = derivedThumbnail(video.SourceURL)
	}

	created, err := s.videoRepo.Create(ctx, video)
	if err != nil {
		observability.RecordMutation("add", false)
		return nil, err
	}
	observability.RecordMutation("add", true)
	s.log.Info("video added", "id", created.ID, "title", created.Title, "category", created.Category)
	return created, nil
}

// UpdateVideo merges the supplied fields into an existing video.
func (s *catalogService) UpdateVideo(ctx context.Context, id string, patch domain.VideoPatch) (*domain.Video, error) {
	if patch.Difficulty != nil {
		d := domain.Difficulty(strings.ToLower(strings.TrimSpace(string(*patch.Difficulty))))
		patch.Difficulty = &d
	}
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		patch.Title = &t
	}
	if patch.SourceURL != nil {
		u := strings.TrimSpace(*patch.SourceURL)
		patch.SourceURL = &u
	}
	if patch.Category != nil {
		c := strings.TrimSpace(*patch.Category)
		patch.Category = &c
	}
	if err := validateStruct(patch); err != nil {
		observability.RecordMutation("update", false)
		return nil, err
	}

	// A new source without an explicit thumbnail gets a fresh derived one.
	if patch.SourceURL != nil && patch.ThumbnailURL == nil {
		thumb := derivedThumbnail(*patch.SourceURL)
		patch.ThumbnailURL = &thumb
	}

	updated, err := s.videoRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			observability.RecordMutation("update", false)
			s.log.Debug("update skipped, unknown video", "id", id)
			return nil, nil
		}
		return nil, err
	}
	observability.RecordMutation("update", true)
	s.log.Info("video updated", "id", updated.ID)
	return updated, nil
}

// DeleteVideo removes a video from the catalog.
func (s *catalogService) DeleteVideo(ctx context.Context, id string) error {
	err := s.videoRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			observability.RecordMutation("delete", false)
			s.log.Debug("delete skipped, unknown video", "id", id)
			return nil
		}
		return err
	}
	observability.RecordMutation("delete", true)
	s.log.Info("video deleted", "id", id)
	return nil
}

// GetVideo retrieves a single video.
func (s *catalogService) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

// ListVideos returns the whole catalog in insertion order.
func (s *catalogService) ListVideos(ctx context.Context) ([]domain.Video, error) {
	return s.videoRepo.List(ctx)
}

// SearchVideos filters the catalog by case-insensitive substring match over
// title, category, description and tags, then by exact category and
// difficulty when those are set.
func (s *catalogService) SearchVideos(ctx context.Context, filter domain.SearchFilter) ([]domain.Video, error) {
	videos, err := s.videoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	category := normalizeFilter(filter.Category)
	difficulty := normalizeFilter(filter.Difficulty)

	out := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		if category != "" && !strings.EqualFold(v.Category, category) {
			continue
		}
		if difficulty != "" && !strings.EqualFold(string(v.Difficulty), difficulty) {
			continue
		}
		if query != "" && !matchesText(v, query) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// Categories lists the distinct categories in first-seen order.
func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	videos, err := s.videoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, v := range videos {
		key := strings.ToLower(v.Category)
		if _, ok := seen[key]; ok || key == "" {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v.Category)
	}
	return out, nil
}

// Stats summarizes the catalog for the admin dashboard.
func (s *catalogService) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	videos, err := s.videoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.CatalogStats{
		TotalVideos:  len(videos),
		ByDifficulty: make(map[domain.Difficulty]int, len(domain.Difficulties)),
		Categories:   len(categories),
	}
	for _, d := range domain.Difficulties {
		stats.ByDifficulty[d] = 0
	}
	for _, v := range videos {
		stats.ByDifficulty[v.Difficulty]++
		stats.TotalMinutes += v.Duration
	}
	return stats, nil
}

// GenerateWorkoutPlan scores the current catalog against query.
// The only error is ctx ending during the pacing delay.
func (s *catalogService) GenerateWorkoutPlan(ctx context.Context, query string) (*domain.WorkoutPlan, error) {
	videos, err := s.videoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	plan, err := s.planner.Generate(ctx, videos, query)
	if err != nil {
		s.log.Warn("plan generation aborted", "query", query, "error", err)
		return nil, err
	}
	observability.RecordPlan(plan.Strategy, time.Since(start))
	s.log.Info("workout plan generated",
		"query", plan.Query,
		"strategy", plan.Strategy,
		"videos", len(plan.MatchedVideos),
		"goal", plan.Goal,
	)
	return plan, nil
}

// ComposeClass resolves a hand-picked list of videos in the given order.
// Unknown IDs are skipped and reported in MissingIDs.
func (s *catalogService) ComposeClass(ctx context.Context, videoIDs []string) (*domain.ClassSummary, error) {
	summary := &domain.ClassSummary{Videos: make([]domain.Video, 0, len(videoIDs))}
	for _, id := range videoIDs {
		video, err := s.videoRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				summary.MissingIDs = append(summary.MissingIDs, id)
				continue
			}
			return nil, err
		}
		summary.Videos = append(summary.Videos, *video)
		summary.TotalDuration += video.Duration
	}
	return summary, nil
}

func matchesText(v domain.Video, query string) bool {
	if strings.Contains(strings.ToLower(v.Title), query) ||
		strings.Contains(strings.ToLower(v.Category), query) ||
		strings.Contains(strings.ToLower(v.Description), query) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func normalizeFilter(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, filterAll) {
		return ""
	}
	return value
}

func derivedThumbnail(sourceURL string) string {
	if id, ok := embed.ExtractID(sourceURL); ok {
		return embed.ThumbnailURL(id)
	}
	return ""
}
