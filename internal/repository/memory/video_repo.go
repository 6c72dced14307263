package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"alcyxob/clipclass/internal/domain"
	"alcyxob/clipclass/internal/logger"
	"alcyxob/clipclass/internal/observability"
	"alcyxob/clipclass/internal/repository"
	"alcyxob/clipclass/internal/storage"
)

const defaultSaveTimeout = 5 * time.Second

// VideoRepository holds the catalog in memory and mirrors it to a snapshot
// store: read once by Load, rewritten in full after every mutation.
type VideoRepository struct {
	mu     sync.RWMutex
	videos []domain.Video

	store       storage.SnapshotStore
	key         string
	saveTimeout time.Duration
	log         *logger.Logger

	now   func() time.Time
	newID func() string
}

// Option customizes a VideoRepository.
type Option func(*VideoRepository)

// WithSaveTimeout bounds each snapshot write.
func WithSaveTimeout(d time.Duration) Option {
	return func(r *VideoRepository) {
		if d > 0 {
			r.saveTimeout = d
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *VideoRepository) { r.now = now }
}

// WithIDGenerator overrides the ID source.
func WithIDGenerator(newID func() string) Option {
	return func(r *VideoRepository) { r.newID = newID }
}

// NewVideoRepository creates an empty repository persisting under key.
func NewVideoRepository(store storage.SnapshotStore, key string, log *logger.Logger, opts ...Option) *VideoRepository {
	if log == nil {
		log = logger.Nop()
	}
	r := &VideoRepository{
		store:       store,
		key:         key,
		saveTimeout: defaultSaveTimeout,
		log:         log.With("component", "video_repository", "snapshot_key", key),
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load replaces the in-memory collection with the stored snapshot.
// It reports false (and no error) when no snapshot exists yet.
func (r *VideoRepository) Load(ctx context.Context) (bool, error) {
	data, err := r.store.Load(ctx, r.key)
	if errors.Is(err, storage.ErrSnapshotNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load snapshot %q: %w", r.key, err)
	}

	var videos []domain.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return false, fmt.Errorf("decode snapshot %q: %w", r.key, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.videos = videos
	observability.SetCatalogSize(len(r.videos))
	r.log.Info("catalog snapshot loaded", "videos", len(videos))
	return true, nil
}

// Seed appends videos that already carry their IDs and timestamps (the
// sample library) and persists the result. Missing IDs are filled in.
// Unlike the mutations, a failed snapshot write is returned; the seeded
// videos stay in memory either way.
func (r *VideoRepository) Seed(ctx context.Context, videos []domain.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range videos {
		v = v.Clone()
		if v.ID == "" || r.indexOf(v.ID) >= 0 {
			v.ID = r.uniqueID()
		}
		if v.CreatedAt.IsZero() {
			v.CreatedAt = r.now()
		}
		r.videos = append(r.videos, v)
	}
	if err := r.persistLocked(ctx); err != nil {
		return fmt.Errorf("persist seeded catalog: %w", err)
	}
	return nil
}

// Create implements repository.VideoRepository.
func (r *VideoRepository) Create(ctx context.Context, video *domain.Video) (*domain.Video, error) {
	if video == nil {
		return nil, errors.New("video is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := video.Clone()
	stored.ID = r.uniqueID()
	stored.CreatedAt = r.now()
	r.videos = append(r.videos, stored)
	_ = r.persistLocked(ctx)

	out := stored.Clone()
	return &out, nil
}

// GetByID implements repository.VideoRepository.
func (r *VideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	out := r.videos[i].Clone()
	return &out, nil
}

// List implements repository.VideoRepository.
func (r *VideoRepository) List(ctx context.Context) ([]domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Video, len(r.videos))
	for i, v := range r.videos {
		out[i] = v.Clone()
	}
	return out, nil
}

// Update implements repository.VideoRepository.
func (r *VideoRepository) Update(ctx context.Context, id string, patch domain.VideoPatch) (*domain.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	patch.Apply(&r.videos[i])
	_ = r.persistLocked(ctx)

	out := r.videos[i].Clone()
	return &out, nil
}

// Delete implements repository.VideoRepository.
func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.videos = append(r.videos[:i], r.videos[i+1:]...)
	_ = r.persistLocked(ctx)
	return nil
}

func (r *VideoRepository) indexOf(id string) int {
	for i := range r.videos {
		if r.videos[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *VideoRepository) uniqueID() string {
	id := r.newID()
	for r.indexOf(id) >= 0 {
		id = r.newID()
	}
	return id
}

// persistLocked writes the whole collection. Failures are logged and counted
// but never undo the in-memory change; mutations drop the returned error.
// Caller holds r.mu.
func (r *VideoRepository) persistLocked(ctx context.Context) error {
	observability.SetCatalogSize(len(r.videos))

	data, err := json.Marshal(r.videos)
	if err != nil {
		observability.RecordSnapshotSave(err)
		r.log.Error("failed to encode catalog snapshot", "error", err)
		return fmt.Errorf("encode catalog snapshot: %w", err)
	}

	// Detached from request cancellation, bounded by saveTimeout.
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.saveTimeout)
	defer cancel()

	err = r.store.Save(saveCtx, r.key, data)
	observability.RecordSnapshotSave(err)
	if err != nil {
		r.log.Warn("failed to save catalog snapshot", "error", err, "videos", len(r.videos))
		return fmt.Errorf("save catalog snapshot: %w", err)
	}
	r.log.Debug("catalog snapshot saved", "videos", len(r.videos), "bytes", len(data))
	return nil
}
