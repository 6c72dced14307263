package repository

import (
	"context"

	"alcyxob/clipclass/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// VideoRepository is the authoritative, ordered video collection.
// Insertion order is preserved by every method that returns a list.
type VideoRepository interface {
	// Create assigns ID and CreatedAt, appends the video and returns the stored copy.
	Create(ctx context.Context, video *domain.Video) (*domain.Video, error)
	GetByID(ctx context.Context, id string) (*domain.Video, error)
	List(ctx context.Context) ([]domain.Video, error)
	// Update merges patch into the stored video; ErrNotFound if id is unknown.
	Update(ctx context.Context, id string, patch domain.VideoPatch) (*domain.Video, error)
	// Delete removes the video; ErrNotFound if id is unknown.
	Delete(ctx context.Context, id string) error
}
