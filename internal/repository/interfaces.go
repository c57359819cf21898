package repository

import (
	"context"
	"errors"

	"github.com/Prokope45/Praestara/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ResponseRepo stores kind-tagged response records. The reflection engine
// only needs most-recent-by-creation-time lookups; listing supports the
// history surfaces.
type ResponseRepo interface {
	Create(ctx context.Context, r *domain.Response) error
	GetByID(ctx context.Context, id string) (*domain.Response, error)
	// LatestByKind returns the most recently created response of the given
	// kind for the owner, or ErrNotFound when none exists.
	LatestByKind(ctx context.Context, ownerID string, kind domain.ResponseKind) (*domain.Response, error)
	ListByOwner(ctx context.Context, ownerID string, kind domain.ResponseKind, limit int) ([]*domain.Response, error)
	Delete(ctx context.Context, id string) error
}
