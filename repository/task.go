package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

// TaskPatch carries the mutable task fields; nil means "leave unchanged".
type TaskPatch struct {
	Title     *string
	Completed *bool
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}

// TaskRepository scopes every read and write to the owning user. A task
// belonging to someone else is indistinguishable from a missing one.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	Update(ctx context.Context, id, ownerID string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
}
