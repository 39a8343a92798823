package task

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

func (uc *UseCase) Create(ctx context.Context, ownerID, title string, dueDate *time.Time) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "title required")
	}

	task := &domain.Task{
		OwnerID: ownerID,
		Title:   title,
		DueDate: dueDate,
	}
	return uc.tasks.Create(ctx, task)
}

func (uc *UseCase) List(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return uc.tasks.ListByOwner(ctx, ownerID)
}

// Update applies a partial patch to a task the caller owns. A task owned
// by someone else reports not-found, never the foreign task's data.
func (uc *UseCase) Update(ctx context.Context, id, ownerID string, patch repository.TaskPatch) (*domain.Task, error) {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			return nil, domain.NewError(domain.ErrCodeInvalid, "title required")
		}
		patch.Title = &trimmed
	}
	return uc.tasks.Update(ctx, id, ownerID, patch)
}

func (uc *UseCase) Delete(ctx context.Context, id, ownerID string) error {
	return uc.tasks.Delete(ctx, id, ownerID)
}
