package service

import (
	"context"
	"fmt"

	"taskdeck/internal/common"
	"taskdeck/internal/domain/model"
	"taskdeck/internal/domain/repository"
)

type TodoService struct {
	todoRepo repository.TodoRepository
}

func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

type TodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

func (r TodoRequest) validate() error {
	if len(r.Title) < 3 {
		return fmt.Errorf("title must be at least 3 characters: %w", common.ErrValidation)
	}
	if len(r.Description) < 3 || len(r.Description) > 100 {
		return fmt.Errorf("description must be 3 to 100 characters: %w", common.ErrValidation)
	}
	if r.Priority < 1 || r.Priority > 5 {
		return fmt.Errorf("priority must be between 1 and 5: %w", common.ErrValidation)
	}
	return nil
}

func (s *TodoService) Create(ctx context.Context, ownerID int64, req TodoRequest) (*model.Todo, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	todo := &model.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    false,
		OwnerID:     ownerID,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

func (s *TodoService) ListByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	return s.todoRepo.FindByOwner(ctx, ownerID)
}

// GetForOwner fetches one todo, refusing to reveal other users' items.
func (s *TodoService) GetForOwner(ctx context.Context, ownerID, id int64) (*model.Todo, error) {
	todo, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, ownerID, id int64, req TodoRequest) error {
	if err := req.validate(); err != nil {
		return err
	}

	todo, err := s.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return err
	}

	todo.Title = req.Title
	todo.Description = req.Description
	todo.Priority = req.Priority
	return s.todoRepo.Update(ctx, todo)
}

func (s *TodoService) ToggleComplete(ctx context.Context, ownerID, id int64) error {
	todo, err := s.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return err
	}
	todo.Complete = !todo.Complete
	return s.todoRepo.Update(ctx, todo)
}

func (s *TodoService) Delete(ctx context.Context, ownerID, id int64) error {
	return s.todoRepo.DeleteByIDAndOwner(ctx, id, ownerID)
}

// ListAll returns every todo regardless of owner. Admin gate applies at the
// route level.
func (s *TodoService) ListAll(ctx context.Context) ([]model.Todo, error) {
	return s.todoRepo.FindAll(ctx)
}

// DeleteAny deletes a todo regardless of owner. Admin gate applies at the
// route level.
func (s *TodoService) DeleteAny(ctx context.Context, id int64) error {
	return s.todoRepo.DeleteByID(ctx, id)
}
