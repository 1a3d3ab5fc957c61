package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
)

var (
	ErrMissingTask    = errors.New("missing task field")
	ErrNoUpdateFields = errors.New("no valid fields to update")
)

type TodoService struct {
	repo repo.TodoRepository
}

func NewTodoService(repo repo.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, task string) (model.Todo, error) {
	// Пустой task допустим только при обновлении, не при создании
	if strings.TrimSpace(task) == "" {
		return model.Todo{}, ErrMissingTask
	}
	return s.repo.Create(ctx, task)
}

func (s *TodoService) Get(ctx context.Context, id primitive.ObjectID) (model.Todo, error) {
	return s.repo.Get(ctx, id)
}

func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	return s.repo.List(ctx)
}

func (s *TodoService) Update(ctx context.Context, id primitive.ObjectID, upd model.TodoUpdate) error {
	if upd.Task == nil && upd.Completed == nil {
		return ErrNoUpdateFields
	}
	return s.repo.Update(ctx, id, upd)
}

func (s *TodoService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

func (s *TodoService) Stats(ctx context.Context) (repo.Stats, error) {
	return s.repo.Stats(ctx)
}
