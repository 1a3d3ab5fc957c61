package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// TodoRepository определяет интерфейс для работы с коллекцией todos
type TodoRepository interface {
	Create(ctx context.Context, task string) (model.Todo, error)
	Get(ctx context.Context, id primitive.ObjectID) (model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	// Update применяет merge-обновление: хотя бы одно поле upd должно быть задано
	Update(ctx context.Context, id primitive.ObjectID, upd model.TodoUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Stats(ctx context.Context) (Stats, error)
}
