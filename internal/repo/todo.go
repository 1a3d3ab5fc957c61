package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

var (
	ErrorNotFound    = errors.New("not found")
	ErrorNotModified = errors.New("not modified")
)

const todosCollection = "todos"

type Stats struct {
	Total     int64 `bson:"total" json:"total"`
	Completed int64 `bson:"completed" json:"completed"`
	Pending   int64 `bson:"pending" json:"pending"`
}

type TodoRepo struct { // Репозиторий для работы непосредственно с коллекцией
	coll *mongo.Collection
}

func NewTodoRepo(db *mongo.Database) *TodoRepo { // Конструктор
	return &TodoRepo{
		coll: db.Collection(todosCollection),
	}
}

func (r *TodoRepo) Create(ctx context.Context, task string) (model.Todo, error) {
	t := model.Todo{Task: task, Completed: false}

	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return t, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return t, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	t.ID = oid
	return t, nil
}

func (r *TodoRepo) Get(ctx context.Context, id primitive.ObjectID) (model.Todo, error) {
	var t model.Todo
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TodoRepo) List(ctx context.Context) ([]model.Todo, error) {
	// Без сортировки: порядок обхода коллекции не является частью контракта
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	todos := make([]model.Todo, 0)
	for cur.Next(ctx) {
		var t model.Todo
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, cur.Err()
}

func (r *TodoRepo) Update(ctx context.Context, id primitive.ObjectID, upd model.TodoUpdate) error {
	set := bson.M{}
	if upd.Task != nil {
		set["task"] = *upd.Task
	}
	if upd.Completed != nil {
		set["completed"] = *upd.Completed
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	// ModifiedCount не различает отсутствующий документ и запись тех же значений
	if res.ModifiedCount == 0 {
		return ErrorNotModified
	}
	return nil
}

func (r *TodoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *TodoRepo) Stats(ctx context.Context) (Stats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "completed", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$completed", 1, 0}},
			}}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return Stats{}, err
	}
	defer cur.Close(ctx)

	var s Stats
	if cur.Next(ctx) { // Пустая коллекция: $group не вернет ни одного документа
		if err := cur.Decode(&s); err != nil {
			return Stats{}, err
		}
	}
	s.Pending = s.Total - s.Completed
	return s, cur.Err()
}
