package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/db"
	"github.com/BuzzLyutic/todo-api/internal/model"
)

// SetupTestDB создает тестовую MongoDB с помощью testcontainers.
// Соединение устанавливается через db.Connect, так что проверяется и рукопожатие.
func SetupTestDB(t *testing.T) (*mongo.Database, func()) {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start mongodb container: %v", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	client, err := db.Connect(ctx, uri, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	database := client.Database("todo_test")

	cleanup := func() {
		client.Disconnect(ctx)
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Errorf("Failed to terminate container: %v", err)
		}
	}

	return database, cleanup
}

// ClearTodos очищает коллекцию todos
func ClearTodos(t *testing.T, database *mongo.Database) {
	t.Helper()
	ctx := context.Background()

	if _, err := database.Collection("todos").DeleteMany(ctx, bson.M{}); err != nil {
		t.Fatalf("Failed to clear todos collection: %v", err)
	}
}

// SeedTodos создает тестовые записи
func SeedTodos(t *testing.T, database *mongo.Database, count int) []primitive.ObjectID {
	t.Helper()
	ctx := context.Background()

	ids := make([]primitive.ObjectID, 0, count)
	for i := 0; i < count; i++ {
		res, err := database.Collection("todos").InsertOne(ctx, model.Todo{
			Task:      fmt.Sprintf("Task %d", i+1),
			Completed: i%2 == 0,
		})
		if err != nil {
			t.Fatalf("Failed to seed todo: %v", err)
		}
		ids = append(ids, res.InsertedID.(primitive.ObjectID))
	}

	return ids
}
