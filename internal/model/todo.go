package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Todo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Task      string             `bson:"task" json:"task"`
	Completed bool               `bson:"completed" json:"completed"`
}

// TodoUpdate - частичное обновление: nil-поле сохраняет прежнее значение
type TodoUpdate struct {
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
}
