package config

import (
	"os"
	"time"
)

type Config struct {
	Port         string
	MongoURI     string
	DBName       string
	PingInterval time.Duration
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "5001"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://todo-db:27017/"),
		DBName:       getEnv("DB_NAME", "todo_db"),
		PingInterval: 15 * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
