// Package db устанавливает и проверяет соединение с MongoDB при старте сервиса.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	connectAttempts = 10
	connectInterval = 5 * time.Second
)

// Connect подключается к MongoDB и подтверждает соединение пингом.
// Сервис без БД нежизнеспособен, поэтому после исчерпания попыток возвращается ошибка.
func Connect(ctx context.Context, uri string, logger *zap.Logger) (*mongo.Client, error) {
	return connect(ctx, uri, retryPolicy(), logger)
}

// retryPolicy - фиксированный интервал, без экспоненты и джиттера
func retryPolicy() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewConstantBackOff(connectInterval), connectAttempts-1)
}

func connect(ctx context.Context, uri string, policy backoff.BackOff, logger *zap.Logger) (*mongo.Client, error) {
	var client *mongo.Client

	attempt := func() error {
		c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			logger.Warn("DB not ready yet", zap.Error(err))
			return err
		}

		if err := c.Ping(ctx, readpref.Primary()); err != nil {
			_ = c.Disconnect(ctx)
			logger.Warn("DB not ready yet", zap.Error(err))
			return err
		}

		client = c
		return nil
	}

	if err := backoff.Retry(attempt, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("could not connect to database after several retries: %w", err)
	}

	logger.Info("Connected to MongoDB")
	return client, nil
}
