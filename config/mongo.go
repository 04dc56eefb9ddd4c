package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo connects to MONGOURI and returns the analytics database.
// Returns nil, nil, nil when MONGOURI is not set.
func ConnectMongo(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	cfg := LoadConfig()
	if cfg.MongoURI == "" {
		return nil, nil, nil
	}

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(50).
		SetConnectTimeout(5 * time.Second).
		SetSocketTimeout(10 * time.Second)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, 2*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	name := cfg.MongoDatabase
	if name == "" {
		name = cfg.AppName
	}
	logrus.WithField("database", name).Info("Successfully connected to MongoDB")
	return client, client.Database(name), nil
}

// CloseMongo disconnects client, logging failures.
func CloseMongo(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(context.Background()); err != nil {
		logrus.WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	return nil
}
