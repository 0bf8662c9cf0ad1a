// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	commentstore "github.com/dalemusser/quillpad/internal/app/store/comments"
	groupstore "github.com/dalemusser/quillpad/internal/app/store/groups"
	poststore "github.com/dalemusser/quillpad/internal/app/store/posts"
	userstore "github.com/dalemusser/quillpad/internal/app/store/users"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection used by the whole app.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the collection indexes the stores rely on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	if err := userstore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if err := groupstore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("groups indexes: %w", err)
	}
	if err := poststore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("posts indexes: %w", err)
	}
	if err := commentstore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("comments indexes: %w", err)
	}

	logger.Info("database indexes ensured")
	return nil
}
