package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blogging-backend/pkg/logger"
)

// Collection names
const (
	AuthorsCollection = "authors"
	BlogsCollection   = "blogs"
)

// MongoConfig groups the settings needed to reach MongoDB
type MongoConfig struct {
	URI         string
	Database    string
	MaxPoolSize uint64

	// Retry applies to the initial connect only; request paths never retry
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// MongoDB wraps the driver client and the application database
type MongoDB struct {
	Client *mongo.Client
	DB     *mongo.Database
	Config *MongoConfig
}

func NewMongoDB(cfg *MongoConfig) *MongoDB {
	return &MongoDB{Config: cfg}
}

// Connect dials MongoDB, retrying with exponential backoff until the
// server answers a ping or MaxRetries is reached
func (db *MongoDB) Connect(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(db.Config.URI).
		SetConnectTimeout(db.Config.ConnectTimeout)
	if db.Config.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(db.Config.MaxPoolSize)
	}

	attempts := db.Config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}
	delay := db.Config.RetryDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		logger.Info("Connecting to MongoDB", map[string]interface{}{"attempt": attempt, "max_attempts": attempts})

		client, err := mongo.Connect(ctx, opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
			err = client.Ping(pingCtx, readpref.Primary())
			cancel()
			if err == nil {
				db.Client = client
				db.DB = client.Database(db.Config.Database)
				logger.Info("Connected to MongoDB", map[string]interface{}{"attempt": attempt, "database": db.Config.Database})
				return nil
			}
			_ = client.Disconnect(ctx)
		}

		lastErr = err
		logger.Warn("MongoDB connection attempt failed", map[string]interface{}{"attempt": attempt, "error": lastErr.Error()})

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return fmt.Errorf("connect mongodb: %w", ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	return fmt.Errorf("connect mongodb after %d attempts: %w", attempts, lastErr)
}

// Ping checks the database is reachable
func (db *MongoDB) Ping(ctx context.Context) error {
	if db.Client == nil {
		return fmt.Errorf("mongodb client is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Collection returns a handle on the named collection
func (db *MongoDB) Collection(name string) *mongo.Collection {
	return db.DB.Collection(name)
}

// Close disconnects the client. Safe to call more than once.
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		logger.Debug("MongoDB client is already closed or was never initialized")
		return nil
	}

	logger.Info("Closing MongoDB client", nil)
	err := db.Client.Disconnect(ctx)
	db.Client = nil
	return err
}
