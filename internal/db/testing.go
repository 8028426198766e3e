package db

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateTestMongoDatabase connects to TEST_MONGODB_URL and returns a fresh
// database that is dropped when the test ends. The test is skipped when the
// variable is not set.
func CreateTestMongoDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGODB_URL")
	if uri == "" {
		t.Skip("TEST_MONGODB_URL is not set.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("Could not connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("Could not ping MongoDB: %v", err)
	}

	database := client.Database("brainbox_test_" + strconv.FormatInt(time.Now().UnixNano(), 10))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = database.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return database
}
