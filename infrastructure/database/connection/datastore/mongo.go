package datastore

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"vaultline.io/infrastructure/logger"
)

var (
	LoginEventModel  *mongo.Collection
	ActivityLogModel *mongo.Collection
)

var client *mongo.Client

func ConnectToDatabase() {
	connectMongo()
}

func connectMongo() {
	url := os.Getenv("DB_URL")
	if url == "" {
		logger.Error("mongo url missing")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(url)
	clientOpts.SetMinPoolSize(5)
	clientOpts.SetMaxPoolSize(10)

	var err error
	client, err = mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Warning("an error occured while starting the database", logger.LoggerOptions{Key: "error", Data: err})
		return
	}

	db := client.Database(os.Getenv("DB_NAME"))
	setUpIndexes(ctx, db)

	logger.Info("connected to mongodb successfully")
}

// Set up the indexes for the database
func setUpIndexes(ctx context.Context, db *mongo.Database) {
	LoginEventModel = db.Collection("LoginEvents")
	LoginEventModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "timestamp", Value: -1}},
		Options: options.Index(),
	}})

	ActivityLogModel = db.Collection("ActivityLogs")
	ActivityLogModel.Indexes().CreateMany(ctx, []mongo.IndexModel{{
		Keys:    bson.D{{Key: "sessionID", Value: 1}},
		Options: options.Index(),
	}, {
		Keys:    bson.D{{Key: "timestamp", Value: -1}},
		Options: options.Index(),
	}})

	logger.Info("mongodb indexes set up successfully")
}

func CleanUp() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("error disconnecting from mongodb", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}
