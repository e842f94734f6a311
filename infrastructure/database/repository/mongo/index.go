package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"vaultline.io/infrastructure/logger"
)

func (repo *MongoRepository[T]) CreateOne(ctx context.Context, payload T) (*T, error) {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
	}
	parsed := payload.ParseModel().(*T)
	_, err := repo.Model.InsertOne(ctx, parsed)
	if err != nil {
		logger.Error("mongo error occured while running CreateOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	return parsed, nil
}

func (repo *MongoRepository[T]) FindOneByFilter(filter map[string]any, opts ...*options.FindOneOptions) (*T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var result T
	err := repo.Model.FindOne(ctx, filter, opts...).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logger.Error("mongo error occured while running FindOneByFilter", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	return &result, nil
}

func (repo *MongoRepository[T]) FindManyByFilter(filter map[string]any, opts ...*options.FindOptions) (*[]T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := repo.Model.Find(ctx, filter, opts...)
	if err != nil {
		logger.Error("mongo error occured while running FindManyByFilter", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		logger.Error("mongo error occured while decoding FindManyByFilter results", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	return &results, nil
}
