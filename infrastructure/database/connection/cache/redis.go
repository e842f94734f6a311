package cache

import (
	"context"
	"errors"
	"os"

	"github.com/redis/go-redis/v9"
	"vaultline.io/infrastructure/logger"
)

var instance *RedisInstance

type RedisInstance struct {
	Client *redis.Client
}

func ConnectToCache() {
	opt := &redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
		PoolSize: 10,
	}
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warning("could not reach redis on start up", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	} else {
		logger.Info("connected to redis successfully")
	}
	instance = &RedisInstance{Client: client}
}

func GetInstance() (*RedisInstance, error) {
	if instance == nil {
		return nil, errors.New("redis connection has not been initialised")
	}
	return instance, nil
}
