package asynq

import (
	"os"
	"time"

	"github.com/hibiken/asynq"
	"vaultline.io/infrastructure/logger"
	queue_tasks "vaultline.io/infrastructure/message_queue/tasks"
	mq_types "vaultline.io/infrastructure/message_queue/types"
)

type AsynqBroker struct {
	Client *asynq.Client
}

func (aq *AsynqBroker) Start() {
	redisConnOpt := asynq.RedisClientOpt{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	aq.Client = asynq.NewClient(redisConnOpt)

	srv := asynq.NewServer(
		redisConnOpt,
		asynq.Config{
			Concurrency: 20,
			Queues: map[string]int{
				string(mq_types.High):   7,
				string(mq_types.Medium): 2,
				string(mq_types.Low):    1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(string(queue_tasks.HandleLoginEventTaskName), queue_tasks.HandleLoginEventTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("asynq server stopped", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
		}
	}()
}

func (aq *AsynqBroker) Enqueue(task mq_types.QueueTask) {
	if task.TimeOut == 0 {
		task.TimeOut = 60
	}
	if task.MaxRetry == 0 {
		task.MaxRetry = 10
	}
	_, err := aq.Client.Enqueue(asynq.NewTask(string(task.Name), task.Payload),
		asynq.ProcessIn(time.Duration(task.ProcessIn)*time.Second),
		asynq.MaxRetry(task.MaxRetry),
		asynq.Timeout(time.Second*time.Duration(task.TimeOut)),
		asynq.Queue(string(task.Priority)))
	if err != nil {
		logger.Error("could not enqueue task", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "task",
			Data: task.Name,
		})
	}
}
