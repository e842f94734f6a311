package queue_tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"vaultline.io/application/repository"
	"vaultline.io/entities"
	"vaultline.io/infrastructure/ipresolver"
	"vaultline.io/infrastructure/logger"
	mq_types "vaultline.io/infrastructure/message_queue/types"
	"vaultline.io/infrastructure/useragent"
)

var HandleLoginEventTaskName mq_types.Queues = "record_login_event"

type LoginEventPayload struct {
	Username  string
	Role      string
	SessionID string
	IPAddress string
	UserAgent string
	Timestamp time.Time
}

// HandleLoginEventTask enriches a login with geolocation and device
// details and persists it. Runs off the request path; a failed lookup
// still records the bare event.
func HandleLoginEventTask(ctx context.Context, t *asynq.Task) error {
	var payload LoginEventPayload
	err := json.Unmarshal(t.Payload(), &payload)
	if err != nil {
		logger.Error("an error occured while unmarshalling login event payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}

	event := entities.LoginEvent{
		Username:  payload.Username,
		Role:      payload.Role,
		SessionID: payload.SessionID,
		IPAddress: payload.IPAddress,
		Timestamp: payload.Timestamp,
	}

	if ipData, err := ipresolver.IPResolverInstance.LookUp(payload.IPAddress); err == nil && ipData != nil {
		event.City = ipData.City
		event.CountryCode = ipData.CountryCode
	}
	if payload.UserAgent != "" {
		parsed := useragent.ParseUserAgent(payload.UserAgent)
		event.Device = parsed.Device
		event.OS = parsed.OS
		event.Browser = parsed.Browser
	}

	_, err = repository.LoginEventRepo().CreateOne(ctx, event)
	if err != nil {
		logger.Error("failed to record login event", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "username",
			Data: payload.Username,
		})
		return err
	}
	return nil
}
