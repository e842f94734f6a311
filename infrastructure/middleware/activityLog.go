package middlewares

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"vaultline.io/application/repository"
	"vaultline.io/entities"
	"vaultline.io/infrastructure/logger"
)

// ActivityLogMiddleware records authenticated dashboard requests to
// MongoDB. Requests without a session cookie are not recorded.
func ActivityLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		sid := SessionID(c)
		if sid == "" {
			return
		}

		duration := time.Since(startTime).Milliseconds()

		var queryParams *string
		if c.Request.URL.RawQuery != "" {
			raw := c.Request.URL.RawQuery
			queryParams = &raw
		}
		var userAgent *string
		if ua := c.GetHeader("User-Agent"); ua != "" {
			userAgent = &ua
		}

		activityLog := entities.ActivityLog{
			SessionID:   sid,
			IPAddress:   c.ClientIP(),
			Method:      c.Request.Method,
			URL:         c.Request.URL.Path,
			QueryParams: queryParams,
			StatusCode:  c.Writer.Status(),
			UserAgent:   userAgent,
			Timestamp:   startTime,
			Duration:    duration,
		}

		// persisted off the request path
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			repo := repository.ActivityLogRepo()
			if _, err := repo.CreateOne(ctx, activityLog); err != nil {
				logger.Error("failed to save activity log", logger.LoggerOptions{
					Key:  "error",
					Data: err,
				})
			}
		}()
	}
}
