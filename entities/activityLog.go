package entities

import (
	"time"

	"vaultline.io/application/utils"
)

// ActivityLog records one gateway request for audit purposes. The
// session ID recorded here is the cookie value, not the token; tokens
// never leave the session store.
type ActivityLog struct {
	ID          string    `bson:"_id" json:"id"`
	SessionID   string    `bson:"sessionID" json:"sessionID"`
	IPAddress   string    `bson:"ipAddress" json:"ipAddress"`
	Method      string    `bson:"method" json:"method"`
	URL         string    `bson:"url" json:"url"`
	QueryParams *string   `bson:"queryParams" json:"queryParams"`
	StatusCode  int       `bson:"statusCode" json:"statusCode"`
	UserAgent   *string   `bson:"userAgent" json:"userAgent"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	Duration    int64     `bson:"duration" json:"duration"` // Duration in milliseconds
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (a ActivityLog) ParseModel() interface{} {
	if a.ID == "" {
		a.ID = utils.GenerateULIDString()
	}
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	if a.Timestamp.IsZero() {
		a.Timestamp = now
	}
	return &a
}
