package entities

import (
	"time"

	"vaultline.io/application/utils"
)

// LoginEvent records a successful sign-in with coarse device and
// location context. Written off the request path by the task queue.
type LoginEvent struct {
	ID          string    `bson:"_id" json:"id"`
	Username    string    `bson:"username" json:"username"`
	Role        string    `bson:"role" json:"role"`
	SessionID   string    `bson:"sessionID" json:"sessionID"`
	IPAddress   string    `bson:"ipAddress" json:"ipAddress"`
	City        string    `bson:"city" json:"city"`
	CountryCode string    `bson:"countryCode" json:"countryCode"`
	Device      string    `bson:"device" json:"device"`
	OS          string    `bson:"os" json:"os"`
	Browser     string    `bson:"browser" json:"browser"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (l LoginEvent) ParseModel() interface{} {
	if l.ID == "" {
		l.ID = utils.GenerateULIDString()
	}
	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now
	if l.Timestamp.IsZero() {
		l.Timestamp = now
	}
	return &l
}
