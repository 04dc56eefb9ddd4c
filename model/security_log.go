package model

import (
	"time"

	"gorm.io/datatypes"
)

// SecurityLog represents a persisted security event
type SecurityLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	EventType string    `json:"eventType" gorm:"column:event_type;type:varchar(64);index"`
	UserID    string    `json:"userId" gorm:"column:user_id;type:varchar(64);index"`
	Email     string    `json:"email" gorm:"column:email;type:varchar(191);index"`
	IP        string    `json:"ip" gorm:"column:ip;type:varchar(45)"`
	// Location stores city and country in the format "City/Country" when available.
	Location  string         `json:"location" gorm:"column:location;type:varchar(255)"`
	UserAgent string         `json:"userAgent" gorm:"column:user_agent;type:varchar(512)"`
	Message   string         `json:"message" gorm:"column:message;type:text"`
	Details   datatypes.JSON `json:"details" gorm:"column:details;type:json"`
}
