package model

import "time"

// AnalyticsRecord is one observed page request.
type AnalyticsRecord struct {
	ID           uint      `json:"id" gorm:"primaryKey" bson:"-"`
	Path         string    `json:"path" gorm:"type:varchar(512);not null;index" bson:"path"`
	Timestamp    time.Time `json:"timestamp" gorm:"not null;index" bson:"timestamp"`
	UserAgent    string    `json:"userAgent" gorm:"type:varchar(512)" bson:"userAgent"`
	Referrer     string    `json:"referrer" gorm:"type:varchar(1024)" bson:"referrer"`
	SessionID    string    `json:"sessionId" gorm:"type:char(36);index" bson:"sessionId"`
	IsNewSession bool      `json:"isNewSession" bson:"isNewSession"`
	Country      string    `json:"country" gorm:"type:varchar(100)" bson:"country,omitempty"`
	City         string    `json:"city" gorm:"type:varchar(100)" bson:"city,omitempty"`
}

// PostView counts reads of a blog post by slug.
type PostView struct {
	ID        uint      `json:"id" gorm:"primaryKey" bson:"-"`
	Slug      string    `json:"slug" gorm:"type:varchar(191);not null;uniqueIndex" bson:"slug"`
	Views     int64     `json:"views" gorm:"not null;default:0" bson:"views"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
