package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is embedded by every document. IDs are UUID strings assigned on insert.
type Base struct {
	ID        string    `json:"_id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a new UUID when the document has none.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// DocumentID returns the document identifier.
func (b *Base) DocumentID() string { return b.ID }

// Document is implemented by every entity served through the resource handlers.
type Document interface {
	DocumentID() string
	// Normalize derives computed fields such as slugs and publish timestamps.
	Normalize()
	// Validate reports missing or malformed fields keyed by JSON name.
	Validate() error
}

// UniqueField names a column whose value must not repeat within a collection.
type UniqueField struct {
	Column string
	Value  string
}

// Uniquer is implemented by documents with unique columns besides the id.
type Uniquer interface {
	UniqueFields() []UniqueField
}

// ValidID reports whether id is a well-formed document identifier.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

// Models lists every persisted type, in migration order.
func Models() []interface{} {
	return []interface{}{
		&Doctor{},
		&Post{},
		&Page{},
		&Testimonial{},
		&Tag{},
		&Category{},
		&DoctorCategory{},
		&User{},
		&Media{},
		&AnalyticsRecord{},
		&PostView{},
		&SecurityLog{},
	}
}
