package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

var publishStatuses = []interface{}{StatusDraft, StatusPublished, StatusArchived}

// Post is a blog article.
type Post struct {
	Base
	Title           string     `json:"title" gorm:"type:varchar(255);not null"`
	Slug            string     `json:"slug" gorm:"type:varchar(191);not null;uniqueIndex"`
	Content         string     `json:"content" gorm:"type:longtext;not null"`
	Excerpt         string     `json:"excerpt" gorm:"type:text"`
	FeaturedImage   string     `json:"featuredImage" gorm:"type:varchar(512)"`
	Author          string     `json:"author" gorm:"type:varchar(191)"`
	Categories      []string   `json:"categories" gorm:"type:text;serializer:json"`
	Tags            []string   `json:"tags" gorm:"type:text;serializer:json"`
	Status          string     `json:"status" gorm:"type:varchar(20);not null;index"`
	PublishedAt     *time.Time `json:"publishedAt"`
	MetaTitle       string     `json:"metaTitle" gorm:"type:varchar(255)"`
	MetaDescription string     `json:"metaDescription" gorm:"type:text"`
}

func NewPost() *Post {
	return &Post{Status: StatusDraft, Categories: []string{}, Tags: []string{}}
}

func (p *Post) Normalize() {
	p.Slug = slugOr(p.Slug, p.Title)
	p.PublishedAt = stampPublished(p.Status, p.PublishedAt)
}

func (p *Post) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Content, validation.Required),
		validation.Field(&p.Slug, validation.Required.Error("cannot be derived from title"), validation.Length(1, 191)),
		validation.Field(&p.Status, validation.In(publishStatuses...)),
	)
}

func (p *Post) UniqueFields() []UniqueField {
	return []UniqueField{{Column: "slug", Value: p.Slug}}
}

// stampPublished sets the publish time the first time a document is published.
func stampPublished(status string, at *time.Time) *time.Time {
	if status == StatusPublished && at == nil {
		now := time.Now().UTC()
		return &now
	}
	return at
}
