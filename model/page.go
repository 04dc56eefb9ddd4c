package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Page is a standalone site page.
type Page struct {
	Base
	Title           string     `json:"title" gorm:"type:varchar(255);not null"`
	Slug            string     `json:"slug" gorm:"type:varchar(191);not null;uniqueIndex"`
	Content         string     `json:"content" gorm:"type:longtext;not null"`
	Excerpt         string     `json:"excerpt" gorm:"type:text"`
	FeaturedImage   string     `json:"featuredImage" gorm:"type:varchar(512)"`
	Status          string     `json:"status" gorm:"type:varchar(20);not null;index"`
	PublishedAt     *time.Time `json:"publishedAt"`
	MetaTitle       string     `json:"metaTitle" gorm:"type:varchar(255)"`
	MetaDescription string     `json:"metaDescription" gorm:"type:text"`
}

func NewPage() *Page {
	return &Page{Status: StatusDraft}
}

func (p *Page) Normalize() {
	p.Slug = slugOr(p.Slug, p.Title)
	p.PublishedAt = stampPublished(p.Status, p.PublishedAt)
}

func (p *Page) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Content, validation.Required),
		validation.Field(&p.Slug, validation.Required.Error("cannot be derived from title"), validation.Length(1, 191)),
		validation.Field(&p.Status, validation.In(publishStatuses...)),
	)
}

func (p *Page) UniqueFields() []UniqueField {
	return []UniqueField{{Column: "slug", Value: p.Slug}}
}
