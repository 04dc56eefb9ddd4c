package model

import validation "github.com/go-ozzo/ozzo-validation/v4"

type Testimonial struct {
	Base
	Name        string `json:"name" gorm:"type:varchar(191);not null"`
	Designation string `json:"designation" gorm:"type:varchar(191)"`
	Content     string `json:"content" gorm:"type:text;not null"`
	Image       string `json:"image" gorm:"type:varchar(512)"`
	Rating      int    `json:"rating" gorm:"not null"`
	IsActive    bool   `json:"isActive" gorm:"not null"`
	Order       int    `json:"order" gorm:"column:sort_order;not null;default:0"`
}

func NewTestimonial() *Testimonial {
	return &Testimonial{Rating: 5, IsActive: true}
}

func (t *Testimonial) Normalize() {}

func (t *Testimonial) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Name, validation.Required, validation.Length(1, 191)),
		validation.Field(&t.Content, validation.Required),
		validation.Field(&t.Rating, validation.Min(1), validation.Max(5)),
	)
}
