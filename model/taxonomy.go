package model

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Tag labels posts.
type Tag struct {
	Base
	Name        string `json:"name" gorm:"type:varchar(191);not null"`
	Slug        string `json:"slug" gorm:"type:varchar(191);not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
}

func NewTag() *Tag { return &Tag{} }

func (t *Tag) Normalize() { t.Slug = slugOr(t.Slug, t.Name) }

func (t *Tag) Validate() error { return validateNamed(&t.Name, &t.Slug) }

func (t *Tag) UniqueFields() []UniqueField {
	return []UniqueField{{Column: "slug", Value: t.Slug}}
}

// Category groups posts. Doctors may also reference a category by name.
type Category struct {
	Base
	Name        string `json:"name" gorm:"type:varchar(191);not null"`
	Slug        string `json:"slug" gorm:"type:varchar(191);not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
}

func NewCategory() *Category { return &Category{} }

func (c *Category) Normalize() { c.Slug = slugOr(c.Slug, c.Name) }

func (c *Category) Validate() error { return validateNamed(&c.Name, &c.Slug) }

func (c *Category) UniqueFields() []UniqueField {
	return []UniqueField{{Column: "slug", Value: c.Slug}}
}

// DoctorCategory is a medical department listed in the doctors directory.
type DoctorCategory struct {
	Base
	Name        string `json:"name" gorm:"type:varchar(191);not null"`
	Slug        string `json:"slug" gorm:"type:varchar(191);not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon" gorm:"type:varchar(191)"`
	Order       int    `json:"order" gorm:"column:sort_order;not null;default:0"`
	IsActive    bool   `json:"isActive" gorm:"not null"`
}

func NewDoctorCategory() *DoctorCategory { return &DoctorCategory{IsActive: true} }

func (c *DoctorCategory) Normalize() { c.Slug = slugOr(c.Slug, c.Name) }

func (c *DoctorCategory) Validate() error { return validateNamed(&c.Name, &c.Slug) }

func (c *DoctorCategory) UniqueFields() []UniqueField {
	return []UniqueField{{Column: "slug", Value: c.Slug}}
}

func validateNamed(name, slug *string) error {
	return validation.Errors{
		"name": validation.Validate(*name, validation.Required, validation.Length(1, 191)),
		"slug": validation.Validate(*slug, validation.Required.Error("cannot be derived from name")),
	}.Filter()
}
