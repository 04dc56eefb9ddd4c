package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type DoctorAbout struct {
	Summary     string   `json:"summary"`
	Education   []string `json:"education"`
	Awards      []string `json:"awards"`
	Memberships []string `json:"memberships"`
}

type Publication struct {
	Title   string `json:"title"`
	Journal string `json:"journal"`
	Year    int    `json:"year"`
	URL     string `json:"url"`
}

type Research struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
	Status      string `json:"status"`
}

// Doctor is a directory entry. Category holds the DoctorCategory name.
type Doctor struct {
	Base
	Name           string        `json:"name" gorm:"type:varchar(191);not null"`
	Designation    string        `json:"designation" gorm:"type:varchar(191)"`
	Category       string        `json:"category" gorm:"type:varchar(191);not null;index"`
	Experience     string        `json:"experience" gorm:"type:varchar(100);not null"`
	Qualification  []string      `json:"qualification" gorm:"type:text;serializer:json"`
	Specialization []string      `json:"specialization" gorm:"type:text;serializer:json"`
	Languages      []string      `json:"languages" gorm:"type:text;serializer:json"`
	Image          string        `json:"image" gorm:"type:varchar(512)"`
	Email          string        `json:"email" gorm:"type:varchar(191)"`
	Phone          string        `json:"phone" gorm:"type:varchar(50)"`
	Rating         float64       `json:"rating" gorm:"not null;default:0"`
	Reviews        int           `json:"reviews" gorm:"not null;default:0"`
	IsActive       bool          `json:"isActive" gorm:"not null"`
	Order          int           `json:"order" gorm:"column:sort_order;not null;default:0"`
	About          DoctorAbout   `json:"about" gorm:"type:text;serializer:json"`
	Publications   []Publication `json:"publications" gorm:"type:text;serializer:json"`
	Research       []Research    `json:"research" gorm:"type:text;serializer:json"`
}

// NewDoctor returns a Doctor carrying the directory defaults.
func NewDoctor() *Doctor {
	return &Doctor{
		IsActive:       true,
		Qualification:  []string{},
		Specialization: []string{},
		Languages:      []string{},
		Publications:   []Publication{},
		Research:       []Research{},
	}
}

func (d *Doctor) Normalize() {}

func (d *Doctor) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, 191)),
		validation.Field(&d.Category, validation.Required, validation.Length(1, 191)),
		validation.Field(&d.Experience, validation.Required, validation.Length(1, 100)),
		validation.Field(&d.Email, is.EmailFormat),
		validation.Field(&d.Rating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&d.Reviews, validation.Min(0)),
	)
}
