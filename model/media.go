package model

import validation "github.com/go-ozzo/ozzo-validation/v4"

const DefaultMediaFolder = "uploads"

// Media records an object uploaded to the bucket.
type Media struct {
	Base
	Filename     string `json:"filename" gorm:"type:varchar(255);not null"`
	OriginalName string `json:"originalName" gorm:"type:varchar(255)"`
	URL          string `json:"url" gorm:"type:varchar(1024);not null"`
	MimeType     string `json:"mimeType" gorm:"type:varchar(127)"`
	Size         int64  `json:"size"`
	Folder       string `json:"folder" gorm:"type:varchar(191);not null;index"`
	Alt          string `json:"alt" gorm:"type:varchar(255)"`
	UploadedBy   string `json:"uploadedBy" gorm:"type:char(36)"`
}

func NewMedia() *Media { return &Media{Folder: DefaultMediaFolder} }

func (m *Media) Normalize() {
	if m.Folder == "" {
		m.Folder = DefaultMediaFolder
	}
}

func (m *Media) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Filename, validation.Required),
		validation.Field(&m.URL, validation.Required),
		validation.Field(&m.Size, validation.Min(int64(0))),
	)
}
