package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is a CMS account. Password holds the bcrypt digest and is never serialized.
type User struct {
	Base
	Username  string     `json:"username" gorm:"type:varchar(100);not null;uniqueIndex"`
	Email     string     `json:"email" gorm:"type:varchar(191);not null;uniqueIndex"`
	Password  string     `json:"-" gorm:"type:varchar(255);not null"`
	Name      string     `json:"name" gorm:"type:varchar(191)"`
	Role      string     `json:"role" gorm:"type:varchar(20);not null"`
	IsActive  bool       `json:"isActive" gorm:"not null"`
	LastLogin *time.Time `json:"lastLogin"`
}

func NewUser() *User {
	return &User{Role: RoleEditor, IsActive: true}
}

func (u *User) Normalize() {}

func (u *User) Validate() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Username, validation.Required, validation.Length(3, 100)),
		validation.Field(&u.Email, validation.Required, is.EmailFormat),
		validation.Field(&u.Password, validation.Required.Error("password is required")),
		validation.Field(&u.Role, validation.Required, validation.In(RoleAdmin, RoleEditor)),
	)
}

func (u *User) UniqueFields() []UniqueField {
	return []UniqueField{
		{Column: "username", Value: u.Username},
		{Column: "email", Value: u.Email},
	}
}
