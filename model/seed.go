package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account when the users table is empty.
// passwordHash must already be a bcrypt digest. Returns true when a user was created.
func SeedAdmin(db *gorm.DB, username, email, passwordHash string) (bool, error) {
	if username == "" || email == "" || passwordHash == "" {
		return false, errors.New("admin seed requires username, email and password")
	}

	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	admin := NewUser()
	admin.Username = username
	admin.Email = email
	admin.Password = passwordHash
	admin.Name = "Administrator"
	admin.Role = RoleAdmin
	if err := db.Create(admin).Error; err != nil {
		return false, fmt.Errorf("failed to seed admin %s: %w", username, err)
	}
	return true, nil
}
