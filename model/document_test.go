package model

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDefaults(t *testing.T) {
	d := NewDoctor()
	assert.True(t, d.IsActive)
	assert.Zero(t, d.Rating)
	assert.Zero(t, d.Reviews)

	tm := NewTestimonial()
	assert.Equal(t, 5, tm.Rating)
	assert.True(t, tm.IsActive)

	assert.Equal(t, StatusDraft, NewPost().Status)
	assert.Equal(t, StatusDraft, NewPage().Status)
	assert.True(t, NewDoctorCategory().IsActive)
	assert.Equal(t, DefaultMediaFolder, NewMedia().Folder)

	u := NewUser()
	assert.Equal(t, RoleEditor, u.Role)
	assert.True(t, u.IsActive)
}

func TestDoctorValidate_RequiredFields(t *testing.T) {
	err := NewDoctor().Validate()
	require.Error(t, err)

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "experience")

	d := NewDoctor()
	d.Name, d.Category, d.Experience = "Dr. A", "Cardiac Sciences", "10 years"
	assert.NoError(t, d.Validate())
}

func TestPostNormalize(t *testing.T) {
	p := NewPost()
	p.Title = "Hello World"
	p.Content = "..."
	p.Normalize()
	assert.Equal(t, "hello-world", p.Slug)
	assert.Nil(t, p.PublishedAt)
	assert.NoError(t, p.Validate())

	p.Status = StatusPublished
	p.Normalize()
	require.NotNil(t, p.PublishedAt)
	first := *p.PublishedAt

	p.Normalize()
	assert.Equal(t, first, *p.PublishedAt)
}

func TestPostValidate_UnknownStatus(t *testing.T) {
	p := NewPost()
	p.Title, p.Content, p.Status = "T", "C", "scheduled"
	p.Normalize()
	assert.Error(t, p.Validate())
}

func TestCategoryValidate_EmptySlug(t *testing.T) {
	c := NewCategory()
	c.Name = "???"
	c.Normalize()
	assert.Error(t, c.Validate())
}

func TestUserValidate(t *testing.T) {
	u := NewUser()
	u.Username, u.Email, u.Password = "editor1", "not-an-email", "hash"
	assert.Error(t, u.Validate())

	u.Email = "editor1@example.com"
	assert.NoError(t, u.Validate())

	u.Role = "owner"
	assert.Error(t, u.Validate())
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("8f14e45f-ceea-4a6b-9c1f-5e0f3b3b8e10"))
	assert.False(t, ValidID("123"))
	assert.False(t, ValidID("8f14e45fceea4a6b9c1f5e0f3b3b8e10"))
}

func TestBaseBeforeCreate_AssignsUUID(t *testing.T) {
	db := setupTestDB(t, "doctor", &Doctor{})

	d := NewDoctor()
	d.Name, d.Category, d.Experience = "Dr. A", "Cardiac Sciences", "10 years"
	d.Publications = []Publication{{Title: "Heart", Journal: "Lancet", Year: 2020}}
	require.NoError(t, db.Create(d).Error)
	assert.True(t, ValidID(d.ID))
	assert.False(t, d.CreatedAt.IsZero())

	var found Doctor
	require.NoError(t, db.First(&found, "id = ?", d.ID).Error)
	assert.Equal(t, "Lancet", found.Publications[0].Journal)
	assert.True(t, found.IsActive)
}

func TestSlugUniqueIndex(t *testing.T) {
	db := setupTestDB(t, "post_unique", &Post{})

	first := NewPost()
	first.Title, first.Content = "Hello World", "a"
	first.Normalize()
	require.NoError(t, db.Create(first).Error)

	second := NewPost()
	second.Title, second.Content = "hello, world!", "b"
	second.Normalize()
	err := db.Create(second).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSeedAdmin(t *testing.T) {
	db := setupTestDB(t, "seed", &User{})

	created, err := SeedAdmin(db, "admin", "admin@example.com", "$2a$12$digest")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = SeedAdmin(db, "admin2", "admin2@example.com", "$2a$12$digest")
	require.NoError(t, err)
	assert.False(t, created)

	var admin User
	require.NoError(t, db.First(&admin, "username = ?", "admin").Error)
	assert.Equal(t, RoleAdmin, admin.Role)

	_, err = SeedAdmin(db, "", "x@example.com", "h")
	assert.Error(t, err)
}
