package endpoint

import (
	"github.com/ariebrainware/clinic-cms/model"
	"gorm.io/gorm"
)

var Doctors = &Resource[model.Doctor, *model.Doctor, DoctorRequest]{
	Name:   "Doctor",
	Plural: "Doctors",
	New:    model.NewDoctor,
	Order:  []string{"sort_order ASC", "created_at DESC"},
}

var Posts = &Resource[model.Post, *model.Post, PostRequest]{
	Name:   "Post",
	Plural: "Posts",
	New:    model.NewPost,
	Order:  []string{"created_at DESC"},
}

var Pages = &Resource[model.Page, *model.Page, PageRequest]{
	Name:   "Page",
	Plural: "Pages",
	New:    model.NewPage,
	Order:  []string{"created_at DESC"},
}

var Testimonials = &Resource[model.Testimonial, *model.Testimonial, TestimonialRequest]{
	Name:   "Testimonial",
	Plural: "Testimonials",
	New:    model.NewTestimonial,
	Order:  []string{"sort_order ASC", "created_at DESC"},
}

var Tags = &Resource[model.Tag, *model.Tag, TagRequest]{
	Name:   "Tag",
	Plural: "Tags",
	New:    model.NewTag,
	Order:  []string{"name ASC"},
}

// Categories cannot be deleted while a doctor lists one by name.
var Categories = &Resource[model.Category, *model.Category, CategoryRequest]{
	Name:   "Category",
	Plural: "Categories",
	New:    model.NewCategory,
	Order:  []string{"name ASC"},
	ReferencedBy: func(db *gorm.DB, c *model.Category) *gorm.DB {
		return referencedByDoctors(db, c.Name)
	},
}

var DoctorCategories = &Resource[model.DoctorCategory, *model.DoctorCategory, DoctorCategoryRequest]{
	Name:   "Doctor category",
	Plural: "Doctor categories",
	New:    model.NewDoctorCategory,
	Order:  []string{"sort_order ASC", "name ASC"},
	ReferencedBy: func(db *gorm.DB, c *model.DoctorCategory) *gorm.DB {
		return referencedByDoctors(db, c.Name)
	},
}

var Users = &Resource[model.User, *model.User, UserRequest]{
	Name:        "User",
	Plural:      "Users",
	New:         model.NewUser,
	Order:       []string{"created_at DESC"},
	Prepare:     prepareUser,
	AfterSave:   afterUserSave,
	AfterDelete: afterUserDelete,
}

// Media documents are created by UploadMedia; the resource serves the rest.
var MediaLibrary = &Resource[model.Media, *model.Media, MediaRequest]{
	Name:        "Media",
	Plural:      "Media",
	New:         model.NewMedia,
	Order:       []string{"created_at DESC"},
	AfterDelete: afterMediaDelete,
}
