package endpoint

import (
	"strings"
	"time"

	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/util"
)

// Request bodies use pointers so that an update only touches the fields sent.

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func setName(dst *string, src *string) {
	if src != nil {
		*dst = util.NormalizeName(*src)
	}
}

func setSlice[T any](dst *[]T, src []T) {
	if src != nil {
		*dst = src
	}
}

type DoctorRequest struct {
	Name           *string             `json:"name" example:"Dr. Jane Doe"`
	Designation    *string             `json:"designation" example:"Senior Consultant"`
	Category       *string             `json:"category" example:"Cardiology"`
	Experience     *string             `json:"experience" example:"15+ years"`
	Qualification  []string            `json:"qualification"`
	Specialization []string            `json:"specialization"`
	Languages      []string            `json:"languages"`
	Image          *string             `json:"image"`
	Email          *string             `json:"email" example:"jane.doe@clinic.example.com"`
	Phone          *string             `json:"phone"`
	Rating         *float64            `json:"rating" example:"4.8"`
	Reviews        *int                `json:"reviews"`
	IsActive       *bool               `json:"isActive"`
	Order          *int                `json:"order"`
	About          *model.DoctorAbout  `json:"about"`
	Publications   []model.Publication `json:"publications"`
	Research       []model.Research    `json:"research"`
}

func (r DoctorRequest) ApplyTo(d *model.Doctor) {
	setName(&d.Name, r.Name)
	setTrimmed(&d.Designation, r.Designation)
	setName(&d.Category, r.Category)
	setTrimmed(&d.Experience, r.Experience)
	setSlice(&d.Qualification, r.Qualification)
	setSlice(&d.Specialization, r.Specialization)
	setSlice(&d.Languages, r.Languages)
	setTrimmed(&d.Image, r.Image)
	setTrimmed(&d.Email, r.Email)
	setTrimmed(&d.Phone, r.Phone)
	set(&d.Rating, r.Rating)
	set(&d.Reviews, r.Reviews)
	set(&d.IsActive, r.IsActive)
	set(&d.Order, r.Order)
	set(&d.About, r.About)
	setSlice(&d.Publications, r.Publications)
	setSlice(&d.Research, r.Research)
}

type PostRequest struct {
	Title           *string    `json:"title" example:"Hello World"`
	Slug            *string    `json:"slug"`
	Content         *string    `json:"content" example:"<p>Welcome</p>"`
	Excerpt         *string    `json:"excerpt"`
	FeaturedImage   *string    `json:"featuredImage"`
	Author          *string    `json:"author"`
	Categories      []string   `json:"categories"`
	Tags            []string   `json:"tags"`
	Status          *string    `json:"status" example:"draft"`
	PublishedAt     *time.Time `json:"publishedAt"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
}

func (r PostRequest) ApplyTo(p *model.Post) {
	setTrimmed(&p.Title, r.Title)
	setTrimmed(&p.Slug, r.Slug)
	set(&p.Content, r.Content)
	setTrimmed(&p.Excerpt, r.Excerpt)
	setTrimmed(&p.FeaturedImage, r.FeaturedImage)
	setName(&p.Author, r.Author)
	setSlice(&p.Categories, r.Categories)
	setSlice(&p.Tags, r.Tags)
	setStatus(&p.Status, r.Status)
	if r.PublishedAt != nil {
		p.PublishedAt = r.PublishedAt
	}
	setTrimmed(&p.MetaTitle, r.MetaTitle)
	setTrimmed(&p.MetaDescription, r.MetaDescription)
}

type PageRequest struct {
	Title           *string    `json:"title" example:"About Us"`
	Slug            *string    `json:"slug"`
	Content         *string    `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	FeaturedImage   *string    `json:"featuredImage"`
	Status          *string    `json:"status" example:"published"`
	PublishedAt     *time.Time `json:"publishedAt"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
}

func (r PageRequest) ApplyTo(p *model.Page) {
	setTrimmed(&p.Title, r.Title)
	setTrimmed(&p.Slug, r.Slug)
	set(&p.Content, r.Content)
	setTrimmed(&p.Excerpt, r.Excerpt)
	setTrimmed(&p.FeaturedImage, r.FeaturedImage)
	setStatus(&p.Status, r.Status)
	if r.PublishedAt != nil {
		p.PublishedAt = r.PublishedAt
	}
	setTrimmed(&p.MetaTitle, r.MetaTitle)
	setTrimmed(&p.MetaDescription, r.MetaDescription)
}

func setStatus(dst *string, src *string) {
	if src != nil {
		*dst = strings.ToLower(strings.TrimSpace(*src))
	}
}

type TestimonialRequest struct {
	Name        *string `json:"name" example:"John Smith"`
	Designation *string `json:"designation" example:"Patient"`
	Content     *string `json:"content" example:"Excellent care."`
	Image       *string `json:"image"`
	Rating      *int    `json:"rating" example:"5"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

func (r TestimonialRequest) ApplyTo(t *model.Testimonial) {
	setName(&t.Name, r.Name)
	setTrimmed(&t.Designation, r.Designation)
	setTrimmed(&t.Content, r.Content)
	setTrimmed(&t.Image, r.Image)
	set(&t.Rating, r.Rating)
	set(&t.IsActive, r.IsActive)
	set(&t.Order, r.Order)
}

// TaxonomyRequest is the body for tags and categories.
type TaxonomyRequest struct {
	Name        *string `json:"name" example:"Heart Health"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

func (r TaxonomyRequest) applyNamed(name, slug, description *string) {
	setName(name, r.Name)
	setTrimmed(slug, r.Slug)
	setTrimmed(description, r.Description)
}

type TagRequest struct{ TaxonomyRequest }

func (r TagRequest) ApplyTo(t *model.Tag) {
	r.applyNamed(&t.Name, &t.Slug, &t.Description)
}

type CategoryRequest struct{ TaxonomyRequest }

func (r CategoryRequest) ApplyTo(c *model.Category) {
	r.applyNamed(&c.Name, &c.Slug, &c.Description)
}

type DoctorCategoryRequest struct {
	TaxonomyRequest
	Icon     *string `json:"icon" example:"heart"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

func (r DoctorCategoryRequest) ApplyTo(c *model.DoctorCategory) {
	r.applyNamed(&c.Name, &c.Slug, &c.Description)
	setTrimmed(&c.Icon, r.Icon)
	set(&c.Order, r.Order)
	set(&c.IsActive, r.IsActive)
}

// UserRequest never copies the password; it is hashed by the users resource.
type UserRequest struct {
	Username *string `json:"username" example:"editor1"`
	Email    *string `json:"email" example:"editor@clinic.example.com"`
	Password *string `json:"password" example:"s3cret-pass"`
	Name     *string `json:"name"`
	Role     *string `json:"role" example:"editor"`
	IsActive *bool   `json:"isActive"`
}

func (r UserRequest) ApplyTo(u *model.User) {
	setTrimmed(&u.Username, r.Username)
	if r.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	setName(&u.Name, r.Name)
	setStatus(&u.Role, r.Role)
	set(&u.IsActive, r.IsActive)
}

// MediaRequest edits the descriptive fields of an uploaded object.
type MediaRequest struct {
	Alt          *string `json:"alt" example:"Clinic entrance"`
	OriginalName *string `json:"originalName"`
}

func (r MediaRequest) ApplyTo(m *model.Media) {
	setTrimmed(&m.Alt, r.Alt)
	setTrimmed(&m.OriginalName, r.OriginalName)
}
