package endpoint

import (
	"fmt"
	"strings"

	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Applier copies the fields present in a decoded request body onto a document.
// Absent fields leave the document untouched.
type Applier[PD any] interface {
	ApplyTo(doc PD)
}

// Resource serves list/get/create/update/delete for one collection.
type Resource[D any, PD interface {
	*D
	model.Document
}, R Applier[PD]] struct {
	// Name and Plural are the display names used in response messages.
	Name   string
	Plural string
	// New returns a document carrying the collection defaults.
	New func() PD
	// Order is applied to List, first clause first.
	Order []string
	// ReferencedBy, when set, returns a query selecting rows that keep doc alive.
	ReferencedBy func(db *gorm.DB, doc PD) *gorm.DB
	// Prepare runs after the request is applied and before validation.
	Prepare func(req R, doc PD) error
	// AfterSave and AfterDelete run once the write has been committed.
	AfterSave   func(c *gin.Context, req R, doc PD, created bool)
	AfterDelete func(c *gin.Context, doc PD)
}

func (r *Resource[D, PD, R]) zero() PD {
	return PD(new(D))
}

// List returns every document of the collection in its fixed order. There is no pagination.
func (r *Resource[D, PD, R]) List(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	q := db.Model(r.zero())
	for _, o := range r.Order {
		q = q.Order(o)
	}
	docs := []D{}
	if err := q.Find(&docs).Error; err != nil {
		respondError(c, "Failed to list "+strings.ToLower(r.Plural), err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  r.Plural + " retrieved",
		Data: docs,
	})
}

func (r *Resource[D, PD, R]) Get(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	doc, err := r.load(c, db)
	if err != nil {
		respondError(c, "Failed to retrieve "+strings.ToLower(r.Name), err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  r.Name + " retrieved",
		Data: doc,
	})
}

func (r *Resource[D, PD, R]) Create(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	var req R
	if err := bindJSON(c, &req); err != nil {
		respondError(c, "", err)
		return
	}
	doc := r.New()
	if err := r.apply(req, doc); err != nil {
		respondError(c, "Failed to create "+strings.ToLower(r.Name), err)
		return
	}
	if err := r.save(db, doc, ""); err != nil {
		respondError(c, "Failed to create "+strings.ToLower(r.Name), err)
		return
	}
	if r.AfterSave != nil {
		r.AfterSave(c, req, doc, true)
	}
	util.CallSuccessCreated(c, util.APISuccessParams{
		Msg:  r.Name + " created",
		Data: doc,
	})
}

func (r *Resource[D, PD, R]) Update(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	doc, err := r.load(c, db)
	if err != nil {
		respondError(c, "Failed to retrieve "+strings.ToLower(r.Name), err)
		return
	}
	var req R
	if err := bindJSON(c, &req); err != nil {
		respondError(c, "", err)
		return
	}
	if err := r.apply(req, doc); err != nil {
		respondError(c, "Failed to update "+strings.ToLower(r.Name), err)
		return
	}
	if err := r.save(db, doc, doc.DocumentID()); err != nil {
		respondError(c, "Failed to update "+strings.ToLower(r.Name), err)
		return
	}
	if r.AfterSave != nil {
		r.AfterSave(c, req, doc, false)
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  r.Name + " updated",
		Data: doc,
	})
}

func (r *Resource[D, PD, R]) Delete(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	doc, err := r.load(c, db)
	if err != nil {
		respondError(c, "Failed to retrieve "+strings.ToLower(r.Name), err)
		return
	}
	if err := r.remove(db, doc); err != nil {
		respondError(c, "Failed to delete "+strings.ToLower(r.Name), err)
		return
	}
	if r.AfterDelete != nil {
		r.AfterDelete(c, doc)
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  r.Name + " deleted",
		Data: gin.H{"_id": doc.DocumentID()},
	})
}

// load fetches the document named by the :id parameter.
func (r *Resource[D, PD, R]) load(c *gin.Context, db *gorm.DB) (PD, error) {
	id, err := idParam(c)
	if err != nil {
		return nil, err
	}
	doc := r.zero()
	if err := db.Where("id = ?", id).Take(doc).Error; err != nil {
		return nil, storeError(err)
	}
	return doc, nil
}

func (r *Resource[D, PD, R]) apply(req R, doc PD) error {
	req.ApplyTo(doc)
	if r.Prepare != nil {
		return r.Prepare(req, doc)
	}
	return nil
}

// save normalizes, validates and writes doc. selfID is empty on create.
func (r *Resource[D, PD, R]) save(db *gorm.DB, doc PD, selfID string) error {
	doc.Normalize()
	if err := doc.Validate(); err != nil {
		return validationError(err)
	}
	if err := r.checkUnique(db, doc, selfID); err != nil {
		return err
	}
	if selfID == "" {
		return storeError(db.Create(doc).Error)
	}
	return storeError(db.Save(doc).Error)
}

// checkUnique reports a friendly conflict before the unique index would.
func (r *Resource[D, PD, R]) checkUnique(db *gorm.DB, doc PD, selfID string) error {
	u, ok := model.Document(doc).(model.Uniquer)
	if !ok {
		return nil
	}
	for _, f := range u.UniqueFields() {
		var count int64
		q := db.Model(r.zero()).Where(f.Column+" = ?", f.Value)
		if selfID != "" {
			q = q.Where("id <> ?", selfID)
		}
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %s %q is already taken", ErrConflict, f.Column, f.Value)
		}
	}
	return nil
}

// remove deletes doc in a single statement that also checks for dependents.
func (r *Resource[D, PD, R]) remove(db *gorm.DB, doc PD) error {
	id := doc.DocumentID()
	q := db.Where("id = ?", id)
	if r.ReferencedBy != nil {
		q = q.Where("NOT EXISTS (?)", r.ReferencedBy(db.Session(&gorm.Session{NewDB: true}), doc))
	}
	res := q.Delete(r.zero())
	if res.Error != nil {
		return storeError(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var count int64
	if err := db.Model(r.zero()).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s %s", ErrReferentialConflict, r.Name, id)
	}
	return ErrNotFound
}

// referencedByDoctors selects doctors whose category equals name.
func referencedByDoctors(db *gorm.DB, name string) *gorm.DB {
	return db.Model(&model.Doctor{}).Select("1").Where("category = ?", name)
}
