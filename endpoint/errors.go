package endpoint

import (
	"errors"
	"fmt"

	"github.com/ariebrainware/clinic-cms/middleware"
	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrInvalidID           = errors.New("invalid id")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrReferentialConflict = errors.New("referenced by other documents")
	ErrUnauthorized        = errors.New("invalid credentials")
)

// storeError classifies a gorm error. Unknown errors pass through as internal.
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicate value", ErrConflict)
	default:
		return err
	}
}

// respondError writes the envelope for err. msg is used for internal errors,
// which are logged and hidden from the caller.
func respondError(c *gin.Context, msg string, err error) {
	params := util.APIErrorParams{Msg: msg, Err: err}
	switch {
	case errors.Is(err, ErrValidation):
		params.Msg = "Invalid request"
		util.CallUserError(c, params)
	case errors.Is(err, ErrInvalidID):
		params.Msg = "Invalid id"
		util.CallUserError(c, params)
	case errors.Is(err, ErrNotFound):
		params.Msg = "Document not found"
		util.CallErrorNotFound(c, params)
	case errors.Is(err, ErrReferentialConflict):
		params.Msg = "Document is still in use"
		util.CallConflict(c, params)
	case errors.Is(err, ErrConflict):
		params.Msg = "Document already exists"
		util.CallConflict(c, params)
	case errors.Is(err, ErrUnauthorized):
		params.Msg = "Invalid credentials"
		util.CallUserNotAuthorized(c, params)
	default:
		util.CallServerError(c, params)
	}
}

func validationError(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// getDBOrRespond returns the request's database or answers 500.
func getDBOrRespond(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database connection not available", Err: errors.New("db is nil")})
		return nil, false
	}
	return db.WithContext(c.Request.Context()), true
}

// idParam returns the :id path parameter when it is a well-formed document id.
func idParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if !model.ValidID(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return id, nil
}

func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return validationError(err)
	}
	return nil
}
