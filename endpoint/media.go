package endpoint

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/ariebrainware/clinic-cms/middleware"
	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/storage"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var errStorageDisabled = errors.New("object storage is not configured")

// MediaFailure names a file that could not be stored.
type MediaFailure struct {
	Name  string `json:"name" example:"scan.png"`
	Error string `json:"error" example:"upload failed"`
}

type MediaUploadResponse struct {
	Uploaded []model.Media  `json:"uploaded"`
	Failed   []MediaFailure `json:"failed"`
}

type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Filename  string `json:"filename" example:"1700000000000-photo.png"`
	Folder    string `json:"folder" example:"uploads"`
}

func getStoreOrRespond(c *gin.Context) (storage.Store, bool) {
	store := middleware.GetObjectStore(c)
	if store == nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Media uploads are not available", Err: errStorageDisabled})
		return nil, false
	}
	return store, true
}

func mediaFolder(raw string) string {
	folder := strings.Trim(strings.TrimSpace(raw), "/")
	if folder == "" {
		return model.DefaultMediaFolder
	}
	return folder
}

func contentTypeOf(name, declared string) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// UploadMedia godoc
// @Summary      Upload media
// @Description  Upload one or more files. A failed file does not abort the batch; the response lists both outcomes.
// @Tags         Media
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        files formData file true "Files to upload"
// @Param        folder formData string false "Target folder" default(uploads)
// @Param        alt formData string false "Alternative text"
// @Success      201 {object} util.APIResponse{data=MediaUploadResponse} "Media uploaded"
// @Failure      400 {object} util.APIResponse "No files"
// @Failure      500 {object} util.APIResponse "Every file failed"
// @Router       /media [post]
func UploadMedia(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	store, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, "", validationError(err))
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		respondError(c, "", validationError(errors.New("no files provided")))
		return
	}

	folder := mediaFolder(c.PostForm("folder"))
	alt := strings.TrimSpace(c.PostForm("alt"))
	uploader, _ := middleware.GetUserID(c)

	result := MediaUploadResponse{Uploaded: []model.Media{}, Failed: []MediaFailure{}}
	var errs []error
	for _, fh := range files {
		m, err := uploadOne(c.Request.Context(), db, store, fh, mediaMeta{folder: folder, alt: alt, uploader: uploader})
		if err != nil {
			util.Log().WithError(err).WithField("file", fh.Filename).Warn("Media upload failed")
			result.Failed = append(result.Failed, MediaFailure{Name: fh.Filename, Error: "upload failed"})
			errs = append(errs, err)
			continue
		}
		result.Uploaded = append(result.Uploaded, *m)
	}

	if len(result.Uploaded) == 0 {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to upload media", Err: errors.Join(errs...)})
		return
	}
	util.CallSuccessCreated(c, util.APISuccessParams{
		Msg:  fmt.Sprintf("%d of %d files uploaded", len(result.Uploaded), len(files)),
		Data: result,
	})
}

type mediaMeta struct {
	folder   string
	alt      string
	uploader string
}

// uploadOne stores fh and records it. The object is removed again if the record cannot be written.
func uploadOne(ctx context.Context, db *gorm.DB, store storage.Store, fh *multipart.FileHeader, meta mediaMeta) (*model.Media, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	name := storage.ObjectName(fh.Filename, time.Now())
	contentType := contentTypeOf(fh.Filename, fh.Header.Get("Content-Type"))
	url, err := store.Upload(ctx, storage.UploadInput{
		Body:        f,
		Name:        name,
		Folder:      meta.folder,
		ContentType: contentType,
		Size:        fh.Size,
	})
	if err != nil {
		return nil, err
	}

	m := model.NewMedia()
	m.Filename = name
	m.OriginalName = fh.Filename
	m.URL = url
	m.MimeType = contentType
	m.Size = fh.Size
	m.Folder = meta.folder
	m.Alt = meta.alt
	m.UploadedBy = meta.uploader
	m.Normalize()
	err = m.Validate()
	if err == nil {
		err = db.Create(m).Error
	}
	if err != nil {
		if delErr := store.Delete(ctx, name, meta.folder); delErr != nil {
			util.Log().WithError(delErr).WithField("key", name).Warn("Failed to remove orphaned object")
		}
		return nil, fmt.Errorf("record %s: %w", fh.Filename, err)
	}
	return m, nil
}

// afterMediaDelete removes the stored object. Failures are logged; the record is already gone.
func afterMediaDelete(c *gin.Context, m *model.Media) {
	store := middleware.GetObjectStore(c)
	if store == nil {
		util.Log().WithField("key", m.Filename).Warn("Object storage not configured, object left in bucket")
		return
	}
	if err := store.Delete(c.Request.Context(), m.Filename, m.Folder); err != nil {
		util.Log().WithError(err).WithFields(logrus.Fields{
			"key":    m.Filename,
			"folder": m.Folder,
		}).Warn("Failed to delete media object")
	}
}

// MediaUploadURL godoc
// @Summary      Pre-signed upload URL
// @Description  Returns a PUT URL valid for one hour and the public URL the object will have
// @Tags         Media
// @Produce      json
// @Security     BearerAuth
// @Param        name query string true "Original file name"
// @Param        folder query string false "Target folder" default(uploads)
// @Param        contentType query string false "Content type of the upload"
// @Success      200 {object} util.APIResponse{data=UploadURLResponse} "Upload URL created"
// @Failure      400 {object} util.APIResponse "Missing name"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /media/upload-url [get]
func MediaUploadURL(c *gin.Context) {
	store, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	original := strings.TrimSpace(c.Query("name"))
	if original == "" {
		respondError(c, "", validationError(errors.New("name is required")))
		return
	}
	folder := mediaFolder(c.Query("folder"))
	name := storage.ObjectName(original, time.Now())

	url, err := store.SignUploadURL(c.Request.Context(), name, folder, contentTypeOf(original, c.Query("contentType")))
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to sign upload URL", Err: err})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Upload URL created",
		Data: UploadURLResponse{
			UploadURL: url,
			PublicURL: store.PublicURL(name, folder),
			Filename:  name,
			Folder:    folder,
		},
	})
}
