package middleware

import (
	"net/http"

	"github.com/ariebrainware/clinic-cms/analytics"
	"github.com/ariebrainware/clinic-cms/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

const (
	dbKey       = "db"
	storeKey    = "objectStore"
	recorderKey = "analyticsRecorder"
)

// CORSMiddleware answers preflight requests and sets CORS headers for the
// allowed origins. An empty list allows every origin.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"X-Requested-With", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	if len(origins) == 0 {
		// Credentials cannot be combined with a wildcard origin, so reflect it.
		opts.AllowOriginFunc = func(string) bool { return true }
	}
	handler := cors.New(opts)

	return func(c *gin.Context) {
		handler.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// DatabaseMiddleware injects the database connection into the context.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbKey, db)
		c.Next()
	}
}

// GetDB returns the database connection set by DatabaseMiddleware, or nil.
func GetDB(c *gin.Context) *gorm.DB {
	v, ok := c.Get(dbKey)
	if !ok {
		return nil
	}
	db, _ := v.(*gorm.DB)
	return db
}

// ObjectStoreMiddleware injects the media object store. A nil store means
// uploads are not configured.
func ObjectStoreMiddleware(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store != nil {
			c.Set(storeKey, store)
		}
		c.Next()
	}
}

func GetObjectStore(c *gin.Context) storage.Store {
	v, ok := c.Get(storeKey)
	if !ok {
		return nil
	}
	s, _ := v.(storage.Store)
	return s
}

// RecorderMiddleware injects the analytics recorder used by the read endpoints.
func RecorderMiddleware(rec analytics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rec != nil {
			c.Set(recorderKey, rec)
		}
		c.Next()
	}
}

func GetRecorder(c *gin.Context) analytics.Recorder {
	v, ok := c.Get(recorderKey)
	if !ok {
		return nil
	}
	r, _ := v.(analytics.Recorder)
	return r
}
