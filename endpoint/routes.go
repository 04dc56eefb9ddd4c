package endpoint

import (
	"time"

	"github.com/ariebrainware/clinic-cms/middleware"
	"github.com/ariebrainware/clinic-cms/model"
	"github.com/gin-gonic/gin"
)

// RouteOptions configures RegisterRoutes.
type RouteOptions struct {
	// EnforceAuth turns RequireAuth into a real guard; false lets every request through.
	EnforceAuth   bool
	SecureCookies bool
	LoginLimit    middleware.RateLimitConfig
}

// DefaultLoginLimit allows 5 login attempts per IP per 15 minutes.
var DefaultLoginLimit = middleware.RateLimitConfig{Limit: 5, Window: 15 * time.Minute}

type crudHandlers interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// registerResource mounts the five CRUD routes. Reads are public unless the
// group itself is guarded; writes always pass through guard.
func registerResource(g *gin.RouterGroup, res crudHandlers, guard ...gin.HandlerFunc) {
	g.GET("", res.List)
	g.GET("/:id", res.Get)
	g.POST("", chain(guard, res.Create)...)
	g.PUT("/:id", chain(guard, res.Update)...)
	g.DELETE("/:id", chain(guard, res.Delete)...)
}

func chain(guard []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	handlers := make([]gin.HandlerFunc, 0, len(guard)+1)
	handlers = append(handlers, guard...)
	return append(handlers, h)
}

// RegisterRoutes mounts the whole /api surface on r.
func RegisterRoutes(r gin.IRouter, opts RouteOptions) {
	requireAuth := middleware.RequireAuth(opts.EnforceAuth)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	auth := &Auth{SecureCookies: opts.SecureCookies}

	api := r.Group("/api")
	api.GET("/health", Health)

	authGroup := api.Group("/auth")
	authGroup.POST("/login", middleware.RateLimiter(opts.LoginLimit), auth.Login)
	authGroup.POST("/logout", requireAuth, auth.Logout)
	authGroup.GET("/me", requireAuth, auth.Me)

	registerResource(api.Group("/doctors"), Doctors, requireAuth)

	posts := api.Group("/posts")
	posts.GET("/slug/:slug", GetPostBySlug)
	registerResource(posts, Posts, requireAuth)

	pages := api.Group("/pages")
	pages.GET("/slug/:slug", GetPageBySlug)
	registerResource(pages, Pages, requireAuth)

	registerResource(api.Group("/testimonials"), Testimonials, requireAuth)
	registerResource(api.Group("/tags"), Tags, requireAuth)
	registerResource(api.Group("/categories"), Categories, requireAuth)
	registerResource(api.Group("/doctor-categories"), DoctorCategories, requireAuth)
	registerResource(api.Group("/users", requireAuth, adminOnly), Users)

	media := api.Group("/media")
	media.GET("", MediaLibrary.List)
	media.GET("/upload-url", requireAuth, MediaUploadURL)
	media.GET("/:id", MediaLibrary.Get)
	media.POST("", requireAuth, UploadMedia)
	media.PUT("/:id", requireAuth, MediaLibrary.Update)
	media.DELETE("/:id", requireAuth, MediaLibrary.Delete)

	analyticsGroup := api.Group("/analytics")
	analyticsGroup.GET("", requireAuth, adminOnly, ListAnalytics)
	analyticsGroup.GET("/views/:slug", GetPostViews)
}
