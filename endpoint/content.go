package endpoint

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ariebrainware/clinic-cms/analytics"
	"github.com/ariebrainware/clinic-cms/middleware"
	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/gin-gonic/gin"
)

var errAnalyticsDisabled = errors.New("analytics recorder is not configured")

// publishedBySlug answers with the published document whose slug matches :slug.
func publishedBySlug[D any](c *gin.Context, name string) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	slug := model.Slugify(c.Param("slug"))
	if slug == "" {
		respondError(c, "", validationError(errors.New("slug is required")))
		return
	}
	var doc D
	err := db.Where("slug = ? AND status = ?", slug, model.StatusPublished).Take(&doc).Error
	if err != nil {
		respondError(c, "Failed to retrieve "+strings.ToLower(name), storeError(err))
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: name + " retrieved", Data: doc})
}

// GetPostBySlug godoc
// @Summary      Get a published post by slug
// @Tags         Post
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200 {object} util.APIResponse{data=model.Post} "Post retrieved"
// @Failure      404 {object} util.APIResponse "Not found or not published"
// @Router       /posts/slug/{slug} [get]
func GetPostBySlug(c *gin.Context) {
	publishedBySlug[model.Post](c, "Post")
}

// GetPageBySlug godoc
// @Summary      Get a published page by slug
// @Tags         Page
// @Produce      json
// @Param        slug path string true "Page slug"
// @Success      200 {object} util.APIResponse{data=model.Page} "Page retrieved"
// @Failure      404 {object} util.APIResponse "Not found or not published"
// @Router       /pages/slug/{slug} [get]
func GetPageBySlug(c *gin.Context) {
	publishedBySlug[model.Page](c, "Page")
}

type PostViewsResponse struct {
	Slug  string `json:"slug" example:"hello-world"`
	Views int64  `json:"views" example:"42"`
}

func getRecorderOrRespond(c *gin.Context) (analytics.Recorder, bool) {
	rec := middleware.GetRecorder(c)
	if rec == nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Analytics not available", Err: errAnalyticsDisabled})
		return nil, false
	}
	return rec, true
}

// GetPostViews godoc
// @Summary      Post view counter
// @Tags         Analytics
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200 {object} util.APIResponse{data=PostViewsResponse} "Views retrieved"
// @Router       /analytics/views/{slug} [get]
func GetPostViews(c *gin.Context) {
	rec, ok := getRecorderOrRespond(c)
	if !ok {
		return
	}
	slug := model.Slugify(c.Param("slug"))
	views, err := rec.Views(c.Request.Context(), slug)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to read views", Err: err})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Views retrieved",
		Data: PostViewsResponse{Slug: slug, Views: views},
	})
}

// ListAnalytics godoc
// @Summary      Recent page views
// @Description  Most recent analytics records first
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum records" default(100)
// @Success      200 {object} util.APIResponse{data=[]model.AnalyticsRecord} "Records retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      403 {object} util.APIResponse "Admin only"
// @Router       /analytics [get]
func ListAnalytics(c *gin.Context) {
	rec, ok := getRecorderOrRespond(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(analytics.DefaultRecentLimit)))
	records, err := rec.Recent(c.Request.Context(), limit)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list analytics", Err: err})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Records retrieved", Data: records})
}

// Health godoc
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200 {object} util.APIResponse "Healthy"
// @Failure      500 {object} util.APIResponse "Database unreachable"
// @Router       /health [get]
func Health(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database unreachable", Err: err})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "OK", Data: gin.H{"status": "ok"}})
}
