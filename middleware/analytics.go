package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/ariebrainware/clinic-cms/analytics"
	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VisitorCookie identifies a browsing session across requests.
const VisitorCookie = "visitor_session"

const visitorCookieTTL = 30 * 24 * time.Hour

// AnalyticsConfig selects which requests are observed.
type AnalyticsConfig struct {
	// Paths is the allow-list of path prefixes that are recorded.
	Paths []string
	// PostPrefix marks blog-post reads; the remainder of the path is the slug.
	PostPrefix string
	Secure     bool
}

// Analytics records a page view for GET requests on the allow-listed paths
// and bumps the per-post counter for successful blog reads, keyed by the
// normalized slug. Recording never fails the request.
func Analytics(rec analytics.Recorder, cfg AnalyticsConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if rec == nil || c.Request.Method != http.MethodGet || !util.HasAnyPrefix(path, cfg.Paths) {
			c.Next()
			return
		}

		sessionID, isNew := visitorSession(c, cfg.Secure)
		loc := util.GetIPLocation(c.ClientIP())
		ctx := c.Request.Context()

		record := model.AnalyticsRecord{
			Path:         path,
			Timestamp:    time.Now().UTC(),
			UserAgent:    c.Request.UserAgent(),
			Referrer:     c.Request.Referer(),
			SessionID:    sessionID,
			IsNewSession: isNew,
			Country:      loc.Country,
			City:         loc.City,
		}
		if err := rec.Record(ctx, record); err != nil {
			util.Log().WithError(err).WithField("path", path).Warn("Failed to record page view")
		}

		c.Next()

		// Only reads that served a post are counted, so unknown slugs add no rows.
		if c.Writer.Status() != http.StatusOK {
			return
		}
		if slug := postSlug(path, cfg.PostPrefix); slug != "" {
			if err := rec.IncrementView(ctx, slug); err != nil {
				util.Log().WithError(err).WithField("slug", slug).Warn("Failed to increment post views")
			}
		}
	}
}

// visitorSession returns the visitor id from the cookie, minting a new one
// when it is absent or malformed.
func visitorSession(c *gin.Context, secure bool) (string, bool) {
	if id, err := c.Cookie(VisitorCookie); err == nil && model.ValidID(id) {
		return id, false
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(VisitorCookie, id, int(visitorCookieTTL.Seconds()), "/", "", secure, true)
	return id, true
}

func postSlug(path, prefix string) string {
	if prefix == "" || !strings.HasPrefix(path, prefix) {
		return ""
	}
	raw := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if raw == "" || strings.Contains(raw, "/") {
		return ""
	}
	slug := model.Slugify(raw)
	if len(slug) > model.MaxSlugLength {
		return ""
	}
	return slug
}
