package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func issueTestToken(t *testing.T, userID string) string {
	t.Helper()
	util.SetJWTSecret("test-secret")
	token, err := util.IssueToken(userID)
	require.NoError(t, err)
	return token
}

type authRequest struct {
	db       *gorm.DB
	enforce  bool
	roles    []string
	token    string
	asCookie bool
	handler  gin.HandlerFunc
}

func runAuthRequest(req authRequest) *httptest.ResponseRecorder {
	setGinTestMode()
	r := gin.New()
	if req.db != nil {
		r.Use(DatabaseMiddleware(req.db))
	}
	handlers := []gin.HandlerFunc{RequireAuth(req.enforce)}
	if len(req.roles) > 0 {
		handlers = append(handlers, RequireRole(req.roles...))
	}
	if req.handler == nil {
		req.handler = func(c *gin.Context) { c.Status(http.StatusOK) }
	}
	handlers = append(handlers, req.handler)
	r.GET("/test", handlers...)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodGet, "/test", nil)
	if req.token != "" {
		if req.asCookie {
			httpReq.AddCookie(&http.Cookie{Name: TokenCookie, Value: req.token})
		} else {
			httpReq.Header.Set("Authorization", "Bearer "+req.token)
		}
	}
	r.ServeHTTP(w, httpReq)
	return w
}

func TestRequireAuth_MissingToken(t *testing.T) {
	w := runAuthRequest(authRequest{db: newInMemoryDB(t), enforce: true})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	w := runAuthRequest(authRequest{db: newInMemoryDB(t), enforce: true, token: "not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_BearerTokenAttachesUser(t *testing.T) {
	db := newInMemoryDB(t)
	user := createTestUser(t, db, model.RoleEditor)

	var gotID string
	var gotUser *model.User
	w := runAuthRequest(authRequest{
		db:      db,
		enforce: true,
		token:   issueTestToken(t, user.ID),
		handler: func(c *gin.Context) {
			gotID, _ = GetUserID(c)
			gotUser, _ = GetCurrentUser(c)
			c.Status(http.StatusOK)
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID, gotID)
	require.NotNil(t, gotUser)
	assert.Equal(t, user.Email, gotUser.Email)
}

func TestRequireAuth_CookieToken(t *testing.T) {
	db := newInMemoryDB(t)
	user := createTestUser(t, db, model.RoleEditor)

	var gotToken string
	token := issueTestToken(t, user.ID)
	w := runAuthRequest(authRequest{
		db:       db,
		enforce:  true,
		token:    token,
		asCookie: true,
		handler: func(c *gin.Context) {
			gotToken = GetSessionToken(c)
			c.Status(http.StatusOK)
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, token, gotToken)
}

func TestRequireAuth_InactiveUser(t *testing.T) {
	db := newInMemoryDB(t)
	user := createTestUser(t, db, model.RoleEditor)
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	w := runAuthRequest(authRequest{db: db, enforce: true, token: issueTestToken(t, user.ID)})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_RevokedSession(t *testing.T) {
	db := newInMemoryDB(t)
	user := createTestUser(t, db, model.RoleEditor)
	token := issueTestToken(t, user.ID)

	mock := setupRedisMock(t)
	mock.ExpectExists("session:" + token).SetVal(0)

	w := runAuthRequest(authRequest{db: db, enforce: true, token: token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAuth_LiveSession(t *testing.T) {
	db := newInMemoryDB(t)
	user := createTestUser(t, db, model.RoleEditor)
	token := issueTestToken(t, user.ID)

	mock := setupRedisMock(t)
	mock.ExpectExists("session:" + token).SetVal(1)

	w := runAuthRequest(authRequest{db: db, enforce: true, token: token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAuth_MissingDatabase(t *testing.T) {
	user := model.User{Base: model.Base{ID: "8f14e45f-ceea-4a6b-9c1f-5e0f3b3b8e10"}}
	w := runAuthRequest(authRequest{enforce: true, token: issueTestToken(t, user.ID)})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAuth_NotEnforcedPassesThrough(t *testing.T) {
	w := runAuthRequest(authRequest{db: newInMemoryDB(t), enforce: false})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_NotEnforcedPassesThrough(t *testing.T) {
	w := runAuthRequest(authRequest{db: newInMemoryDB(t), enforce: false, roles: []string{model.RoleAdmin}})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_EditorForbidden(t *testing.T) {
	db := newInMemoryDB(t)
	util.InitUserEmailCache(10)
	user := createTestUser(t, db, model.RoleEditor)

	w := runAuthRequest(authRequest{
		db:      db,
		enforce: true,
		roles:   []string{model.RoleAdmin},
		token:   issueTestToken(t, user.ID),
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	db := newInMemoryDB(t)
	user := createTestUser(t, db, model.RoleAdmin)

	w := runAuthRequest(authRequest{
		db:      db,
		enforce: true,
		roles:   []string{model.RoleAdmin},
		token:   issueTestToken(t, user.ID),
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_WithoutAuth(t *testing.T) {
	setGinTestMode()
	r := gin.New()
	r.GET("/test", RequireRole(model.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExtractToken_CookieWins(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: TokenCookie, Value: "from-cookie"})
	c.Request.Header.Set("Authorization", "Bearer from-header")

	assert.Equal(t, "from-cookie", ExtractToken(c))
}

func TestExtractToken_NonBearerHeaderIgnored(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Basic Zm9vOmJhcg==")

	assert.Empty(t, ExtractToken(c))
}
