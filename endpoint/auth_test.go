package endpoint

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ariebrainware/clinic-cms/middleware"
	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookie(t *testing.T, header []string) string {
	t.Helper()
	for _, h := range header {
		if strings.HasPrefix(h, middleware.TokenCookie+"=") {
			return h
		}
	}
	return ""
}

func TestLogin_Success(t *testing.T) {
	s := setupTestServer(t)
	s.createUser(t, "alice", model.RoleEditor, "s3cret-pass")

	w, resp := s.do(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "alice",
		"password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Login successful", resp.Msg)

	cookie := sessionCookie(t, w.Header().Values("Set-Cookie"))
	require.NotEmpty(t, cookie)
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "SameSite=Strict")
	assert.NotContains(t, cookie, "Secure")

	data := parseDataToMap(t, resp.Data)
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.NotNil(t, user["lastLogin"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
}

func TestLogin_ByEmail(t *testing.T) {
	s := setupTestServer(t)
	s.createUser(t, "bob", model.RoleAdmin, "hunter22")

	w, _ := s.do(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "BOB@clinic.example.com",
		"password": "hunter22",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestLogin_Rejected(t *testing.T) {
	s := setupTestServer(t)
	s.createUser(t, "alice", model.RoleEditor, "s3cret-pass")
	inactive := s.createUser(t, "carol", model.RoleEditor, "s3cret-pass")
	require.NoError(t, s.db.Model(&inactive).Update("is_active", false).Error)

	tests := []struct {
		name string
		body map[string]interface{}
		code int
	}{
		{"wrong password", map[string]interface{}{"username": "alice", "password": "nope"}, http.StatusUnauthorized},
		{"unknown user", map[string]interface{}{"username": "mallory", "password": "nope"}, http.StatusUnauthorized},
		{"inactive user", map[string]interface{}{"username": "carol", "password": "s3cret-pass"}, http.StatusUnauthorized},
		{"missing password", map[string]interface{}{"username": "alice"}, http.StatusBadRequest},
		{"missing identifier", map[string]interface{}{"password": "s3cret-pass"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := s.do(t, http.MethodPost, "/api/auth/login", tt.body, nil)
			assert.Equal(t, tt.code, w.Code)
			assert.False(t, resp.Success)
			assert.Empty(t, w.Header().Values("Set-Cookie"))
		})
	}
}

func TestLogin_RecordsSecurityEvents(t *testing.T) {
	s := setupTestServer(t)
	alice := s.createUser(t, "alice", model.RoleEditor, "s3cret-pass")
	util.SetSecurityLoggerDB(s.db)
	t.Cleanup(func() { util.SetSecurityLoggerDB(nil) })

	w, _ := s.do(t, http.MethodPost, "/api/auth/login", map[string]interface{}{"username": "alice", "password": "bad"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = s.do(t, http.MethodPost, "/api/auth/login", map[string]interface{}{"username": "alice", "password": "s3cret-pass"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var logs []model.SecurityLog
	require.NoError(t, s.db.Order("id ASC").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, string(util.EventLoginFailure), logs[0].EventType)
	assert.Equal(t, string(util.EventLoginSuccess), logs[1].EventType)
	assert.Equal(t, alice.ID, logs[1].UserID)
}

func TestMe_WithCookieAndLogout(t *testing.T) {
	s := setupTestServer(t)
	s.createUser(t, "alice", model.RoleEditor, "s3cret-pass")

	w, resp := s.do(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "alice",
		"password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.Equal(t, parseDataToMap(t, resp.Data)["token"], session.Value)

	w, body, err := performRequest(s.r, requestSpec{method: http.MethodGet, requestPath: "/api/auth/me", cookies: []*http.Cookie{session}})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", body["data"].(map[string]interface{})["username"])

	w, _, err = performRequest(s.r, requestSpec{method: http.MethodPost, requestPath: "/api/auth/logout", cookies: []*http.Cookie{session}})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, w.Code)
	cleared := sessionCookie(t, w.Header().Values("Set-Cookie"))
	assert.Contains(t, cleared, middleware.TokenCookie+"=;")
	assert.Contains(t, cleared, "Max-Age=0")
}

func TestLogout_RecordsEventForSessionUser(t *testing.T) {
	s := setupTestServer(t)
	token := s.tokenFor(t, "alice", model.RoleEditor)
	var alice model.User
	require.NoError(t, s.db.Where("username = ?", "alice").Take(&alice).Error)
	util.SetSecurityLoggerDB(s.db)
	t.Cleanup(func() { util.SetSecurityLoggerDB(nil) })

	w, _ := s.do(t, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var logs []model.SecurityLog
	require.NoError(t, s.db.Where("event_type = ?", string(util.EventLogout)).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, alice.ID, logs[0].UserID)
	assert.Equal(t, alice.Email, logs[0].Email)
}

func TestMe_Unauthenticated(t *testing.T) {
	s := setupTestServer(t)

	w, _ := s.do(t, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/auth/logout", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
