package endpoint

import (
	"net/http"
	"testing"

	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_AdminOnly(t *testing.T) {
	s := setupTestServer(t)
	editor := s.tokenFor(t, "editor", model.RoleEditor)

	w, resp := s.do(t, http.MethodGet, "/api/users", nil, editor)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, resp.Success)

	w, _ = s.do(t, http.MethodGet, "/api/users", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUsers_CreateHashesPassword(t *testing.T) {
	s := setupTestServer(t)
	admin := s.tokenFor(t, "admin", model.RoleAdmin)

	w, resp := s.do(t, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "writer",
		"email":    "Writer@Clinic.Example.com",
		"password": "correct horse",
		"name":     "  Jane   Writer ",
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := parseDataToMap(t, resp.Data)
	_, hasPassword := created["password"]
	assert.False(t, hasPassword)
	assert.NotContains(t, w.Body.String(), "correct horse")
	assert.Equal(t, "writer@clinic.example.com", created["email"])
	assert.Equal(t, "Jane Writer", created["name"])
	assert.Equal(t, model.RoleEditor, created["role"])
	assert.Equal(t, true, created["isActive"])

	var stored model.User
	require.NoError(t, s.db.Where("username = ?", "writer").Take(&stored).Error)
	assert.NotEqual(t, "correct horse", stored.Password)
	assert.True(t, util.VerifyPassword("correct horse", stored.Password))
}

func TestUsers_CreateValidation(t *testing.T) {
	s := setupTestServer(t)
	admin := s.tokenFor(t, "admin", model.RoleAdmin)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing password", map[string]interface{}{"username": "nopass", "email": "nopass@example.com"}},
		{"bad email", map[string]interface{}{"username": "bademail", "email": "not-an-email", "password": "pw"}},
		{"unknown role", map[string]interface{}{"username": "root", "email": "root@example.com", "password": "pw", "role": "superuser"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := s.do(t, http.MethodPost, "/api/users", tt.body, admin)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUsers_DuplicateUsername(t *testing.T) {
	s := setupTestServer(t)
	admin := s.tokenFor(t, "admin", model.RoleAdmin)

	w, resp := s.do(t, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "admin",
		"email":    "other@example.com",
		"password": "pw",
	}, admin)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, resp.Error, "username")

	var count int64
	require.NoError(t, s.db.Model(&model.User{}).Where("username = ?", "admin").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUsers_UpdateKeepsPasswordUnlessSent(t *testing.T) {
	s := setupTestServer(t)
	admin := s.tokenFor(t, "admin", model.RoleAdmin)
	target := s.createUser(t, "target", model.RoleEditor, "")

	w, resp := s.do(t, http.MethodPut, "/api/users/"+target.ID, map[string]interface{}{"role": "ADMIN"}, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, model.RoleAdmin, parseDataToMap(t, resp.Data)["role"])

	var stored model.User
	require.NoError(t, s.db.Where("id = ?", target.ID).Take(&stored).Error)
	assert.Equal(t, target.Password, stored.Password)

	w, _ = s.do(t, http.MethodPut, "/api/users/"+target.ID, map[string]interface{}{"password": "new-secret"}, admin)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, s.db.Where("id = ?", target.ID).Take(&stored).Error)
	assert.True(t, util.VerifyPassword("new-secret", stored.Password))
}

func TestUsers_DeactivatedUserLosesAccess(t *testing.T) {
	s := setupTestServer(t)
	admin := s.tokenFor(t, "admin", model.RoleAdmin)
	editor := s.tokenFor(t, "editor", model.RoleEditor)

	w, _ := s.do(t, http.MethodGet, "/api/auth/me", nil, editor)
	require.Equal(t, http.StatusOK, w.Code)

	var u model.User
	require.NoError(t, s.db.Where("username = ?", "editor").Take(&u).Error)
	w, _ = s.do(t, http.MethodPut, "/api/users/"+u.ID, map[string]interface{}{"isActive": false}, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/auth/me", nil, editor)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUsers_Delete(t *testing.T) {
	s := setupTestServer(t)
	admin := s.tokenFor(t, "admin", model.RoleAdmin)
	target := s.createUser(t, "target", model.RoleEditor, "")

	w, _ := s.do(t, http.MethodDelete, "/api/users/"+target.ID, nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/users/"+target.ID, nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
