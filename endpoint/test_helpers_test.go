package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ariebrainware/clinic-cms/analytics"
	"github.com/ariebrainware/clinic-cms/middleware"
	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/storage"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResp struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

// fakeStore is an in-memory object store. Uploads whose original name
// contains "fail" are rejected.
type fakeStore struct {
	mu        sync.Mutex
	objects   map[string]string
	deleted   []string
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string]string{}}
}

func (f *fakeStore) Upload(_ context.Context, in storage.UploadInput) (string, error) {
	if strings.Contains(in.Name, "fail") {
		return "", errors.New("bucket rejected object")
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[in.Folder+"/"+in.Name] = string(body)
	return f.PublicURL(in.Name, in.Folder), nil
}

func (f *fakeStore) Delete(_ context.Context, name, folder string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, folder+"/"+name)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, folder+"/"+name)
	return nil
}

func (f *fakeStore) SignUploadURL(_ context.Context, name, folder, _ string) (string, error) {
	return "https://bucket.example.com/" + folder + "/" + name + "?X-Amz-Signature=abc", nil
}

func (f *fakeStore) PublicURL(name, folder string) string {
	return "https://cdn.example.com/" + folder + "/" + name
}

type testServer struct {
	r     *gin.Engine
	db    *gorm.DB
	store *fakeStore
}

// newTestDB opens a migrated in-memory database that lives as long as t.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb_endpoint_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.Models()...))
	return db
}

// setupTestServer builds the full router over a fresh in-memory database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	db := newTestDB(t)
	store := newFakeStore()
	rec := analytics.NewGormRecorder(db)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.ObjectStoreMiddleware(store))
	r.Use(middleware.RecorderMiddleware(rec))
	r.Use(middleware.Analytics(rec, middleware.AnalyticsConfig{
		Paths:      []string{"/api/posts", "/api/pages", "/api/doctors"},
		PostPrefix: "/api/posts/slug/",
	}))
	RegisterRoutes(r, RouteOptions{EnforceAuth: true})

	return &testServer{r: r, db: db, store: store}
}

// createUser stores a user directly. The password is hashed only when set,
// since bcrypt at cost 12 is slow.
func (s *testServer) createUser(t *testing.T, username, role, password string) model.User {
	t.Helper()
	u := model.NewUser()
	u.Username = username
	u.Email = username + "@clinic.example.com"
	u.Role = role
	u.Password = "not-a-bcrypt-digest"
	if password != "" {
		digest, err := util.HashPassword(password)
		require.NoError(t, err)
		u.Password = digest
	}
	require.NoError(t, s.db.Create(u).Error)
	return *u
}

// tokenFor creates a user with role and returns a bearer header for it.
func (s *testServer) tokenFor(t *testing.T, username, role string) map[string]string {
	t.Helper()
	u := s.createUser(t, username, role, "")
	token, err := util.IssueToken(u.ID)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, apiResp) {
	t.Helper()
	w, _, err := performRequest(s.r, requestSpec{method: method, requestPath: path, body: body, headers: headers})
	require.NoError(t, err)
	return w, parseAPIResp(t, w)
}

// parseAPIResp decodes a standard API response. It fails the test on decoding error.
func parseAPIResp(t *testing.T, rr *httptest.ResponseRecorder) apiResp {
	t.Helper()
	var resp apiResp
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v; body: %s", err, rr.Body.String())
	}
	return resp
}

// parseDataToMap unmarshals an API response Data field into a map.
func parseDataToMap(t *testing.T, raw json.RawMessage) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("parse data failed: %v", err)
	}
	return data
}

func parseDataToList(t *testing.T, raw json.RawMessage) []map[string]interface{} {
	t.Helper()
	var data []map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("parse data failed: %v", err)
	}
	return data
}
