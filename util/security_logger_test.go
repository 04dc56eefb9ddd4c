package util

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ariebrainware/clinic-cms/model"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestLogger swaps in a logger that captures output and returns a restore func.
func setupTestLogger() (*bytes.Buffer, func()) {
	buf := &bytes.Buffer{}
	original := Log()
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	SetLogger(l)
	return buf, func() { SetLogger(original) }
}

// assertLogContains checks if the log output contains all expected substrings
func assertLogContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, expectedSubstr := range expected {
		if !strings.Contains(output, expectedSubstr) {
			t.Errorf("Log output missing expected substring %q\nGot: %s", expectedSubstr, output)
		}
	}
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "removes newlines", input: "hello\nworld", expected: "hello world"},
		{name: "removes carriage returns", input: "hello\rworld", expected: "hello world"},
		{name: "removes tabs", input: "hello\tworld", expected: "hello world"},
		{name: "truncates long values", input: strings.Repeat("a", 250), expected: strings.Repeat("a", 200) + "..."},
		{name: "handles normal strings", input: "normal string", expected: "normal string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogValue(tt.input); got != tt.expected {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatLocation(t *testing.T) {
	cases := map[IPLocation]string{
		{City: "Jakarta", Country: "Indonesia"}: "Jakarta/Indonesia",
		{Country: "Indonesia"}:                  "Indonesia",
		{City: "Jakarta"}:                       "Jakarta",
		{}:                                      "",
	}
	for in, want := range cases {
		if got := formatLocation(in); got != want {
			t.Errorf("formatLocation(%+v) = %q, want %q", in, got, want)
		}
	}
}

func TestLogSecurityEventSanitization(t *testing.T) {
	buf, cleanup := setupTestLogger()
	defer cleanup()

	LogSecurityEvent(SecurityEvent{
		EventType: EventSuspiciousActivity,
		Email:     "attacker@example.com\nevent=LOGIN_SUCCESS",
		IP:        "203.0.113.9",
		Message:   "probe",
		Details:   map[string]interface{}{"path": "/api/users"},
	})

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected a single log line, got %q", out)
	}
	assertLogContains(t, out, []string{"event=SUSPICIOUS_ACTIVITY", "details_count=1", "component=security"})
}

func TestLoginLogging(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func()
		contains []string
	}{
		{
			name:     "LogLoginSuccess",
			logFunc:  func() { LogLoginSuccess("u-123", "user@example.com", "192.168.1.1", "Mozilla") },
			contains: []string{"event=LOGIN_SUCCESS", "user_id=u-123", "email=user@example.com", "User logged in successfully"},
		},
		{
			name:     "LogLoginFailure",
			logFunc:  func() { LogLoginFailure("user@example.com", "192.168.1.1", "Mozilla", "invalid password") },
			contains: []string{"event=LOGIN_FAILURE", "email=user@example.com", "Login failed: invalid password"},
		},
		{
			name:     "LogLogout",
			logFunc:  func() { LogLogout("u-456", "user@example.com", "192.168.1.2", "Chrome") },
			contains: []string{"event=LOGOUT", "user_id=u-456", "User logged out"},
		},
		{
			name:     "LogUnauthorizedAccess",
			logFunc:  func() { LogUnauthorizedAccess("u-789", "", "192.168.1.3", "/api/users", "role editor") },
			contains: []string{"event=UNAUTHORIZED_ACCESS", "Unauthorized access to /api/users: role editor"},
		},
		{
			name:     "LogRateLimitExceeded",
			logFunc:  func() { LogRateLimitExceeded("", "192.168.1.4", "/api/auth/login") },
			contains: []string{"event=RATE_LIMIT_EXCEEDED", "/api/auth/login"},
		},
		{
			name:     "LogPasswordChanged",
			logFunc:  func() { LogPasswordChanged("u-1", "a@example.com", "192.168.1.5") },
			contains: []string{"event=PASSWORD_CHANGED", "Password changed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, cleanup := setupTestLogger()
			defer cleanup()

			tt.logFunc()
			assertLogContains(t, buf.String(), tt.contains)
		})
	}
}

func securityLogDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb_security_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.SecurityLog{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	SetSecurityLoggerDB(db)
	t.Cleanup(func() { SetSecurityLoggerDB(nil) })
	return db
}

func TestLogSecurityEvent_Persists(t *testing.T) {
	_, cleanup := setupTestLogger()
	defer cleanup()
	db := securityLogDB(t)

	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginFailure,
		Email:     "who@example.com",
		IP:        "127.0.0.1",
		Message:   "Login failed: invalid password",
		Details:   map[string]interface{}{"attempt": 2},
	})

	var entry model.SecurityLog
	if err := db.First(&entry, "event_type = ?", string(EventLoginFailure)).Error; err != nil {
		t.Fatalf("expected persisted event: %v", err)
	}
	if entry.Email != "who@example.com" || entry.Location != "" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if !strings.Contains(string(entry.Details), `"attempt":2`) {
		t.Errorf("expected details to be stored, got %s", entry.Details)
	}
}

func TestLogSecurityEvent_PersistsLocationAndSanitizedFields(t *testing.T) {
	_, cleanup := setupTestLogger()
	defer cleanup()
	resetGeoIP(t)
	geoipMu.Lock()
	geoipCache = cache.New(time.Minute, time.Minute)
	geoipMu.Unlock()
	geoipCache.Set("203.0.113.7", IPLocation{City: "Jakarta", Country: "Indonesia"}, cache.DefaultExpiration)
	db := securityLogDB(t)

	LogUnauthorizedAccess("u-42", "editor@clinic.example.com", "203.0.113.7", "/api/users", "insufficient role")
	LogLogout("u-42", "editor@clinic.example.com", "203.0.113.7", "agent\nforged=1")
	LogPasswordChanged("u-7", "other@clinic.example.com", "198.51.100.1")

	var entries []model.SecurityLog
	if err := db.Where("user_id = ?", "u-42").Order("id ASC").Find(&entries).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for u-42, got %d", len(entries))
	}

	denied := entries[0]
	if denied.EventType != string(EventUnauthorizedAccess) || denied.Location != "Jakarta/Indonesia" {
		t.Errorf("unexpected unauthorized entry: %+v", denied)
	}
	if !strings.Contains(string(denied.Details), `"resource":"/api/users"`) {
		t.Errorf("expected resource in details, got %s", denied.Details)
	}
	if entries[1].EventType != string(EventLogout) || strings.Contains(entries[1].UserAgent, "\n") {
		t.Errorf("unexpected logout entry: %+v", entries[1])
	}
}
