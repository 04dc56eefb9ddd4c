package util

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/ariebrainware/clinic-cms/model"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SecurityEventType represents different types of security events
type SecurityEventType string

const (
	EventLoginSuccess       SecurityEventType = "LOGIN_SUCCESS"
	EventLoginFailure       SecurityEventType = "LOGIN_FAILURE"
	EventLogout             SecurityEventType = "LOGOUT"
	EventPasswordChanged    SecurityEventType = "PASSWORD_CHANGED"
	EventUnauthorizedAccess SecurityEventType = "UNAUTHORIZED_ACCESS"
	EventRateLimitExceeded  SecurityEventType = "RATE_LIMIT_EXCEEDED"
	EventSuspiciousActivity SecurityEventType = "SUSPICIOUS_ACTIVITY"
)

// SecurityEvent represents a security event to be logged
type SecurityEvent struct {
	EventType SecurityEventType
	UserID    string
	Email     string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var (
	securityDB   *gorm.DB
	securityDBMu sync.RWMutex
)

// SetSecurityLoggerDB sets a gorm DB instance used to persist security events.
// Call this during startup after DB initialization; nil disables persistence.
func SetSecurityLoggerDB(db *gorm.DB) {
	securityDBMu.Lock()
	defer securityDBMu.Unlock()
	securityDB = db
}

func getSecurityDB() *gorm.DB {
	securityDBMu.RLock()
	defer securityDBMu.RUnlock()
	return securityDB
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(value)
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

func formatLocation(loc IPLocation) string {
	switch {
	case loc.City != "" && loc.Country != "":
		return fmt.Sprintf("%s/%s", loc.City, loc.Country)
	case loc.Country != "":
		return loc.Country
	default:
		return loc.City
	}
}

// LogSecurityEvent writes event to the application log and persists it best-effort.
func LogSecurityEvent(event SecurityEvent) {
	fields := logrus.Fields{
		"component": "security",
		"event":     sanitizeLogValue(string(event.EventType)),
		"user_id":   sanitizeLogValue(event.UserID),
		"email":     sanitizeLogValue(event.Email),
		"ip":        sanitizeLogValue(event.IP),
		"ua":        sanitizeLogValue(event.UserAgent),
	}
	if len(event.Details) > 0 {
		// Details are persisted, not logged
		fields["details_count"] = len(event.Details)
	}
	Log().WithFields(fields).Info(sanitizeLogValue(event.Message))

	db := getSecurityDB()
	if db == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	entry := model.SecurityLog{
		EventType: string(event.EventType),
		UserID:    event.UserID,
		Email:     sanitizeLogValue(event.Email),
		IP:        sanitizeLogValue(event.IP),
		Location:  sanitizeLogValue(formatLocation(GetIPLocation(event.IP))),
		UserAgent: sanitizeLogValue(event.UserAgent),
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
	}
	if err := db.Create(&entry).Error; err != nil {
		Log().WithError(err).Warn("Failed to persist security event")
	}
}

// LogLoginSuccess logs a successful login event
func LogLoginSuccess(userID, email, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginSuccess,
		UserID:    userID,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User logged in successfully",
	})
}

// LogLoginFailure logs a failed login attempt
func LogLoginFailure(identifier, ip, userAgent, reason string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginFailure,
		Email:     identifier,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("Login failed: %s", reason),
	})
}

// LogLogout logs a logout event
func LogLogout(userID, email, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLogout,
		UserID:    userID,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User logged out",
	})
}

// LogPasswordChanged logs a password change made through the users API
func LogPasswordChanged(userID, email, ip string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventPasswordChanged,
		UserID:    userID,
		Email:     email,
		IP:        ip,
		Message:   "Password changed",
	})
}

// LogUnauthorizedAccess logs unauthorized access attempts
func LogUnauthorizedAccess(userID, email, ip, resource, reason string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventUnauthorizedAccess,
		UserID:    userID,
		Email:     email,
		IP:        ip,
		Message:   fmt.Sprintf("Unauthorized access to %s: %s", resource, reason),
		Details:   map[string]interface{}{"resource": resource, "reason": reason},
	})
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(email, ip, endpoint string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventRateLimitExceeded,
		Email:     email,
		IP:        ip,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
	})
}
