package util

import (
	"container/list"
	"sync"

	"github.com/ariebrainware/clinic-cms/model"
	"gorm.io/gorm"
)

const defaultUserCacheSize = 1000

type emailEntry struct {
	userID string
	email  string
}

// emailLRU maps user ids to emails for log enrichment, bounded by size.
type emailLRU struct {
	mu    sync.Mutex
	order *list.List
	items map[string]*list.Element
	size  int
}

func newEmailLRU(size int) *emailLRU {
	if size <= 0 {
		size = defaultUserCacheSize
	}
	return &emailLRU{order: list.New(), items: make(map[string]*list.Element), size: size}
}

func (l *emailLRU) get(userID string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	el, ok := l.items[userID]
	if !ok {
		return "", false
	}
	l.order.MoveToFront(el)
	return el.Value.(emailEntry).email, true
}

func (l *emailLRU) put(userID, email string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry := emailEntry{userID: userID, email: email}
	if el, ok := l.items[userID]; ok {
		el.Value = entry
		l.order.MoveToFront(el)
		return
	}
	l.items[userID] = l.order.PushFront(entry)
	for l.order.Len() > l.size {
		oldest := l.order.Back()
		delete(l.items, oldest.Value.(emailEntry).userID)
		l.order.Remove(oldest)
	}
}

func (l *emailLRU) remove(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if el, ok := l.items[userID]; ok {
		l.order.Remove(el)
		delete(l.items, userID)
	}
}

var (
	userCache   *emailLRU
	userCacheMu sync.RWMutex
)

func currentUserCache() *emailLRU {
	userCacheMu.RLock()
	defer userCacheMu.RUnlock()
	return userCache
}

// InitUserEmailCache replaces the cache with an empty one holding up to capacity
// entries. A non-positive capacity means 1000.
func InitUserEmailCache(capacity int) {
	userCacheMu.Lock()
	defer userCacheMu.Unlock()
	userCache = newEmailLRU(capacity)
}

// UserEmailCacheGet returns the cached email for userID.
func UserEmailCacheGet(userID string) (string, bool) {
	if c := currentUserCache(); c != nil {
		return c.get(userID)
	}
	return "", false
}

func UserEmailCacheSet(userID string, email string) {
	if c := currentUserCache(); c != nil {
		c.put(userID, email)
	}
}

// UserEmailCacheDelete drops userID, used when an account changes or is removed.
func UserEmailCacheDelete(userID string) {
	if c := currentUserCache(); c != nil {
		c.remove(userID)
	}
}

// GetUserEmail returns the email for userID from the cache, falling back to
// the users table. Unknown users yield "".
func GetUserEmail(db *gorm.DB, userID string) string {
	if userID == "" {
		return ""
	}
	if email, ok := UserEmailCacheGet(userID); ok {
		return email
	}
	if db == nil {
		return ""
	}
	var u model.User
	if err := db.Select("email").Where("id = ?", userID).Take(&u).Error; err != nil {
		return ""
	}
	if u.Email != "" {
		UserEmailCacheSet(userID, u.Email)
	}
	return u.Email
}
