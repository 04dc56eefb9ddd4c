package util

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oschwald/geoip2-golang"
	cache "github.com/patrickmn/go-cache"
)

// IPLocation is the resolved place for an address. Empty fields mean unknown.
type IPLocation struct {
	City    string
	Country string
}

var (
	geoipMu        sync.RWMutex
	geoipDB        *geoip2.Reader
	geoipCache     *cache.Cache
	geoipCacheHits int64
	geoipCacheMiss int64
)

// InitGeoIP opens the GeoIP2/GeoLite2 .mmdb file at dbPath and creates the lookup cache.
// An empty dbPath is a no-op.
func InitGeoIP(dbPath string) error {
	if dbPath == "" {
		return nil
	}

	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoipMu.Lock()
	defer geoipMu.Unlock()
	geoipDB = r
	// Cache entries for 24h, purge every hour
	geoipCache = cache.New(24*time.Hour, 1*time.Hour)
	return nil
}

// CloseGeoIP closes the GeoIP DB if opened.
func CloseGeoIP() {
	geoipMu.Lock()
	defer geoipMu.Unlock()
	if geoipDB != nil {
		_ = geoipDB.Close()
		geoipDB = nil
	}
}

// DownloadRequest describes where to fetch an MMDB file and where to put it.
type DownloadRequest struct {
	URL      string
	DestPath string
	Timeout  time.Duration
}

// DownloadGeoIPWithRequest fetches req.URL into req.DestPath through a temp
// file in the same directory. URLs ending in .gz are decompressed.
func DownloadGeoIPWithRequest(ctx context.Context, req DownloadRequest) (path string, err error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return "", err
	}
	timeout := req.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	resp, err := (&http.Client{Timeout: timeout}).Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download, status: %d", resp.StatusCode)
	}

	dir := filepath.Dir(req.DestPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	tmpFile, err := os.CreateTemp(dir, "geoip-*.tmp")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = tmpFile.Close()
		if err != nil {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	var body io.Reader = resp.Body
	if strings.HasSuffix(req.URL, ".gz") {
		gz, gzErr := gzip.NewReader(resp.Body)
		if gzErr != nil {
			return "", gzErr
		}
		defer gz.Close()
		body = gz
	}
	if _, err = io.Copy(tmpFile, body); err != nil {
		return "", err
	}
	if err = tmpFile.Sync(); err != nil {
		return "", err
	}
	if err = tmpFile.Close(); err != nil {
		return "", err
	}
	if err = os.Rename(tmpFile.Name(), req.DestPath); err != nil {
		return "", err
	}
	return req.DestPath, nil
}

// ValidateGeoIP attempts to open the MMDB file to ensure it's a valid DB.
func ValidateGeoIP(path string) error {
	r, err := geoip2.Open(path)
	if err != nil {
		return err
	}
	return r.Close()
}

func isLocalIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast()
}

// GetIPLocation resolves ip with the local GeoIP database and an in-memory cache.
// Private, loopback and unparsable addresses resolve to an empty location.
func GetIPLocation(ip string) IPLocation {
	parsed := net.ParseIP(ip)
	if parsed == nil || isLocalIP(parsed) {
		return IPLocation{}
	}

	geoipMu.RLock()
	db, c := geoipDB, geoipCache
	geoipMu.RUnlock()

	if c != nil {
		if v, ok := c.Get(ip); ok {
			atomic.AddInt64(&geoipCacheHits, 1)
			if loc, ok := v.(IPLocation); ok {
				return loc
			}
		}
	}
	atomic.AddInt64(&geoipCacheMiss, 1)

	if db == nil {
		return IPLocation{}
	}
	rec, err := db.City(parsed)
	if err != nil {
		Log().WithError(err).WithField("ip", ip).Debug("GeoIP lookup failed")
		return IPLocation{}
	}

	loc := IPLocation{City: rec.City.Names["en"], Country: rec.Country.Names["en"]}
	if loc.Country == "" {
		loc.Country = rec.Country.IsoCode
	}
	if c != nil {
		c.Set(ip, loc, cache.DefaultExpiration)
	}
	return loc
}

// GetGeoIPCacheMetrics returns the cache hits and misses and current cache size.
func GetGeoIPCacheMetrics() (hits int64, misses int64, size int) {
	hits = atomic.LoadInt64(&geoipCacheHits)
	misses = atomic.LoadInt64(&geoipCacheMiss)
	geoipMu.RLock()
	defer geoipMu.RUnlock()
	if geoipCache != nil {
		return hits, misses, geoipCache.ItemCount()
	}
	return hits, misses, 0
}
