package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds the application's configuration values.
// Keys are read from the environment with underscores ignored, so both
// REDIS_ADDR and REDISADDR map to redisaddr.
type Config struct {
	AppName string `koanf:"appname" validate:"required"`
	AppEnv  string `koanf:"appenv" validate:"required,oneof=development production test"`
	AppPort uint16 `koanf:"appport" validate:"required"`
	GinMode string `koanf:"ginmode" validate:"omitempty,oneof=debug release test"`

	DBHost string `koanf:"dbhost"`
	DBPort uint16 `koanf:"dbport"`
	DBName string `koanf:"dbname"`
	DBUser string `koanf:"dbuser"`
	DBPass string `koanf:"dbpass"`

	JWTSecret   string `koanf:"jwtsecret" validate:"required"`
	AuthEnforce bool   `koanf:"authenforce"`

	RedisAddr string `koanf:"redisaddr"`
	RedisPass string `koanf:"redispass"`
	RedisDB   int    `koanf:"redisdb" validate:"gte=0"`

	MongoURI      string `koanf:"mongouri" validate:"omitempty,uri"`
	MongoDatabase string `koanf:"mongodatabase"`

	StorageEndpoint  string `koanf:"storageendpoint" validate:"omitempty,url"`
	StorageRegion    string `koanf:"storageregion"`
	StorageBucket    string `koanf:"storagebucket"`
	StorageAccessKey string `koanf:"storageaccesskey"`
	StorageSecretKey string `koanf:"storagesecretkey"`
	StoragePublicURL string `koanf:"storagepublicurl" validate:"omitempty,url"`
	StoragePathStyle bool   `koanf:"storagepathstyle"`

	LogLevel  string `koanf:"loglevel" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `koanf:"logformat" validate:"oneof=text json"`
	LogFile   string `koanf:"logfile"`

	CORSOrigins         []string `koanf:"-"`
	AnalyticsPaths      []string `koanf:"-"`
	AnalyticsPostPrefix string   `koanf:"analyticspostprefix" validate:"required"`
	GeoIPDBPath         string   `koanf:"geoipdbpath"`
	GeoIPDownloadURL    string   `koanf:"geoipdownloadurl" validate:"omitempty,url"`

	AdminUsername string `koanf:"adminusername"`
	AdminEmail    string `koanf:"adminemail" validate:"omitempty,email"`
	AdminPassword string `koanf:"adminpassword"`
}

// defaults are applied for keys the environment does not set.
var defaults = map[string]interface{}{
	"appname":             "clinic-cms",
	"appenv":              EnvDevelopment,
	"appport":             8080,
	"ginmode":             "release",
	"dbhost":              "127.0.0.1",
	"dbport":              3306,
	"dbname":              "clinic_cms",
	"authenforce":         true,
	"storageregion":       "us-east-1",
	"loglevel":            "info",
	"logformat":           "text",
	"corsorigins":         "http://localhost:3000",
	"analyticspaths":      "/api/posts,/api/pages,/api/doctors,/api/testimonials",
	"analyticspostprefix": "/api/posts/slug/",
}

var config *Config
var once sync.Once

// IsProduction reports whether the app runs with APPENV=production.
func (c *Config) IsProduction() bool { return c.AppEnv == EnvProduction }

// IsTest reports whether the app runs with APPENV=test.
func (c *Config) IsTest() bool { return c.AppEnv == EnvTest }

// StorageEnabled reports whether enough settings exist to reach the object store.
func (c *Config) StorageEnabled() bool {
	return c.StorageBucket != "" && c.StoragePublicURL != ""
}

// Load reads the environment into a validated Config. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), "_", "")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	for key, value := range defaults {
		if !k.Exists(key) || k.String(key) == "" {
			if err := k.Set(key, value); err != nil {
				return nil, fmt.Errorf("set default %s: %w", key, err)
			}
		}
	}
	if k.String("appenv") == EnvTest && k.String("jwtsecret") == "" {
		_ = k.Set("jwtsecret", "test-secret")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitList(k.String("corsorigins"))
	cfg.AnalyticsPaths = splitList(k.String("analyticspaths"))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func splitList(raw string) []string {
	out := []string{}
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// LoadConfig returns the process-wide Config, loading it on first use.
func LoadConfig() *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			logrus.Fatalf("Error loading configuration: %v", err)
		}
		config = cfg
	})
	return config
}

// ResetForTest drops the cached Config so the next LoadConfig re-reads the environment.
func ResetForTest() {
	config = nil
	once = sync.Once{}
}

// ConnectDatabase opens the document store. APPENV=test uses a private
// in-memory sqlite database, anything else connects to MySQL.
func ConnectDatabase() (*gorm.DB, error) {
	cfg := LoadConfig()
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}

	if cfg.IsTest() {
		dsn := fmt.Sprintf("file:clinic_cms_%d?mode=memory&cache=shared", time.Now().UnixNano())
		db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	// Build the Data Source Name (DSN) using the configuration values.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := gorm.Open(mysql.Open(dsn), gormCfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// CloseDatabase releases the pool behind db.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
