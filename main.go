// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariebrainware/clinic-cms/analytics"
	"github.com/ariebrainware/clinic-cms/config"
	"github.com/ariebrainware/clinic-cms/docs"
	"github.com/ariebrainware/clinic-cms/endpoint"
	"github.com/ariebrainware/clinic-cms/middleware"
	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/storage"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// @title           Clinic CMS API
// @version         1.0
// @description     Content management backend for a medical clinic website.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and the session token.
func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	log, err := util.InitLogger(util.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		util.Log().Fatalf("Error initializing logger: %v", err)
	}
	util.SetJWTSecret(cfg.JWTSecret)
	util.InitUserEmailCache(1000)

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.AutoMigrate(model.Models()...); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	util.SetSecurityLoggerDB(db)
	seedAdmin(db, cfg)

	if _, err := config.ConnectRedis(); err != nil {
		log.WithError(err).Warn("Redis unavailable, sessions are not revocable and login is not rate limited")
	}

	ctx := context.Background()
	mongoClient, rec := setupAnalytics(ctx, db)
	setupGeoIP(ctx, cfg)
	store := setupStorage(ctx, cfg)

	if !cfg.AuthEnforce {
		log.Warn("AUTHENFORCE is off, write endpoints accept unauthenticated requests")
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.EndpointCallLogger())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.ObjectStoreMiddleware(store))
	router.Use(middleware.RecorderMiddleware(rec))
	router.Use(middleware.Analytics(rec, middleware.AnalyticsConfig{
		Paths:      cfg.AnalyticsPaths,
		PostPrefix: cfg.AnalyticsPostPrefix,
		Secure:     cfg.IsProduction(),
	}))

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})
	docs.SwaggerInfo.Title = cfg.AppName + " API"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	endpoint.RegisterRoutes(router, endpoint.RouteOptions{
		EnforceAuth:   cfg.AuthEnforce,
		SecureCookies: cfg.IsProduction(),
		LoginLimit:    endpoint.DefaultLoginLimit,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		log.WithField("addr", srv.Addr).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("error starting server: %v", err)
		}
	}()

	<-stop.Done()
	log.Info("Shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}

	if err := config.CloseDatabase(db); err != nil {
		log.WithError(err).Error("Failed to close database")
	}
	if rdb := config.GetRedisClient(); rdb != nil {
		_ = rdb.Close()
	}
	_ = config.CloseMongo(mongoClient)
	hits, misses, size := util.GetGeoIPCacheMetrics()
	log.WithFields(logrus.Fields{"hits": hits, "misses": misses, "size": size}).Info("GeoIP cache stats")
	util.CloseGeoIP()
}

func seedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}
	digest, err := util.HashPassword(cfg.AdminPassword)
	if err != nil {
		util.Log().WithError(err).Error("Failed to hash admin password")
		return
	}
	created, err := model.SeedAdmin(db, cfg.AdminUsername, cfg.AdminEmail, digest)
	if err != nil {
		util.Log().WithError(err).Error("Failed to seed admin user")
		return
	}
	if created {
		util.Log().WithField("username", cfg.AdminUsername).Info("Seeded admin user")
	}
}

// setupAnalytics prefers MongoDB when configured and falls back to the main database.
func setupAnalytics(ctx context.Context, db *gorm.DB) (*mongo.Client, analytics.Recorder) {
	client, mdb, err := config.ConnectMongo(ctx)
	if err != nil {
		util.Log().WithError(err).Warn("MongoDB unavailable, analytics stored in the main database")
	}
	if mdb == nil {
		return nil, analytics.NewGormRecorder(db)
	}
	rec := analytics.NewMongoRecorder(mdb)
	if err := rec.EnsureIndexes(ctx); err != nil {
		util.Log().WithError(err).Warn("Failed to create analytics indexes")
	}
	return client, rec
}

func setupGeoIP(ctx context.Context, cfg *config.Config) {
	if cfg.GeoIPDBPath == "" {
		return
	}
	if _, err := os.Stat(cfg.GeoIPDBPath); errors.Is(err, os.ErrNotExist) && cfg.GeoIPDownloadURL != "" {
		path, err := util.DownloadGeoIPWithRequest(ctx, util.DownloadRequest{URL: cfg.GeoIPDownloadURL, DestPath: cfg.GeoIPDBPath})
		if err == nil {
			err = util.ValidateGeoIP(path)
		}
		if err != nil {
			util.Log().WithError(err).Warn("GeoIP download failed")
		}
	}
	if err := util.InitGeoIP(cfg.GeoIPDBPath); err != nil {
		util.Log().WithError(err).WithField("path", cfg.GeoIPDBPath).Warn("GeoIP disabled")
	}
}

func setupStorage(ctx context.Context, cfg *config.Config) storage.Store {
	if !cfg.StorageEnabled() {
		util.Log().Warn("Object storage not configured, media uploads disabled")
		return nil
	}
	client, err := storage.New(ctx, storage.Options{
		Endpoint:  cfg.StorageEndpoint,
		Region:    cfg.StorageRegion,
		Bucket:    cfg.StorageBucket,
		AccessKey: cfg.StorageAccessKey,
		SecretKey: cfg.StorageSecretKey,
		PublicURL: cfg.StoragePublicURL,
		PathStyle: cfg.StoragePathStyle,
	})
	if err != nil {
		util.Log().WithError(err).Error("Object storage unavailable, media uploads disabled")
		return nil
	}
	return client
}
