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

	"github.com/faqdesk/faqdesk/backend/go-services/handlers"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/auth"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/config"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content/handler"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content/repository"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content/service"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/database"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/sessions"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/storage"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/logger"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/metrics"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

var startTime = time.Now()

const mongoConnectAttempts = 5

// app holds the wired services shared by the router and readiness checks.
type app struct {
	cfg     *config.Config
	store   repository.Store
	content *service.Service
	auth    *auth.Service
	backups handler.Snapshotter
	redis   *redis.Client
	mongo   *mongo.Client
}

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: store=%s tokens=%s mongo=%v redis=%v minio=%v",
		cfg.Store.Backend, cfg.Tokens.Backend, cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Enabled())

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := newApp(context.Background(), cfg)
	if err != nil {
		logger.Fatalf("startup failed: %v", err)
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	serve(a.router(), cfg, a.close)
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	if addr := cfg.Redis.Addr(); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := client.Ping(ctx).Err(); err != nil {
			if cfg.Tokens.Backend == config.BackendRedis {
				return nil, fmt.Errorf("redis %s: %w", addr, err)
			}
			logger.Warnf("failed to connect to Redis (%s), continuing without it: %v", addr, err)
			_ = client.Close()
		} else {
			logger.Infof("connected to Redis at %s", addr)
			a.redis = client
		}
	}

	var db *mongo.Database
	if cfg.Store.Backend == config.BackendMongo || cfg.Tokens.Backend == config.BackendMongo {
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, mongoConnectAttempts)
		if err != nil {
			return nil, err
		}
		a.mongo = client
		db = client.Database(cfg.MongoDB.Database)
		logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)
	}

	store, err := repository.Open(cfg.Store.Backend, cfg.Store.ContentFile, db)
	if err != nil {
		return nil, err
	}
	if cfg.Store.AutoInit || cfg.Store.Backend == config.BackendMemory {
		created, err := repository.EnsureInitialized(ctx, store)
		if err != nil {
			return nil, err
		}
		if created {
			logger.Infof("initialized empty content store (%s)", cfg.Store.Backend)
		}
	}
	a.store = store
	a.content = service.New(store)

	var tokens sessions.Repository
	switch cfg.Tokens.Backend {
	case config.BackendRedis:
		tokens = sessions.NewRedisRepository(a.redis, cfg.Tokens.RedisPrefix)
	case config.BackendMongo:
		tokens = sessions.NewMongoRepository(db.Collection(database.TokensCollection))
	default:
		tokens = sessions.NewFileRepository(cfg.Tokens.File)
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warnf("ADMIN_EMAIL/ADMIN_PASSWORD not set; admin login will reject every attempt")
	}
	a.auth = auth.NewService(
		auth.NewStaticProvider(cfg.Admin.Email, cfg.Admin.Password),
		sessions.NewService(tokens),
		cfg.Tokens.TTL,
	)

	if cfg.MinIO.Enabled() {
		objects, err := storage.NewMinIOStorage(ctx, &cfg.MinIO)
		if err != nil {
			logger.Warnf("object storage unavailable, backups disabled: %v", err)
		} else {
			a.backups = storage.NewBackups(objects)
		}
	}

	return a, nil
}

func (a *app) router() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestLogger(), middleware.CORS(a.cfg.Server.FrontendURL))

	// Optional global rate limiter keyed by client IP
	if a.cfg.RateLimit.Enabled {
		if a.cfg.RateLimit.UseRedis && a.redis != nil {
			win := time.Duration(a.cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(a.redis, a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")})
	})
	r.GET("/ready", a.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterSwagger(r)

	api := r.Group("/api")
	handlers.NewAuthHandler(a.auth).Register(api)
	handler.New(a.content, a.backups).Register(api, middleware.RequireAuth(a.auth))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	return r
}

// ready returns 200 only when the content store can be read and Redis, if
// used, answers.
func (a *app) ready(c *gin.Context) {
	ready := true
	deps := map[string]bool{}

	_, err := a.store.Load(c.Request.Context())
	deps["store"] = err == nil
	if err != nil {
		ready = false
		if !errors.Is(err, repository.ErrNotInitialized) {
			logger.Warnf("readiness: store load failed: %v", err)
		}
	}

	if a.redis != nil {
		deps["redis"] = a.redis.Ping(c.Request.Context()).Err() == nil
		if !deps["redis"] {
			ready = false
		}
	}
	deps["backups"] = a.backups != nil

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
}

func (a *app) close(ctx context.Context) {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.mongo != nil {
		_ = a.mongo.Disconnect(ctx)
	}
}

// serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests for up to ShutdownTimeout.
func serve(router *gin.Engine, cfg *config.Config, onShutdown func(ctx context.Context)) {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("faqdesk API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down, waiting up to %v for in-flight requests", cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	if onShutdown != nil {
		onShutdown(ctx)
	}
	logger.Infof("server exited")
}
