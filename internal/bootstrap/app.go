// Package bootstrap wires the repositories, services and router into a
// runnable application.
package bootstrap

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/config"
	httpapi "github.com/creatorclub/cc-backend/internal/api/http"
	"github.com/creatorclub/cc-backend/internal/api/http/middleware"
	"github.com/creatorclub/cc-backend/internal/api/http/routes"
	communityrepo "github.com/creatorclub/cc-backend/internal/community/repository"
	communitysvc "github.com/creatorclub/cc-backend/internal/community/service"
	"github.com/creatorclub/cc-backend/internal/dashboard"
	earningsrepo "github.com/creatorclub/cc-backend/internal/earnings/repository"
	earningssvc "github.com/creatorclub/cc-backend/internal/earnings/service"
	earningssync "github.com/creatorclub/cc-backend/internal/earnings/sync"
	"github.com/creatorclub/cc-backend/internal/events"
	goalsrepo "github.com/creatorclub/cc-backend/internal/goals/repository"
	goalssvc "github.com/creatorclub/cc-backend/internal/goals/service"
	leadsrepo "github.com/creatorclub/cc-backend/internal/leads/repository"
	leadssvc "github.com/creatorclub/cc-backend/internal/leads/service"
	libraryrepo "github.com/creatorclub/cc-backend/internal/library/repository"
	librarysvc "github.com/creatorclub/cc-backend/internal/library/service"
	projectsrepo "github.com/creatorclub/cc-backend/internal/projects/repository"
	projectssvc "github.com/creatorclub/cc-backend/internal/projects/service"
	settingsrepo "github.com/creatorclub/cc-backend/internal/settings/repository"
	settingssvc "github.com/creatorclub/cc-backend/internal/settings/service"
	"github.com/creatorclub/cc-backend/internal/storage"
)

// App holds the wired application.
type App struct {
	Router *gin.Engine
	Syncer *earningssync.Syncer
	Redis  *redis.Client
}

// Build wires repositories, services and the router. Subscribing the
// syncer here guarantees the forward pass runs inside every project
// mutation before the mutating call returns.
func Build(cfg *config.Config, log *zap.Logger) *App {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := storage.NewRedisStore(rdb)
	hub := events.NewHub()

	projectsRepo := projectsrepo.New(store, log)
	earningsRepo := earningsrepo.New(store, log)
	leadsRepo := leadsrepo.New(store, log)
	goalsRepo := goalsrepo.New(store, log)
	settingsRepo := settingsrepo.New(store, log)
	libraryRepo := libraryrepo.New(store, log)
	communityRepo := communityrepo.New(time.Now())

	syncer := earningssync.New(earningsRepo, projectsRepo, log)
	hub.Subscribe(events.TopicProjectsChanged, syncer.Rebuild)

	projectsSvc := projectssvc.New(projectsRepo, hub)
	earningsSvc := earningssvc.New(earningsRepo, projectsRepo, hub, log, nil)
	leadsSvc := leadssvc.New(leadsRepo, nil)
	goalsSvc := goalssvc.New(goalsRepo, projectsRepo, nil)
	settingsSvc := settingssvc.New(settingsRepo, hub)
	librarySvc := librarysvc.New(libraryRepo)
	communitySvc := communitysvc.New(communityRepo, nil)
	dashboardSvc := dashboard.New(projectsRepo, goalsSvc, nil)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(log))
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.Server.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	httpapi.NewHealthHandler("cc-backend", cfg.App.Version, rdb).RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterV1(r, routes.V1Deps{
		Projects:  projectsSvc,
		Earnings:  earningsSvc,
		Leads:     leadsSvc,
		Goals:     goalsSvc,
		Community: communitySvc,
		Settings:  settingsSvc,
		Library:   librarySvc,
		Dashboard: dashboardSvc,
	})

	return &App{Router: r, Syncer: syncer, Redis: rdb}
}
