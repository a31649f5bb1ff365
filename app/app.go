// Package app assembles repositories, stores, services and the HTTP router
// from a Config.
package app

import (
	"classifieds/config"
	"classifieds/controllers"
	"classifieds/libs"
	"classifieds/mappers"
	"classifieds/middleware"
	"classifieds/repositories"
	"classifieds/repositories/memrepo"
	"classifieds/routes"
	"classifieds/services"
	"classifieds/utils"
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine

	pool  *pgxpool.Pool
	redis *redis.Client
}

type stores struct {
	users    services.UserRepository
	ads      services.AdRepository
	comments services.CommentRepository
}

// New connects to the configured backends and builds the router. Redis and
// SMTP are optional; PostgreSQL is required unless DB_DRIVER=memory.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	repos, err := a.openRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	images, avatars, err := openImageStores(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.redis = config.ConnectRedis(ctx, cfg)
	var cache services.AdsListCache
	if a.redis != nil {
		cache = libs.NewAdsCache(a.redis, cfg.AdsCacheTTL)
	}

	var notifier services.PasswordChangeNotifier
	if cfg.SMTPEnabled() {
		notifier = libs.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}

	if err := utils.RegisterValidators(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	encoder := utils.Argon2Encoder{}

	adService := services.NewAdService(repos.ads, repos.comments, repos.users, images, mappers.NewAdMapper(cfg.ImagesURLPath), cache)
	userService := services.NewUserService(repos.users, avatars, mappers.NewUserMapper(cfg.AvatarsURLPath), encoder, notifier)
	commentService := services.NewCommentService(repos.comments, repos.ads, repos.users, mappers.NewCommentMapper(cfg.AvatarsURLPath))
	authService := services.NewAuthService(repos.users, encoder, tokens, cfg.AllowAdminSignup)
	exportService := services.NewExportService(repos.ads, repos.users)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(slog.Default()),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)
	router.MaxMultipartMemory = cfg.MaxUploadSize + 1<<20

	routes.SetupRoutes(router, routes.Controllers{
		Ads:      controllers.NewAdController(adService, exportService, cfg.MaxUploadSize),
		Comments: controllers.NewCommentController(commentService),
		Users:    controllers.NewUserController(userService, cfg.MaxUploadSize),
		Auth:     controllers.NewAuthController(authService),
	}, middleware.AuthMiddleware(tokens))

	a.Router = router
	return a, nil
}

func (a *App) openRepositories(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.DBDriver {
	case "memory":
		slog.Warn("using in-memory repositories, data is lost on restart")
		store := memrepo.New()
		return &stores{users: store.Users(), ads: store.Ads(), comments: store.Comments()}, nil
	case "postgres", "":
		pool, err := config.ConnectDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := config.RunMigrations(cfg); err != nil {
			pool.Close()
			return nil, err
		}
		a.pool = pool
		return &stores{
			users:    repositories.NewUserRepository(pool),
			ads:      repositories.NewAdRepository(pool),
			comments: repositories.NewCommentRepository(pool),
		}, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func openImageStores(cfg *config.Config) (services.ImageStore, services.ImageStore, error) {
	switch cfg.StorageDriver {
	case "cloudinary":
		images, err := libs.NewCloudinaryStore(cfg.CloudinaryURL, "images")
		if err != nil {
			return nil, nil, err
		}
		avatars, err := libs.NewCloudinaryStore(cfg.CloudinaryURL, "avatars")
		if err != nil {
			return nil, nil, err
		}
		return images, avatars, nil
	case "local", "":
		images, err := libs.NewLocalStore(cfg.ImagesDir)
		if err != nil {
			return nil, nil, err
		}
		avatars, err := libs.NewLocalStore(cfg.AvatarsDir)
		if err != nil {
			return nil, nil, err
		}
		return images, avatars, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			slog.Warn("failed to close redis", "error", err)
		}
	}
	if a.pool != nil {
		a.pool.Close()
		slog.Info("database connection closed")
	}
}
