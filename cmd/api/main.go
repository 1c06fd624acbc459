package main

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/synapse/synapse-backend/internal/config"
	"github.com/synapse/synapse-backend/internal/handler"
	"github.com/synapse/synapse-backend/internal/middleware"
	"github.com/synapse/synapse-backend/internal/migration"
	"github.com/synapse/synapse-backend/internal/repository"
	"github.com/synapse/synapse-backend/internal/routes"
	"github.com/synapse/synapse-backend/internal/service"
	"github.com/synapse/synapse-backend/pkg/activation"
	"github.com/synapse/synapse-backend/pkg/jwt"
	"github.com/synapse/synapse-backend/pkg/logger"
	"github.com/synapse/synapse-backend/pkg/mailer"
	"github.com/synapse/synapse-backend/pkg/redis"
	"github.com/synapse/synapse-backend/pkg/storage"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logger.InitStructured(cfg.Server.Env)
	log := logger.GetLogger()

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		middleware.SetDBConnectionsActive(float64(sqlDB.Stats().OpenConnections))
	}

	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	s3Client, err := storage.NewS3Client(storage.S3Config{
		Endpoint:        cfg.S3.Endpoint,
		Region:          cfg.S3.Region,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Bucket:          cfg.S3.Bucket,
		ForcePathStyle:  cfg.S3.ForcePathStyle,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize S3 client")
	}

	// Rate limiting degrades to fail-open when Redis is unavailable
	var redisClient *goredis.Client
	if client, err := redis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, rate limiting disabled")
	} else {
		redisClient = client
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.AccessTTL(), cfg.RefreshTTL())
	mailClient := mailer.New(cfg.Mail.APIKey, cfg.Mail.Sender)
	codeGen := activation.NewGenerator(cfg.Activation.CodeLength)

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	linkRepo := repository.NewLinkRepository(db)

	authService := service.NewAuthService(userRepo, roleRepo, tokenRepo, jwtManager, mailClient, codeGen, cfg.ActivationTTL())
	userService := service.NewUserService(userRepo)
	boardService := service.NewBoardService(boardRepo)
	noteService := service.NewNoteService(noteRepo, boardRepo, linkRepo, s3Client, cfg.PresignTTL())
	linkService := service.NewLinkService(linkRepo, noteRepo, boardRepo)

	handlers := routes.Handlers{
		Auth:  handler.NewAuthHandler(authService),
		User:  handler.NewUserHandler(userService),
		Board: handler.NewBoardHandler(boardService),
		Note:  handler.NewNoteHandler(noteService),
		Link:  handler.NewLinkHandler(linkService),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: false,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.Setup(router, handlers, jwtManager, redisClient, cfg.RateLimit.AuthPerMinute)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Server.Env).Msg("Starting server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
