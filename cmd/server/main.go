package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/domain/fiber/handler"
	"github.com/studentmatch/backend/internal/middleware"
	"github.com/studentmatch/backend/internal/model"
	"github.com/studentmatch/backend/internal/repository"
	"github.com/studentmatch/backend/internal/service"
	"github.com/studentmatch/backend/internal/usecase"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	authConfig := config.LoadAuthConfig()
	llmConfig := config.LoadLLMConfig()
	matchConfig := config.LoadMatchingConfig()

	logger := newLogger(appConfig.Env)
	defer logger.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := connectDB(appConfig)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	interestRepo := repository.NewInterestRepository(db)

	llm, err := service.NewLLMClient(ctx, llmConfig, logger)
	if err != nil {
		logger.Fatal("failed to build LLM client", zap.Error(err))
	}
	extractor := service.NewExtractorService(llm, matchConfig, logger)
	ranker := service.NewRankerService(llm, matchConfig, logger)

	authUC := usecase.NewAuthUsecase(userRepo, authConfig)
	projectUC := usecase.NewProjectUsecase(projectRepo, interestRepo, userRepo, matchConfig)
	interestUC := usecase.NewInterestUsecase(interestRepo, projectRepo)
	matchingUC := usecase.NewMatchingUsecase(extractor, ranker, projectRepo, logger)

	handler.NewAuthHandler(authUC).RegisterRoutes(app)
	handler.NewProjectHandler(projectUC, authConfig).RegisterRoutes(app)
	handler.NewInterestHandler(interestUC, authConfig).RegisterRoutes(app)
	handler.NewChatHandler(matchingUC, authConfig).RegisterRoutes(app)

	logger.Info("server starting",
		zap.String("port", appConfig.Port),
		zap.String("llm_provider", llmConfig.Provider),
		zap.Strings("project_fields", matchConfig.Fields),
	)
	if err := app.Listen(appConfig.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}

func connectDB(appConfig *config.AppConfig) *gorm.DB {
	dbConfig := config.LoadDBConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	// TranslateError maps unique-constraint violations to
	// gorm.ErrDuplicatedKey, which the interest usecase relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Project{}, &model.StudentInterest{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
