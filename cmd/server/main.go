package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/myjobsapp/myjobs-api/internal/config"
	"github.com/myjobsapp/myjobs-api/internal/domain/fiber/handler"
	"github.com/myjobsapp/myjobs-api/internal/middleware"
	"github.com/myjobsapp/myjobs-api/internal/model"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"github.com/myjobsapp/myjobs-api/internal/service"
	"github.com/myjobsapp/myjobs-api/internal/usecase"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

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
	app.Use(logger.New())
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
	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	app.Static("/uploads", "./uploads")

	db := ConnectDB()

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	jobRepo := repository.NewJobRepository(db)

	mail := service.NewMailService()

	authUC := usecase.NewAuthUsecase(db, userRepo, mail)
	profileUC := usecase.NewProfileUsecase(userRepo, profileRepo)
	transcriptUC := usecase.NewTranscriptUsecase(profileRepo, transcriptRepo, lookupRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, profileRepo)
	searchUC := usecase.NewSearchUsecase(userRepo, profileRepo)

	api := app.Group("/api")
	authRequired := middleware.RequireAuth(userRepo)

	handler.NewAuthHandler(authUC).RegisterRoutes(api)
	handler.NewLookupHandler(lookupRepo).RegisterRoutes(api)
	handler.NewProfileHandler(profileUC).RegisterRoutes(api, authRequired)
	handler.NewCollectionHandler(profileUC).RegisterRoutes(api, authRequired)
	handler.NewTranscriptHandler(transcriptUC).RegisterRoutes(api, authRequired)
	handler.NewJobHandler(jobUC).RegisterRoutes(api, authRequired)
	handler.NewSearchHandler(searchUC).RegisterRoutes(api, authRequired)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
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

	err = db.AutoMigrate(
		&model.User{},
		&model.College{},
		&model.Degree{},
		&model.Department{},
		&model.FacultyProfile{},
		&model.RecruiterProfile{},
		&model.Education{},
		&model.Transcript{},
		&model.Course{},
		&model.Certificate{},
		&model.Membership{},
		&model.Experience{},
		&model.Skill{},
		&model.Presentation{},
		&model.Document{},
		&model.Job{},
		&model.JobApplication{},
		&model.JobStatusHistory{},
		&model.SavedJob{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
