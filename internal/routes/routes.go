package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kalibr456/Fullstack/internal/config"
	"github.com/kalibr456/Fullstack/internal/handlers"
	"github.com/kalibr456/Fullstack/internal/middleware"
	"github.com/kalibr456/Fullstack/internal/repository"
	"github.com/kalibr456/Fullstack/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) error {
	userRepo := repository.NewUserRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	diaryRepo := repository.NewDiaryRepository(db)

	accountService := services.NewAccountService(userRepo)
	membershipService := services.NewMembershipService(sectionRepo, membershipRepo)
	trainingService := services.NewTrainingService(trainingRepo, sectionRepo)
	diaryService := services.NewDiaryService(diaryRepo)

	authHandler := handlers.NewAuthHandler(accountService, membershipService, cfg.JWTSecret)
	sectionHandler := handlers.NewSectionHandler(sectionRepo, membershipService)
	trainingHandler := handlers.NewTrainingHandler(trainingService)
	diaryHandler := handlers.NewDiaryHandler(diaryService)
	recommendationHandler := handlers.NewRecommendationHandler(trainingService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API Спортцентра работает!"})
	})

	auth := middleware.AuthRequired(cfg.JWTSecret)

	users := app.Group("/users")
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)
	users.Get("/profile", auth, authHandler.Profile)
	users.Put("/profile", auth, authHandler.UpdateProfile)
	users.Delete("/profile", auth, authHandler.DeleteProfile)

	sections := app.Group("/sections")
	sections.Get("/", sectionHandler.List)
	sections.Post("/", auth, sectionHandler.Create)
	sections.Put("/:id", auth, sectionHandler.Update)
	sections.Delete("/:id", auth, sectionHandler.Delete)
	sections.Post("/join", auth, sectionHandler.Join)
	sections.Post("/leave", auth, sectionHandler.Leave)

	training := app.Group("/training", auth)
	training.Get("/", trainingHandler.List)
	training.Post("/", trainingHandler.Create)
	training.Put("/:id", trainingHandler.Update)
	training.Delete("/:id", trainingHandler.Delete)

	diary := app.Group("/diary", auth)
	diary.Get("/", diaryHandler.List)
	diary.Post("/", diaryHandler.Create)
	diary.Delete("/:id", diaryHandler.Delete)

	ai := app.Group("/ai")
	ai.Get("/recommend", auth, recommendationHandler.Recommend)
	ai.Post("/recommend", recommendationHandler.Assess)

	return registerDocsRoutes(app, cfg)
}
