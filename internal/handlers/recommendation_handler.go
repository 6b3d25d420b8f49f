package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kalibr456/Fullstack/internal/models"
	"github.com/kalibr456/Fullstack/internal/services"
)

type recentTrainingLister interface {
	RecentForUser(ctx context.Context, userID int64, limit int) ([]models.Training, error)
}

type RecommendationHandler struct {
	trainingService recentTrainingLister
}

func NewRecommendationHandler(trainingService *services.TrainingService) *RecommendationHandler {
	return &RecommendationHandler{trainingService: trainingService}
}

type assessRequest struct {
	Trainings []struct {
		Intensity int `json:"intensity"`
	} `json:"trainings"`
}

// Recommend advises on the next training load from the user's stored history.
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	history, err := h.trainingService.RecentForUser(c.Context(), userID, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to load training history"})
	}

	return c.JSON(services.RecommendLoad(time.Now(), history))
}

// Assess scores a list of intensities supplied in the request body without
// touching stored state.
func (h *RecommendationHandler) Assess(c *fiber.Ctx) error {
	var req assessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	intensities := make([]int, 0, len(req.Trainings))
	for _, training := range req.Trainings {
		intensities = append(intensities, training.Intensity)
	}

	return c.JSON(services.AssessIntensities(intensities))
}
