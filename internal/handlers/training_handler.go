package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kalibr456/Fullstack/internal/models"
	"github.com/kalibr456/Fullstack/internal/services"
)

type trainingApplicationService interface {
	Record(ctx context.Context, userID int64, input services.RecordTrainingInput) (*models.Training, error)
	Update(ctx context.Context, actorID, trainingID int64, input services.UpdateTrainingInput) (*models.Training, error)
	Delete(ctx context.Context, actorID, trainingID int64) error
	ListForUser(ctx context.Context, userID int64) ([]models.Training, error)
}

type TrainingHandler struct {
	service trainingApplicationService
}

func NewTrainingHandler(service *services.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service}
}

type recordTrainingRequest struct {
	SectionID   int64   `json:"section_id"`
	Duration    int     `json:"duration"`
	Intensity   int     `json:"intensity"`
	PerformedAt *string `json:"performed_at"`
	Note        *string `json:"note"`
}

type updateTrainingRequest struct {
	SectionID   *int64  `json:"section_id"`
	Duration    *int    `json:"duration"`
	Intensity   *int    `json:"intensity"`
	PerformedAt *string `json:"performed_at"`
	Note        *string `json:"note"`
}

func (h *TrainingHandler) List(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	trainings, err := h.service.ListForUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list trainings"})
	}

	return c.JSON(fiber.Map{"trainings": trainings})
}

func (h *TrainingHandler) Create(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req recordTrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	performedAt, parseErr := parseOptionalTimestamp(req.PerformedAt)
	if parseErr != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "performed_at must be a valid RFC3339 timestamp"})
	}

	training, err := h.service.Record(c.Context(), userID, services.RecordTrainingInput{
		SectionID:   req.SectionID,
		Duration:    req.Duration,
		Intensity:   req.Intensity,
		PerformedAt: performedAt,
		Note:        req.Note,
	})
	if err != nil {
		return mapServiceError(c, err, "Section not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"training": training})
}

func (h *TrainingHandler) Update(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	trainingID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid training id"})
	}

	var req updateTrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	performedAt, parseErr := parseOptionalTimestamp(req.PerformedAt)
	if parseErr != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "performed_at must be a valid RFC3339 timestamp"})
	}

	training, err := h.service.Update(c.Context(), userID, trainingID, services.UpdateTrainingInput{
		SectionID:   req.SectionID,
		Duration:    req.Duration,
		Intensity:   req.Intensity,
		PerformedAt: performedAt,
		Note:        req.Note,
	})
	if err != nil {
		return mapServiceError(c, err, "Training not found")
	}

	return c.JSON(fiber.Map{"training": training})
}

func (h *TrainingHandler) Delete(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	trainingID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid training id"})
	}

	if err := h.service.Delete(c.Context(), userID, trainingID); err != nil {
		return mapServiceError(c, err, "Training not found")
	}

	return c.JSON(fiber.Map{"message": "Training deleted"})
}

func parseOptionalTimestamp(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(*value))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
