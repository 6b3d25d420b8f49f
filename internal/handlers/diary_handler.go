package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kalibr456/Fullstack/internal/models"
	"github.com/kalibr456/Fullstack/internal/services"
)

type diaryApplicationService interface {
	AddEntry(ctx context.Context, userID int64, entryDate time.Time, section, note string) (*models.DiaryEntry, error)
	ListEntries(ctx context.Context, userID int64) ([]models.DiaryEntry, error)
	DeleteEntry(ctx context.Context, actorID, entryID int64) error
}

type DiaryHandler struct {
	service diaryApplicationService
}

func NewDiaryHandler(service *services.DiaryService) *DiaryHandler {
	return &DiaryHandler{service: service}
}

type diaryEntryRequest struct {
	Date    string `json:"date"`
	Section string `json:"section"`
	Note    string `json:"note"`
}

func (h *DiaryHandler) List(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	entries, err := h.service.ListEntries(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list diary entries"})
	}

	return c.JSON(fiber.Map{"entries": entries})
}

func (h *DiaryHandler) Create(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req diaryEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	entryDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	entry, err := h.service.AddEntry(c.Context(), userID, entryDate, strings.TrimSpace(req.Section), strings.TrimSpace(req.Note))
	if err != nil {
		return mapServiceError(c, err, "Diary entry not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry})
}

func (h *DiaryHandler) Delete(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid entry id"})
	}

	if err := h.service.DeleteEntry(c.Context(), userID, entryID); err != nil {
		return mapServiceError(c, err, "Diary entry not found")
	}

	return c.JSON(fiber.Map{"message": "Diary entry deleted"})
}
