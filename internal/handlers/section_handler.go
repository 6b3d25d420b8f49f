package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kalibr456/Fullstack/internal/models"
	"github.com/kalibr456/Fullstack/internal/repository"
	"github.com/kalibr456/Fullstack/internal/services"
)

type sectionStore interface {
	Create(ctx context.Context, section *models.Section) error
	ListAll(ctx context.Context) ([]models.Section, error)
	UpdatePartial(ctx context.Context, id int64, input repository.UpdateSectionInput) (*models.Section, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type membershipApplicationService interface {
	Join(ctx context.Context, userID, sectionID int64) (*models.Section, error)
	Leave(ctx context.Context, userID, sectionID int64) (*models.Section, error)
}

type SectionHandler struct {
	sectionRepo       sectionStore
	membershipService membershipApplicationService
}

func NewSectionHandler(
	sectionRepo *repository.SectionRepository,
	membershipService *services.MembershipService,
) *SectionHandler {
	return &SectionHandler{
		sectionRepo:       sectionRepo,
		membershipService: membershipService,
	}
}

type sectionRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateSectionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type membershipRequest struct {
	SectionID int64 `json:"section_id"`
}

func (h *SectionHandler) List(c *fiber.Ctx) error {
	sections, err := h.sectionRepo.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to list sections"})
	}
	return c.JSON(fiber.Map{"sections": sections})
}

// Any authenticated user may mutate sections; there is no administrator
// role in the data model yet.
func (h *SectionHandler) Create(c *fiber.Ctx) error {
	var req sectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	section := &models.Section{Name: req.Name, Description: req.Description}
	if err := h.sectionRepo.Create(c.Context(), section); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"error": "Section already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to create section"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"section": section})
}

func (h *SectionHandler) Update(c *fiber.Ctx) error {
	sectionID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid section id"})
	}

	var req updateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name must not be empty"})
	}

	section, err := h.sectionRepo.UpdatePartial(c.Context(), sectionID, repository.UpdateSectionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"error": "Section already exists"})
		}
		return mapServiceError(c, err, "Section not found")
	}

	return c.JSON(fiber.Map{"section": section})
}

func (h *SectionHandler) Delete(c *fiber.Ctx) error {
	sectionID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid section id"})
	}

	affected, err := h.sectionRepo.Delete(c.Context(), sectionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to delete section"})
	}
	if affected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Section not found"})
	}

	return c.JSON(fiber.Map{"message": "Section deleted"})
}

func (h *SectionHandler) Join(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req membershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	section, err := h.membershipService.Join(c.Context(), userID, req.SectionID)
	if err != nil {
		return mapServiceError(c, err, "Section not found")
	}

	return c.JSON(fiber.Map{
		"message": "Joined section " + section.Name,
		"section": section,
	})
}

func (h *SectionHandler) Leave(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req membershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	section, err := h.membershipService.Leave(c.Context(), userID, req.SectionID)
	if err != nil {
		return mapServiceError(c, err, "Section not found")
	}

	return c.JSON(fiber.Map{
		"message": "Left section " + section.Name,
		"section": section,
	})
}
