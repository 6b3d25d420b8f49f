package handlers

import (
	"context"
	"net/mail"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kalibr456/Fullstack/internal/models"
	"github.com/kalibr456/Fullstack/internal/services"
	"github.com/kalibr456/Fullstack/pkg/utils"
)

type accountApplicationService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, input services.UpdateAccountInput) (*models.User, error)
	DeleteAccount(ctx context.Context, userID int64) error
}

type membershipLister interface {
	ListForUser(ctx context.Context, userID int64) ([]models.Section, error)
}

type AuthHandler struct {
	accountService    accountApplicationService
	membershipService membershipLister
	jwtSecret         string
}

func NewAuthHandler(
	accountService *services.AccountService,
	membershipService *services.MembershipService,
	jwtSecret string,
) *AuthHandler {
	return &AuthHandler{
		accountService:    accountService,
		membershipService: membershipService,
		jwtSecret:         jwtSecret,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username is required"})
	}
	parsedEmail, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
	}
	req.Email = strings.ToLower(parsedEmail.Address)
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}

	user, err := h.accountService.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return mapServiceError(c, err, "User not found")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := h.accountService.Authenticate(c.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "Invalid username or password"})
		}
		return mapServiceError(c, err, "User not found")
	}

	token, err := utils.GenerateToken(strconv.FormatInt(user.ID, 10), h.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, err := h.accountService.GetByID(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "User not found")
	}

	sections, err := h.membershipService.ListForUser(c.Context(), userID)
	if err != nil {
		return mapServiceError(c, err, "User not found")
	}

	return c.JSON(fiber.Map{
		"user":     user,
		"sections": sections,
	})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Email != nil {
		parsedEmail, err := mail.ParseAddress(strings.TrimSpace(*req.Email))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid email format"})
		}
		normalized := strings.ToLower(parsedEmail.Address)
		req.Email = &normalized
	}
	if req.Password != nil && len(*req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}

	user, err := h.accountService.UpdateProfile(c.Context(), userID, services.UpdateAccountInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapServiceError(c, err, "User not found")
	}

	return c.JSON(fiber.Map{"user": user})
}

func (h *AuthHandler) DeleteProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if err := h.accountService.DeleteAccount(c.Context(), userID); err != nil {
		return mapServiceError(c, err, "User not found")
	}

	return c.JSON(fiber.Map{"message": "Account deleted"})
}
