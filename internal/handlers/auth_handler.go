package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/ai-support-bot-be/internal/core/auth"
	"github.com/supporthub/ai-support-bot-be/internal/repositories"
	"github.com/supporthub/ai-support-bot-be/internal/shared/utils"
)

// AuthHandler issues manager session tokens. This is stand-in plumbing,
// not an authentication design: a single shared admin password gates the
// manager UI, matching the reference deployment.
type AuthHandler struct {
	clients       repositories.ClientRepo
	auth          *auth.Service
	adminPassword string
}

func NewAuthHandler(clients repositories.ClientRepo, authSvc *auth.Service, adminPassword string) *AuthHandler {
	return &AuthHandler{
		clients:       clients,
		auth:          authSvc,
		adminPassword: adminPassword,
	}
}

type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token godoc
// @Summary Issue a manager session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param data body TokenRequest true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password are required",
		})
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid credentials",
		})
	}

	client, err := h.clients.GetByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unknown client",
		})
	}

	token, err := h.auth.IssueToken(client.ID, client.Email)
	if err != nil {
		utils.LogError("failed to issue token", err, map[string]interface{}{
			"client_id": client.ID,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to issue token",
		})
	}

	return c.JSON(fiber.Map{
		"token":     token,
		"client_id": client.ID,
	})
}
