package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/ai-support-bot-be/internal/repositories"
	"github.com/supporthub/ai-support-bot-be/internal/shared/utils"
)

type ClientHandler struct {
	clients repositories.ClientRepo
}

func NewClientHandler(clients repositories.ClientRepo) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type SaveWelcomeMessageRequest struct {
	ClientID string `json:"client_id"`
	Message  string `json:"message"`
}

// SaveWelcomeMessage godoc
// @Summary Save the widget welcome message
// @Tags Clients
// @Accept json
// @Produce json
// @Param data body SaveWelcomeMessageRequest true "Welcome message"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /save_welcome_message [post]
func (h *ClientHandler) SaveWelcomeMessage(c *fiber.Ctx) error {
	var req SaveWelcomeMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	if req.ClientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client_id is required",
		})
	}

	if err := h.clients.SaveWelcomeMessage(req.ClientID, req.Message); err != nil {
		utils.LogError("failed to save welcome message", err, map[string]interface{}{
			"client_id": req.ClientID,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save welcome message",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetWelcomeMessage godoc
// @Summary Get the widget welcome message
// @Tags Clients
// @Produce json
// @Param client_id query string true "Client ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /welcome_message [get]
func (h *ClientHandler) GetWelcomeMessage(c *fiber.Ctx) error {
	clientID := c.Query("client_id")
	if clientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client_id is required",
		})
	}

	message, err := h.clients.GetWelcomeMessage(clientID)
	if err != nil {
		utils.LogError("failed to fetch welcome message", err, map[string]interface{}{
			"client_id": clientID,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch welcome message",
		})
	}

	return c.JSON(fiber.Map{"message": message})
}

// GetIntegrationCode godoc
// @Summary Get (or create) the widget embed code for a client
// @Tags Clients
// @Produce json
// @Param client_id query string true "Client ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /integration_code [get]
func (h *ClientHandler) GetIntegrationCode(c *fiber.Ctx) error {
	clientID := c.Query("client_id")
	if clientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client_id is required",
		})
	}

	code, err := h.clients.EnsureIntegrationCode(clientID)
	if err != nil {
		utils.LogError("failed to resolve integration code", err, map[string]interface{}{
			"client_id": clientID,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to resolve integration code",
		})
	}

	return c.JSON(fiber.Map{"integration_code": code})
}
