package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/ai-support-bot-be/internal/repositories"
	"github.com/supporthub/ai-support-bot-be/internal/shared/utils"
)

type FaqHandler struct {
	faqs  repositories.FaqRepo
	audit repositories.AuditRepo
}

func NewFaqHandler(faqs repositories.FaqRepo, audit repositories.AuditRepo) *FaqHandler {
	return &FaqHandler{faqs: faqs, audit: audit}
}

// FaqEntryResponse is the per-question value in the faq_data mapping.
type FaqEntryResponse struct {
	ID      uint   `json:"id"`
	Answer  string `json:"answer"`
	Popular bool   `json:"popular"`
}

// FaqData godoc
// @Summary Get FAQ data for the widget
// @Description Returns the client's FAQs keyed by question, plus the popular subset
// @Tags FAQs
// @Produce json
// @Param client_id query string true "Client ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /faqs/faq_data [get]
func (h *FaqHandler) FaqData(c *fiber.Ctx) error {
	clientID := c.Query("client_id")
	if clientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client_id is required",
		})
	}

	faqs, err := h.faqs.All(clientID)
	if err != nil {
		utils.LogError("failed to fetch faqs", err, map[string]interface{}{
			"client_id": clientID,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch faqs",
		})
	}

	all := make(map[string]FaqEntryResponse, len(faqs))
	popular := make(map[string]FaqEntryResponse)
	for _, f := range faqs {
		entry := FaqEntryResponse{ID: f.ID, Answer: f.Answer, Popular: f.Popular}
		all[f.Question] = entry
		if f.Popular {
			popular[f.Question] = entry
		}
	}

	return c.JSON(fiber.Map{
		"all":     all,
		"popular": popular,
	})
}

// UpdateFaqRequest creates or updates one FAQ by (client_id, question).
type UpdateFaqRequest struct {
	ClientID string `json:"client_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Popular  bool   `json:"popular"`
}

// UpdateFaq godoc
// @Summary Add or update an FAQ
// @Description Creates the FAQ, or updates answer and popular flag when the client already has this question
// @Tags FAQs
// @Accept json
// @Produce json
// @Param data body UpdateFaqRequest true "FAQ data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /faqs/update_faq [post]
func (h *FaqHandler) UpdateFaq(c *fiber.Ctx) error {
	var req UpdateFaqRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	if req.ClientID == "" || req.Question == "" || req.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client_id, question and answer are required",
		})
	}

	created, err := h.faqs.Upsert(req.ClientID, req.Question, req.Answer, req.Popular)
	if err != nil {
		utils.LogError("failed to save faq", err, map[string]interface{}{
			"client_id": req.ClientID,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save faq",
		})
	}

	action := fmt.Sprintf("Updated FAQ: %s", req.Question)
	if created {
		action = fmt.Sprintf("Added FAQ: %s", req.Question)
	}
	if err := h.audit.Log(req.ClientID, action, performedBy(c)); err != nil {
		utils.LogWarn("audit log write failed", map[string]interface{}{
			"client_id": req.ClientID,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "FAQ saved successfully!",
	})
}

// DeleteFaqRequest deletes one FAQ by (client_id, faq_id).
type DeleteFaqRequest struct {
	ClientID string `json:"client_id"`
	FaqID    uint   `json:"faq_id"`
}

// DeleteFaq godoc
// @Summary Delete an FAQ
// @Tags FAQs
// @Accept json
// @Produce json
// @Param data body DeleteFaqRequest true "FAQ reference"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /faqs/delete_faq [post]
func (h *FaqHandler) DeleteFaq(c *fiber.Ctx) error {
	var req DeleteFaqRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	if req.ClientID == "" || req.FaqID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client_id and faq_id are required",
		})
	}

	if err := h.faqs.Delete(req.ClientID, req.FaqID); err != nil {
		utils.LogError("failed to delete faq", err, map[string]interface{}{
			"client_id": req.ClientID,
			"faq_id":    req.FaqID,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete faq",
		})
	}

	action := fmt.Sprintf("Deleted FAQ ID: %d", req.FaqID)
	if err := h.audit.Log(req.ClientID, action, performedBy(c)); err != nil {
		utils.LogWarn("audit log write failed", map[string]interface{}{
			"client_id": req.ClientID,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("FAQ ID %d deleted successfully", req.FaqID),
	})
}

// performedBy extracts the manager identity set by the auth middleware.
func performedBy(c *fiber.Ctx) string {
	if email, ok := c.Locals("email").(string); ok {
		return email
	}
	return ""
}
