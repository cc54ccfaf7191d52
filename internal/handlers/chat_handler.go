package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/ai-support-bot-be/internal/core/match"
	"github.com/supporthub/ai-support-bot-be/internal/models"
	"github.com/supporthub/ai-support-bot-be/internal/repositories"
	"github.com/supporthub/ai-support-bot-be/internal/services"
	"github.com/supporthub/ai-support-bot-be/internal/shared/utils"
)

// NoMatchAnswer is the widget's fallback reply when no FAQ matches.
const NoMatchAnswer = "Sorry, I don't know the answer to that."

type ChatHandler struct {
	faqs   repositories.FaqRepo
	events *services.EventService
}

func NewChatHandler(faqs repositories.FaqRepo, events *services.EventService) *ChatHandler {
	return &ChatHandler{faqs: faqs, events: events}
}

type ChatRequest struct {
	ClientID string `json:"client_id"`
	Question string `json:"question"`
	UserID   string `json:"user_id"`
}

type ChatResponse struct {
	Matched         bool   `json:"matched"`
	MatchedQuestion string `json:"matched_question,omitempty"`
	Answer          string `json:"answer"`
}

// Chat godoc
// @Summary Answer a widget question
// @Description Resolves a free-text question against the client's FAQ set and logs the interaction
// @Tags Chat
// @Accept json
// @Produce json
// @Param data body ChatRequest true "Question"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	if req.ClientID == "" || req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client_id and question are required",
		})
	}

	catalog, err := h.faqs.Catalog(req.ClientID)
	if err != nil {
		utils.LogError("failed to load faq catalog", err, map[string]interface{}{
			"client_id": req.ClientID,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load faqs",
		})
	}

	resp := ChatResponse{Answer: NoMatchAnswer}
	key, ok := match.FindBestMatch(req.Question, catalog)
	if ok {
		if entry, found := catalog.Get(key); found {
			resp.Matched = true
			resp.MatchedQuestion = key
			resp.Answer = entry.Answer
		}
	}

	// Interaction logging is best effort: a store hiccup must not cost
	// the customer their answer.
	h.logChatEvents(req, resp)

	return c.JSON(resp)
}

func (h *ChatHandler) logChatEvents(req ChatRequest, resp ChatResponse) {
	payload := services.EventPayload{
		UserID: req.UserID,
		Data:   map[string]interface{}{"question": req.Question},
	}
	if _, err := h.events.LogEvent(req.ClientID, models.EventUserQuestion, payload, nil); err != nil {
		utils.LogWarn("failed to log user_question event", map[string]interface{}{
			"client_id": req.ClientID,
		})
	}

	if !resp.Matched {
		return
	}
	clickPayload := services.EventPayload{
		UserID: req.UserID,
		Data:   map[string]interface{}{"matched_question": resp.MatchedQuestion},
	}
	if _, err := h.events.LogEvent(req.ClientID, models.EventFAQClick, clickPayload, nil); err != nil {
		utils.LogWarn("failed to log faq_click event", map[string]interface{}{
			"client_id": req.ClientID,
		})
	}
}
