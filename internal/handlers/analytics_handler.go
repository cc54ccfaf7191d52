package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/supporthub/ai-support-bot-be/internal/core/analytics"
	"github.com/supporthub/ai-support-bot-be/internal/core/plan"
	"github.com/supporthub/ai-support-bot-be/internal/models"
	"github.com/supporthub/ai-support-bot-be/internal/services"
	"github.com/supporthub/ai-support-bot-be/internal/shared/apperr"
	"github.com/supporthub/ai-support-bot-be/internal/shared/utils"
)

type AnalyticsHandler struct {
	events     *services.EventService
	aggregator *analytics.Aggregator
	plans      plan.Resolver
}

func NewAnalyticsHandler(events *services.EventService, aggregator *analytics.Aggregator, plans plan.Resolver) *AnalyticsHandler {
	return &AnalyticsHandler{
		events:     events,
		aggregator: aggregator,
		plans:      plans,
	}
}

// LogEventRequest is the ingest payload. user_id and source ride inside
// data and default to "anonymous"/"customer" when absent.
type LogEventRequest struct {
	ClientID  string                 `json:"client_id"`
	EventType string                 `json:"event_type"`
	Data      map[string]interface{} `json:"data"`
	Timestamp string                 `json:"timestamp"`
}

// LogEvent godoc
// @Summary Log an analytics event
// @Description Appends one immutable interaction event for a client. Admin-sourced events are acknowledged but not stored.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param data body LogEventRequest true "Event data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /analytics/log [post]
func (h *AnalyticsHandler) LogEvent(c *fiber.Ctx) error {
	var req LogEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	if req.ClientID == "" || req.EventType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client_id and event_type are required",
		})
	}

	payload := services.EventPayload{Data: req.Data}
	if v, ok := req.Data["user_id"].(string); ok {
		payload.UserID = v
	}
	if v, ok := req.Data["source"].(string); ok {
		payload.Source = v
	}

	// Manager-originated events never reach the customer log.
	if payload.Source != "" && payload.Source != models.SourceCustomer {
		return c.JSON(fiber.Map{
			"success": false,
			"ignored": true,
			"reason":  "admin event not logged",
		})
	}

	var timestamp *time.Time
	if req.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			timestamp = &ts
		}
	}

	id, err := h.events.LogEvent(req.ClientID, req.EventType, payload, timestamp)
	if err != nil {
		if apperr.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		utils.LogError("failed to log analytics event", err, map[string]interface{}{
			"client_id":  req.ClientID,
			"event_type": req.EventType,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to log event",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"id":      id,
	})
}

// GetAnalytics godoc
// @Summary Get analytics snapshot
// @Description Returns usage totals, plan limits and the 30-day daily breakdown for a client
// @Tags Analytics
// @Produce json
// @Param client_id query string true "Client ID"
// @Success 200 {object} analytics.Snapshot
// @Failure 400 {object} map[string]string
// @Router /analytics/data [get]
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	clientID := c.Query("client_id")
	if clientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "client_id is required",
		})
	}

	planName := h.plans.PlanFor(clientID)
	snap, err := h.aggregator.ComputeAnalytics(clientID, planName, time.Now().UTC())
	if err != nil {
		utils.LogError("failed to compute analytics", err, map[string]interface{}{
			"client_id": clientID,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to compute analytics",
		})
	}

	return c.JSON(snap)
}
