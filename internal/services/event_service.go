package services

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/supporthub/ai-support-bot-be/internal/models"
	"github.com/supporthub/ai-support-bot-be/internal/repositories"
	"github.com/supporthub/ai-support-bot-be/internal/shared/apperr"
)

// EventPayload carries the optional fields of an ingested event. Anything
// in Data is stored verbatim alongside the record.
type EventPayload struct {
	UserID string
	Source string
	Data   map[string]interface{}
}

// EventService owns event ingestion: required-field validation, defaults,
// timestamp assignment, then a single immutable append.
type EventService struct {
	events repositories.EventRepo
}

func NewEventService(events repositories.EventRepo) *EventService {
	return &EventService{events: events}
}

// LogEvent validates and appends one interaction event, returning the new
// record's id. clientID and eventType are required; userID defaults to the
// anonymous sentinel, source to "customer", role is always "user" on this
// path, and a nil or unparsable timestamp becomes server time (UTC).
// Event types are deliberately not validated against the known set.
func (s *EventService) LogEvent(clientID, eventType string, payload EventPayload, timestamp *time.Time) (uint, error) {
	if clientID == "" {
		return 0, apperr.Validation("client_id is required")
	}
	if eventType == "" {
		return 0, apperr.Validation("event_type is required")
	}

	userID := payload.UserID
	if userID == "" {
		userID = models.AnonymousUserID
	}
	source := payload.Source
	if source == "" {
		source = models.SourceCustomer
	}

	createdAt := time.Now().UTC()
	if timestamp != nil && !timestamp.IsZero() {
		createdAt = timestamp.UTC()
	}

	var data datatypes.JSON
	if len(payload.Data) > 0 {
		raw, err := json.Marshal(payload.Data)
		if err != nil {
			return 0, apperr.Validation("data is not serializable")
		}
		data = datatypes.JSON(raw)
	}

	event := &models.AnalyticsEvent{
		ClientID:  clientID,
		UserID:    userID,
		Role:      models.RoleUser,
		Source:    source,
		EventType: eventType,
		Data:      data,
		CreatedAt: createdAt,
	}
	return s.events.Append(event)
}
