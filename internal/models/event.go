package models

import (
	"time"

	"gorm.io/datatypes"
)

// Event types the aggregator knows about. Ingestion deliberately accepts
// arbitrary strings; anything else is stored and counted only in totals.
const (
	EventFAQClick     = "faq_click"
	EventAIRequest    = "ai_request"
	EventUserQuestion = "user_question"
)

// Defaults applied at ingestion.
const (
	AnonymousUserID = "anonymous"
	SourceCustomer  = "customer"
	RoleUser        = "user"
)

// AnalyticsEvent is one immutable record of the append-only interaction
// log. Rows are never updated or deleted.
type AnalyticsEvent struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID  string         `gorm:"type:text;not null;index:idx_events_client_type,priority:1" json:"client_id"`
	UserID    string         `gorm:"type:text;not null" json:"user_id"`
	Role      string         `gorm:"type:text;not null" json:"role"`
	Source    string         `gorm:"type:text;not null" json:"source"`
	EventType string         `gorm:"type:text;not null;index:idx_events_client_type,priority:2" json:"event_type"`
	Data      datatypes.JSON `gorm:"type:json" json:"data,omitempty"`
	CreatedAt time.Time      `gorm:"not null;index" json:"created_at"`
}

func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}
