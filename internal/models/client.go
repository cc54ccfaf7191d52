package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a tenant: it owns its FAQ set, its slice of the event log and
// a subscription plan that bounds usage.
type Client struct {
	ID               string    `gorm:"type:text;primaryKey" json:"id"`
	Email            string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Name             string    `gorm:"type:text" json:"name"`
	Company          string    `gorm:"type:text" json:"company"`
	SubscriptionPlan string    `gorm:"type:text;not null;default:demo" json:"subscription_plan"`
	Status           string    `gorm:"type:text;not null;default:active" json:"status"`
	IntegrationCode  string    `gorm:"type:text" json:"integration_code"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}

// BeforeCreate sets UUID before creating
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// WelcomeMessage is the widget greeting a manager configures per client.
type WelcomeMessage struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID string `gorm:"type:text;not null;uniqueIndex" json:"client_id"`
	Message  string `gorm:"type:text" json:"message"`
}

func (WelcomeMessage) TableName() string {
	return "welcome_messages"
}
