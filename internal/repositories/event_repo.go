package repositories

import (
	"gorm.io/gorm"

	"github.com/supporthub/ai-support-bot-be/internal/models"
	"github.com/supporthub/ai-support-bot-be/internal/shared/apperr"
)

type EventRepo interface {
	// Append inserts one immutable event record and returns its id.
	Append(event *models.AnalyticsEvent) (uint, error)
	CountByClient(clientID string) (int64, error)
}

type eventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return &eventRepo{db: db}
}

func (r *eventRepo) Append(event *models.AnalyticsEvent) (uint, error) {
	if err := r.db.Create(event).Error; err != nil {
		return 0, apperr.Store(err)
	}
	return event.ID, nil
}

func (r *eventRepo) CountByClient(clientID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.AnalyticsEvent{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	if err != nil {
		return 0, apperr.Store(err)
	}
	return count, nil
}
