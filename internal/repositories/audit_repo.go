package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/supporthub/ai-support-bot-be/internal/models"
	"github.com/supporthub/ai-support-bot-be/internal/shared/apperr"
)

type AuditRepo interface {
	Log(clientID, action, performedBy string) error
	ByClient(clientID string, limit int) ([]models.AuditLog, error)
	// DeleteOlderThan implements retention.Pruner.
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type auditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) AuditRepo {
	return &auditRepo{db: db}
}

func (r *auditRepo) Log(clientID, action, performedBy string) error {
	record := models.AuditLog{
		ClientID:    clientID,
		Action:      action,
		PerformedBy: performedBy,
	}
	if err := r.db.Create(&record).Error; err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (r *auditRepo) ByClient(clientID string, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []models.AuditLog
	err := r.db.Where("client_id = ?", clientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return logs, nil
}

func (r *auditRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})
	if res.Error != nil {
		return 0, apperr.Store(res.Error)
	}
	return res.RowsAffected, nil
}
