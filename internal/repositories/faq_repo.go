package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/supporthub/ai-support-bot-be/internal/core/match"
	"github.com/supporthub/ai-support-bot-be/internal/models"
	"github.com/supporthub/ai-support-bot-be/internal/shared/apperr"
)

type FaqRepo interface {
	// All returns the client's FAQs ordered popular-first then by question,
	// the order the widget displays and the matcher scans.
	All(clientID string) ([]models.FAQ, error)
	// Catalog loads the client's FAQs into an ordered matcher catalog.
	Catalog(clientID string) (*match.Catalog, error)
	// Upsert creates the FAQ or, if the client already has this exact
	// question, updates its answer and popular flag. Reports creation.
	Upsert(clientID, question, answer string, popular bool) (created bool, err error)
	Delete(clientID string, faqID uint) error
	CountByClient(clientID string) (int64, error)
}

type faqRepo struct {
	db *gorm.DB
}

func NewFaqRepo(db *gorm.DB) FaqRepo {
	return &faqRepo{db: db}
}

func (r *faqRepo) All(clientID string) ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := r.db.Where("client_id = ?", clientID).
		Order("popular DESC, question ASC").
		Find(&faqs).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return faqs, nil
}

func (r *faqRepo) Catalog(clientID string) (*match.Catalog, error) {
	faqs, err := r.All(clientID)
	if err != nil {
		return nil, err
	}

	catalog := match.NewCatalog()
	for _, f := range faqs {
		catalog.Add(f.Question, match.Entry{
			ID:      f.ID,
			Answer:  f.Answer,
			Popular: f.Popular,
		})
	}
	return catalog, nil
}

func (r *faqRepo) Upsert(clientID, question, answer string, popular bool) (bool, error) {
	var existing models.FAQ
	err := r.db.Where("client_id = ? AND question = ?", clientID, question).
		First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"answer":  answer,
			"popular": popular,
		}
		if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
			return false, apperr.Store(err)
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		faq := models.FAQ{
			ClientID: clientID,
			Question: question,
			Answer:   answer,
			Popular:  popular,
		}
		if err := r.db.Create(&faq).Error; err != nil {
			return false, apperr.Store(err)
		}
		return true, nil
	default:
		return false, apperr.Store(err)
	}
}

func (r *faqRepo) Delete(clientID string, faqID uint) error {
	err := r.db.Where("client_id = ? AND id = ?", clientID, faqID).
		Delete(&models.FAQ{}).Error
	if err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (r *faqRepo) CountByClient(clientID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.FAQ{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	if err != nil {
		return 0, apperr.Store(err)
	}
	return count, nil
}
