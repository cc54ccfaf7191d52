package repositories

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/supporthub/ai-support-bot-be/internal/models"
	"github.com/supporthub/ai-support-bot-be/internal/shared/apperr"
)

type ClientRepo interface {
	GetByID(id string) (*models.Client, error)
	GetByEmail(email string) (*models.Client, error)
	Create(client *models.Client) error
	// PlanFor implements plan.Resolver: unknown clients resolve to demo.
	PlanFor(clientID string) string
	SaveWelcomeMessage(clientID, message string) error
	GetWelcomeMessage(clientID string) (string, error)
	// EnsureIntegrationCode returns the client's widget embed code,
	// generating one on first use.
	EnsureIntegrationCode(clientID string) (string, error)
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepo {
	return &clientRepo{db: db}
}

func (r *clientRepo) GetByID(id string) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("id = ?", id).First(&client).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return &client, nil
}

func (r *clientRepo) GetByEmail(email string) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&client).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return &client, nil
}

func (r *clientRepo) Create(client *models.Client) error {
	if client.Email == "" {
		return apperr.Validation("email is required")
	}
	client.Email = strings.ToLower(client.Email)
	if client.SubscriptionPlan == "" {
		client.SubscriptionPlan = "demo"
	}
	if err := r.db.Create(client).Error; err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (r *clientRepo) PlanFor(clientID string) string {
	var client models.Client
	err := r.db.Select("subscription_plan").
		Where("id = ?", clientID).
		First(&client).Error
	if err != nil || client.SubscriptionPlan == "" {
		return "demo"
	}
	return client.SubscriptionPlan
}

func (r *clientRepo) SaveWelcomeMessage(clientID, message string) error {
	wm := models.WelcomeMessage{ClientID: clientID, Message: message}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"message"}),
	}).Create(&wm).Error
	if err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (r *clientRepo) GetWelcomeMessage(clientID string) (string, error) {
	var wm models.WelcomeMessage
	err := r.db.Where("client_id = ?", clientID).First(&wm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", apperr.Store(err)
	}
	return wm.Message, nil
}

func (r *clientRepo) EnsureIntegrationCode(clientID string) (string, error) {
	client, err := r.GetByID(clientID)
	if err != nil {
		return "", err
	}
	if client.IntegrationCode != "" {
		return client.IntegrationCode, nil
	}

	code := uuid.NewString()
	err = r.db.Model(&models.Client{}).
		Where("id = ?", clientID).
		Update("integration_code", code).Error
	if err != nil {
		return "", apperr.Store(err)
	}
	return code, nil
}
