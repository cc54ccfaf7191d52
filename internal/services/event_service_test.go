package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/supporthub/ai-support-bot-be/internal/models"
	"github.com/supporthub/ai-support-bot-be/internal/repositories"
	"github.com/supporthub/ai-support-bot-be/internal/shared/apperr"
)

func newTestService(t *testing.T) (*EventService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.AnalyticsEvent{}))
	return NewEventService(repositories.NewEventRepo(db)), db
}

func TestLogEventValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.LogEvent("", models.EventFAQClick, EventPayload{}, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.LogEvent("c1", "", EventPayload{}, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestLogEventDefaults(t *testing.T) {
	svc, db := newTestService(t)

	id, err := svc.LogEvent("c1", models.EventFAQClick, EventPayload{}, nil)
	require.NoError(t, err)
	assert.NotZero(t, id)

	var ev models.AnalyticsEvent
	require.NoError(t, db.First(&ev, id).Error)
	assert.Equal(t, models.AnonymousUserID, ev.UserID)
	assert.Equal(t, models.SourceCustomer, ev.Source)
	assert.Equal(t, models.RoleUser, ev.Role)
	assert.WithinDuration(t, time.Now().UTC(), ev.CreatedAt, 5*time.Second)
}

func TestLogEventExplicitFields(t *testing.T) {
	svc, db := newTestService(t)

	ts := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	payload := EventPayload{
		UserID: "visitor-7",
		Source: "customer",
		Data:   map[string]interface{}{"question": "refund policy"},
	}
	id, err := svc.LogEvent("c1", models.EventUserQuestion, payload, &ts)
	require.NoError(t, err)

	var ev models.AnalyticsEvent
	require.NoError(t, db.First(&ev, id).Error)
	assert.Equal(t, "visitor-7", ev.UserID)
	assert.True(t, ts.Equal(ev.CreatedAt))
	assert.NotEmpty(t, ev.Data)
}

func TestLogEventAcceptsArbitraryEventType(t *testing.T) {
	svc, db := newTestService(t)

	id, err := svc.LogEvent("c1", "totally_custom_event", EventPayload{}, nil)
	require.NoError(t, err)

	var ev models.AnalyticsEvent
	require.NoError(t, db.First(&ev, id).Error)
	assert.Equal(t, "totally_custom_event", ev.EventType)
}

func TestLogEventAppendsSequentialIDs(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.LogEvent("c1", models.EventFAQClick, EventPayload{}, nil)
	require.NoError(t, err)
	second, err := svc.LogEvent("c1", models.EventFAQClick, EventPayload{}, nil)
	require.NoError(t, err)
	assert.Greater(t, second, first)
}
