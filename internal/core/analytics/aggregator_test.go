package analytics

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/supporthub/ai-support-bot-be/internal/core/plan"
	"github.com/supporthub/ai-support-bot-be/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database shared across queries.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.AnalyticsEvent{}))
	return db
}

func seedEvent(t *testing.T, db *gorm.DB, clientID, userID, role, source, eventType string, createdAt time.Time) {
	t.Helper()
	ev := models.AnalyticsEvent{
		ClientID:  clientID,
		UserID:    userID,
		Role:      role,
		Source:    source,
		EventType: eventType,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&ev).Error)
}

func TestComputeAnalyticsScoping(t *testing.T) {
	db := newTestDB(t)
	agg := NewAggregator(db)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	// In scope: customer-originated user events for c1.
	seedEvent(t, db, "c1", "u1", "user", "customer", models.EventFAQClick, now.AddDate(0, 0, -1))
	seedEvent(t, db, "c1", "u2", "user", "customer", models.EventFAQClick, now.AddDate(0, 0, -2))
	seedEvent(t, db, "c1", "u1", "user", "customer", models.EventAIRequest, now.AddDate(0, 0, -2))

	// Out of scope: wrong source, wrong role, wrong client.
	seedEvent(t, db, "c1", "mgr", "user", "dashboard", models.EventFAQClick, now)
	seedEvent(t, db, "c1", "u3", "assistant", "customer", models.EventAIRequest, now)
	seedEvent(t, db, "c2", "u1", "user", "customer", models.EventFAQClick, now)

	snap, err := agg.ComputeAnalytics("c1", "basic", now)
	require.NoError(t, err)

	assert.Equal(t, int64(3), snap.TotalInteractions)
	assert.Equal(t, int64(2), snap.ActiveUsers)
	assert.Equal(t, int64(2), snap.FaqUsage.Used)
	assert.Equal(t, int64(1), snap.AiUsage.Used)
	assert.Equal(t, int64(1000), snap.FaqUsage.Limit)
	assert.Equal(t, int64(1000), snap.AiUsage.Limit)
	assert.Equal(t, int64(0), snap.NewLeads)
	assert.LessOrEqual(t, snap.ActiveUsers, snap.TotalInteractions)
}

func TestComputeAnalyticsDeterministic(t *testing.T) {
	db := newTestDB(t)
	agg := NewAggregator(db)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	seedEvent(t, db, "c1", "u1", "user", "customer", models.EventFAQClick, now.AddDate(0, 0, -3))
	seedEvent(t, db, "c1", "u2", "user", "customer", models.EventAIRequest, now.AddDate(0, 0, -1))

	first, err := agg.ComputeAnalytics("c1", "standard", now)
	require.NoError(t, err)
	second, err := agg.ComputeAnalytics("c1", "standard", now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeAnalyticsUnknownEventTypes(t *testing.T) {
	db := newTestDB(t)
	agg := NewAggregator(db)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	seedEvent(t, db, "c1", "u1", "user", "customer", "widget_opened", now.AddDate(0, 0, -1))
	seedEvent(t, db, "c1", "u1", "user", "customer", models.EventUserQuestion, now.AddDate(0, 0, -1))

	snap, err := agg.ComputeAnalytics("c1", "demo", now)
	require.NoError(t, err)

	// Unknown and untyped events count toward totals only.
	assert.Equal(t, int64(2), snap.TotalInteractions)
	assert.Equal(t, int64(0), snap.FaqUsage.Used)
	assert.Equal(t, int64(0), snap.AiUsage.Used)
	assert.Empty(t, snap.Daily.Labels)
}

func TestComputeAnalyticsDailyWindow(t *testing.T) {
	db := newTestDB(t)
	agg := NewAggregator(db)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	seedEvent(t, db, "c1", "u1", "user", "customer", models.EventFAQClick, now.AddDate(0, 0, -31))
	seedEvent(t, db, "c1", "u1", "user", "customer", models.EventFAQClick, now.AddDate(0, 0, -5))
	seedEvent(t, db, "c1", "u1", "user", "customer", models.EventAIRequest, now.AddDate(0, 0, -5))
	seedEvent(t, db, "c1", "u2", "user", "customer", models.EventFAQClick, now.AddDate(0, 0, -2))

	snap, err := agg.ComputeAnalytics("c1", "demo", now)
	require.NoError(t, err)

	// The 31-day-old event is excluded from the daily series but still
	// counted in the totals.
	assert.Equal(t, int64(4), snap.TotalInteractions)
	require.Equal(t, []string{"2026-08-24", "2026-08-27"}, snap.Daily.Labels)
	assert.Equal(t, []int64{1, 1}, snap.Daily.FaqCounts)
	assert.Equal(t, []int64{1, 0}, snap.Daily.AiCounts)
}

func TestComputeAnalyticsEmptyLog(t *testing.T) {
	db := newTestDB(t)
	agg := NewAggregator(db)
	now := time.Now().UTC()

	snap, err := agg.ComputeAnalytics("c1", "premium", now)
	require.NoError(t, err)

	assert.Equal(t, int64(0), snap.TotalInteractions)
	assert.Equal(t, int64(0), snap.ActiveUsers)
	assert.Equal(t, plan.Unlimited, snap.FaqUsage.Limit)
	assert.Equal(t, plan.Unlimited, snap.AiUsage.Limit)
	assert.Empty(t, snap.Daily.Labels)
	assert.Empty(t, snap.Daily.FaqCounts)
	assert.Empty(t, snap.Daily.AiCounts)
}
