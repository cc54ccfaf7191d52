// Package analytics derives dashboard usage metrics from the append-only
// interaction event log.
package analytics

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/supporthub/ai-support-bot-be/internal/core/plan"
	"github.com/supporthub/ai-support-bot-be/internal/models"
	"github.com/supporthub/ai-support-bot-be/internal/shared/apperr"
)

// WindowDays is the trailing window for the daily breakdown.
const WindowDays = 30

const dayLayout = "2006-01-02"

// Aggregator computes usage snapshots from the event log.
type Aggregator struct {
	db *gorm.DB
}

// NewAggregator creates a new aggregator over the event store.
func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// ComputeAnalytics derives the five dashboard metrics for one client. All
// sub-queries run inside a single read transaction so an event appended
// mid-computation cannot skew some aggregates and not others. Counters are
// scoped to customer-originated user events; unknown event types land in
// the totals but never in the typed counters.
func (a *Aggregator) ComputeAnalytics(clientID, planName string, now time.Time) (*Snapshot, error) {
	limit := plan.LimitFor(planName)
	snap := &Snapshot{
		FaqUsage: Usage{Limit: limit},
		AiUsage:  Usage{Limit: limit},
		Daily: DailySeries{
			Labels:    []string{},
			FaqCounts: []int64{},
			AiCounts:  []int64{},
		},
	}

	err := a.db.Transaction(func(tx *gorm.DB) error {
		scoped := func() *gorm.DB {
			return tx.Model(&models.AnalyticsEvent{}).
				Where("client_id = ? AND role = ? AND source = ?",
					clientID, models.RoleUser, models.SourceCustomer)
		}

		if err := scoped().Count(&snap.TotalInteractions).Error; err != nil {
			return err
		}
		if err := scoped().Distinct("user_id").Count(&snap.ActiveUsers).Error; err != nil {
			return err
		}
		if err := scoped().Where("event_type = ?", models.EventFAQClick).
			Count(&snap.FaqUsage.Used).Error; err != nil {
			return err
		}
		if err := scoped().Where("event_type = ?", models.EventAIRequest).
			Count(&snap.AiUsage.Used).Error; err != nil {
			return err
		}

		windowStart := now.AddDate(0, 0, -WindowDays)
		var rows []models.AnalyticsEvent
		if err := scoped().
			Select("event_type", "created_at").
			Where("event_type IN ?", []string{models.EventFAQClick, models.EventAIRequest}).
			Where("created_at >= ? AND created_at <= ?", windowStart, now).
			Find(&rows).Error; err != nil {
			return err
		}
		snap.Daily = bucketByDay(rows)

		return nil
	})
	if err != nil {
		return nil, apperr.Store(err)
	}

	return snap, nil
}

// bucketByDay folds window events into per-day faq_click / ai_request
// counts, ascending by day. Days without activity are omitted.
func bucketByDay(rows []models.AnalyticsEvent) DailySeries {
	type counts struct{ faq, ai int64 }
	byDay := make(map[string]*counts)
	for _, ev := range rows {
		day := ev.CreatedAt.UTC().Format(dayLayout)
		c, ok := byDay[day]
		if !ok {
			c = &counts{}
			byDay[day] = c
		}
		switch ev.EventType {
		case models.EventFAQClick:
			c.faq++
		case models.EventAIRequest:
			c.ai++
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	series := DailySeries{
		Labels:    make([]string, 0, len(days)),
		FaqCounts: make([]int64, 0, len(days)),
		AiCounts:  make([]int64, 0, len(days)),
	}
	for _, day := range days {
		series.Labels = append(series.Labels, day)
		series.FaqCounts = append(series.FaqCounts, byDay[day].faq)
		series.AiCounts = append(series.AiCounts, byDay[day].ai)
	}
	return series
}
