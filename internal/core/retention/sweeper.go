// Package retention runs the scheduled audit-log cleanup. The analytics
// event log is append-only and never touched here.
package retention

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Pruner deletes records older than a cutoff and reports how many went.
type Pruner interface {
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

// Sweeper prunes expired audit logs on a nightly schedule.
type Sweeper struct {
	cron   *cron.Cron
	pruner Pruner
	days   int
}

// NewSweeper creates a sweeper keeping the trailing `days` of audit logs.
func NewSweeper(pruner Pruner, days int) *Sweeper {
	return &Sweeper{
		cron:   cron.New(cron.WithSeconds()),
		pruner: pruner,
		days:   days,
	}
}

// Start schedules the nightly sweep.
func (s *Sweeper) Start() error {
	// 03:00 server time, daily
	if _, err := s.cron.AddFunc("0 0 3 * * *", s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("⏰ Audit retention sweeper started (keep %d days)", s.days)
	return nil
}

// Stop stops the scheduler.
func (s *Sweeper) Stop() {
	s.cron.Stop()
	log.Println("⏰ Audit retention sweeper stopped")
}

// Sweep deletes audit logs older than the retention horizon.
func (s *Sweeper) Sweep() {
	cutoff := time.Now().AddDate(0, 0, -s.days)
	deleted, err := s.pruner.DeleteOlderThan(cutoff)
	if err != nil {
		log.Printf("❌ Audit retention sweep failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("🧹 Audit retention sweep removed %d records", deleted)
	}
}
