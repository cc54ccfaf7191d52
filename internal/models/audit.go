package models

import "time"

// AuditLog records manager actions (FAQ edits, deletions). Pruned by the
// retention sweeper; the analytics event log is never pruned.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID    string    `gorm:"type:text;index" json:"client_id"`
	Action      string    `gorm:"type:text;not null" json:"action"`
	PerformedBy string    `gorm:"type:text" json:"performed_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
