package models

import "time"

// FAQ is a stored question/answer pair scoped to one client. Question text
// is unique per client; near-duplicate phrasings are the matcher's problem,
// not the store's.
type FAQ struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID  string    `gorm:"type:text;not null;uniqueIndex:idx_faqs_client_question" json:"client_id"`
	Question  string    `gorm:"type:text;not null;uniqueIndex:idx_faqs_client_question" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	Popular   bool      `gorm:"not null;default:false" json:"popular"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FAQ) TableName() string {
	return "faqs"
}
