package models

import "time"

type Alert struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index" json:"user_id"`
	Type       string    `gorm:"size:20" json:"type"` // "warning" | "info"
	Message    string    `gorm:"type:text" json:"message"`
	AnalysisID *uint     `gorm:"index" json:"analysis_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
