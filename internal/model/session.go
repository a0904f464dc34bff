package model

import "github.com/google/uuid"

// DiagnosisSession records one upload event. It is not an authentication
// session; the name follows the diagnosis-history domain.
//
// Prediction, Disease and Description are written empty at creation and
// filled in once a classification model is integrated.
type DiagnosisSession struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        string    `gorm:"size:50;not null" json:"date"`
	Prediction  string    `gorm:"type:text" json:"prediction"`
	Disease     string    `gorm:"type:text" json:"disease"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:255;not null" json:"image"`
	FileName    string    `gorm:"size:255" json:"file_name"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// SessionDateFormat is the display timestamp written on every record,
// e.g. "Aug/28/2026 9:41 AM".
const SessionDateFormat = "Jan/02/2006 3:04 PM"
