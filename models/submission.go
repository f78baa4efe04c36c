// file: models/submission.go
package models

import (
	"time"
)

// Submission 只增不改的提交流水，正确与否都记录一行
type Submission struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	UserID        uint32    `gorm:"not null;index" json:"user_id"`
	ChallengeID   uint32    `gorm:"not null;index" json:"challenge_id"`
	FlagSubmitted string    `gorm:"size:255;not null" json:"flag_submitted"`
	IsCorrect     bool      `gorm:"not null" json:"is_correct"`
	SubmittedAt   time.Time `gorm:"not null" json:"submitted_at"`
}

func (Submission) TableName() string {
	return "submissions"
}
