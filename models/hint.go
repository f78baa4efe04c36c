// file: models/hint.go
package models

// Hint 归属于单个题目，按 position 升序展示
type Hint struct {
	ID          uint32 `gorm:"primarykey" json:"id"`
	ChallengeID uint32 `gorm:"not null;index" json:"challenge_id"`
	Content     string `gorm:"type:text;not null" json:"content"`
	Cost        uint   `gorm:"default:0" json:"cost"`
	UnlockTime  int64  `gorm:"default:0" json:"unlock_time"`
	Position    uint   `gorm:"default:0" json:"position"`
}

func (Hint) TableName() string {
	return "hints"
}
