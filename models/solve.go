// file: models/solve.go
package models

import (
	"time"
)

// Solve 首次解题标记。(user_id, challenge_id) 唯一索引保证
// 同一用户对同一题目至多计分一次，并发重复提交时由存储层拒绝第二条。
// Points 在解题时刻快照，后续修改题目分值不影响已得分。
type Solve struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	UserID      uint32    `gorm:"uniqueIndex:unique_user_challenge;not null" json:"user_id"`
	ChallengeID uint32    `gorm:"uniqueIndex:unique_user_challenge;not null" json:"challenge_id"`
	Points      uint      `gorm:"not null" json:"points"`
	SolvedAt    time.Time `gorm:"not null" json:"solved_at"`
}

func (Solve) TableName() string {
	return "solves"
}
