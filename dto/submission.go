// file: dto/submission.go
package dto

import "time"

type SubmitFlagReq struct {
	ChallengeID uint32 `json:"challenge_id" binding:"required"`
	Flag        string `json:"flag"`
}

// SubmissionWithChallenge 提交记录联上题目标题与当前分值
type SubmissionWithChallenge struct {
	ID             uint64    `json:"id"`
	UserID         uint32    `json:"user_id"`
	ChallengeID    uint32    `json:"challenge_id"`
	FlagSubmitted  string    `json:"flag_submitted"`
	IsCorrect      bool      `json:"is_correct"`
	SubmittedAt    time.Time `json:"submitted_at"`
	ChallengeTitle string    `json:"challenge_title"`
	Points         uint      `json:"points"`
}

// LeaderboardEntry 排行榜条目，按总分降序、首解时间升序排列
type LeaderboardEntry struct {
	UserID      uint32     `json:"user_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	SolvedCount int        `json:"solved_count"`
	TotalPoints uint       `json:"total_points"`
	FirstSolve  *time.Time `json:"first_solve,omitempty"`
}
