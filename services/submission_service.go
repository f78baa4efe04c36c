// file: services/submission_service.go
package services

import (
	"errors"
	"time"

	"github.com/hemanthrajvardhan/ctf/dto"
	"github.com/hemanthrajvardhan/ctf/models"
	"gorm.io/gorm"
)

var (
	// ErrChallengeNotFound 题目不存在，或对当前用户不可见
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrEmptyFlag 空 Flag 属于客户端错误，不落提交记录
	ErrEmptyFlag = errors.New("flag must not be empty")
)

// SubmissionService 提交流水与计分的核心服务
type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

// Submit 处理一次 Flag 提交：
//  1. 校验题目存在且对提交者可见（管理员不受可见性限制）
//  2. 比对 Flag 得出正误
//  3. 无条件追加一条提交流水，正确与否、是否重复都要记
//  4. 首次答对时在同一事务内写入解题标记，分值即时快照；
//     (user_id, challenge_id) 唯一索引兜底并发，重复键按"已解出"处理
func (s *SubmissionService) Submit(userID uint32, challengeID uint32, flag string, includeHidden bool) (*models.Submission, error) {
	if flag == "" {
		return nil, ErrEmptyFlag
	}

	var challenge models.Challenge
	if err := s.db.First(&challenge, challengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	if !challenge.IsVisible && !includeHidden {
		// 隐藏题目对普通用户等同不存在
		return nil, ErrChallengeNotFound
	}

	submission := models.Submission{
		UserID:        userID,
		ChallengeID:   challengeID,
		FlagSubmitted: flag,
		IsCorrect:     challenge.CheckFlag(flag),
		SubmittedAt:   time.Now(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}

		if submission.IsCorrect {
			solve := models.Solve{
				UserID:      userID,
				ChallengeID: challengeID,
				Points:      challenge.Points,
				SolvedAt:    submission.SubmittedAt,
			}
			if err := tx.Create(&solve).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &submission, nil
}

// UserSubmissions 用户提交历史，联题目标题与当前分值，按时间倒序
func (s *SubmissionService) UserSubmissions(userID uint32) ([]dto.SubmissionWithChallenge, error) {
	var rows []dto.SubmissionWithChallenge
	err := s.db.Table("submissions s").
		Select("s.id, s.user_id, s.challenge_id, s.flag_submitted, s.is_correct, s.submitted_at, c.title AS challenge_title, c.points").
		Joins("JOIN challenges c ON s.challenge_id = c.id").
		Where("s.user_id = ?", userID).
		Order("s.submitted_at DESC, s.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.SubmissionWithChallenge{}
	}
	return rows, nil
}

// SolvedChallengeIDs 用户已解出的题目 ID 集合。
// 以提交流水中存在正确记录为准，与解题标记的并发簿记无关。
func (s *SubmissionService) SolvedChallengeIDs(userID uint32) ([]uint32, error) {
	var ids []uint32
	err := s.db.Model(&models.Submission{}).
		Distinct().
		Where("user_id = ? AND is_correct = ?", userID, true).
		Order("challenge_id ASC").
		Pluck("challenge_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uint32{}
	}
	return ids, nil
}
