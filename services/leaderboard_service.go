// file: services/leaderboard_service.go
package services

import (
	"sort"

	"github.com/hemanthrajvardhan/ctf/dto"
	"github.com/hemanthrajvardhan/ctf/models"
	"gorm.io/gorm"
)

// LeaderboardService 每次读取时从解题标记重新聚合，不维护增量缓存
type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// Compute 生成排行榜，只统计 player 角色。
// 总分为各题首解时刻快照分值之和；排序规则：
// 总分降序 → 首解时间升序（无解题记录者排在所有有时间者之后）
// → 解题数降序 → 用户 ID 升序保证稳定。
func (s *LeaderboardService) Compute() ([]dto.LeaderboardEntry, error) {
	var players []models.User
	if err := s.db.Where("role = ?", models.RolePlayer).Find(&players).Error; err != nil {
		return nil, err
	}

	var solves []models.Solve
	if err := s.db.Find(&solves).Error; err != nil {
		return nil, err
	}

	type aggregate struct {
		totalPoints uint
		solvedCount int
		firstSolve  *models.Solve
	}
	byUser := make(map[uint32]*aggregate, len(players))
	for i := range solves {
		solve := &solves[i]
		agg, ok := byUser[solve.UserID]
		if !ok {
			agg = &aggregate{}
			byUser[solve.UserID] = agg
		}
		agg.totalPoints += solve.Points
		agg.solvedCount++
		if agg.firstSolve == nil || solve.SolvedAt.Before(agg.firstSolve.SolvedAt) {
			agg.firstSolve = solve
		}
	}

	entries := make([]dto.LeaderboardEntry, 0, len(players))
	for _, player := range players {
		entry := dto.LeaderboardEntry{
			UserID: player.ID,
			Name:   player.Name,
			Email:  player.Email,
		}
		if agg, ok := byUser[player.ID]; ok {
			entry.SolvedCount = agg.solvedCount
			entry.TotalPoints = agg.totalPoints
			first := agg.firstSolve.SolvedAt
			entry.FirstSolve = &first
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		switch {
		case a.FirstSolve != nil && b.FirstSolve != nil:
			if !a.FirstSolve.Equal(*b.FirstSolve) {
				return a.FirstSolve.Before(*b.FirstSolve)
			}
		case a.FirstSolve != nil:
			return true
		case b.FirstSolve != nil:
			return false
		}
		if a.SolvedCount != b.SolvedCount {
			return a.SolvedCount > b.SolvedCount
		}
		return a.UserID < b.UserID
	})

	return entries, nil
}
