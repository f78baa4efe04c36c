// file: services/leaderboard_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/hemanthrajvardhan/ctf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func addSolve(t *testing.T, db *gorm.DB, userID, challengeID uint32, points uint, solvedAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Solve{
		UserID:      userID,
		ChallengeID: challengeID,
		Points:      points,
		SolvedAt:    solvedAt,
	}).Error)
}

func TestCompute_TotalsAndCounts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)
	alice := createTestUser(t, db, "alice@test.com", models.RolePlayer)
	bob := createTestUser(t, db, "bob@test.com", models.RolePlayer)
	chalA := createTestChallenge(t, db, "web-a", 100, "flag{a}", true)
	chalB := createTestChallenge(t, db, "web-b", 200, "flag{b}", true)

	now := time.Now()
	addSolve(t, db, alice.ID, chalA.ID, 100, now)
	addSolve(t, db, alice.ID, chalB.ID, 200, now.Add(time.Minute))
	addSolve(t, db, bob.ID, chalA.ID, 100, now.Add(2*time.Minute))

	entries, err := svc.Compute()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, alice.ID, entries[0].UserID)
	assert.Equal(t, uint(300), entries[0].TotalPoints)
	assert.Equal(t, 2, entries[0].SolvedCount)
	assert.Equal(t, bob.ID, entries[1].UserID)
	assert.Equal(t, uint(100), entries[1].TotalPoints)
	assert.Equal(t, 1, entries[1].SolvedCount)
}

func TestCompute_TieBrokenByEarliestFirstSolve(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)
	early := createTestUser(t, db, "early@test.com", models.RolePlayer)
	late := createTestUser(t, db, "late@test.com", models.RolePlayer)
	chalA := createTestChallenge(t, db, "web-a", 300, "flag{a}", true)
	chalB := createTestChallenge(t, db, "web-b", 300, "flag{b}", true)

	t1 := time.Now()
	t2 := t1.Add(10 * time.Minute)
	addSolve(t, db, late.ID, chalB.ID, 300, t2)
	addSolve(t, db, early.ID, chalA.ID, 300, t1)

	entries, err := svc.Compute()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// 同分时先解出者排前
	assert.Equal(t, early.ID, entries[0].UserID)
	assert.Equal(t, late.ID, entries[1].UserID)
}

func TestCompute_ZeroSolvePlayersListedLast(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)
	solver := createTestUser(t, db, "solver@test.com", models.RolePlayer)
	idle := createTestUser(t, db, "idle@test.com", models.RolePlayer)
	freebie := createTestChallenge(t, db, "freebie", 0, "flag{free}", true)

	// 0 分题：有首解时间的 0 分选手仍要排在无解题记录者之前
	addSolve(t, db, solver.ID, freebie.ID, 0, time.Now())

	entries, err := svc.Compute()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, solver.ID, entries[0].UserID)
	assert.Equal(t, uint(0), entries[0].TotalPoints)
	assert.Equal(t, idle.ID, entries[1].UserID)
	assert.Equal(t, 0, entries[1].SolvedCount)
	assert.Equal(t, uint(0), entries[1].TotalPoints)
	assert.Nil(t, entries[1].FirstSolve)
}

func TestCompute_AdminsExcluded(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)
	admin := createTestUser(t, db, "admin@test.com", models.RoleAdmin)
	player := createTestUser(t, db, "player@test.com", models.RolePlayer)
	challenge := createTestChallenge(t, db, "web-a", 100, "flag{a}", true)

	addSolve(t, db, admin.ID, challenge.ID, 100, time.Now())
	addSolve(t, db, player.ID, challenge.ID, 100, time.Now())

	entries, err := svc.Compute()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, player.ID, entries[0].UserID)
}

func TestCompute_PointsSnapshotSurvivesChallengeEdit(t *testing.T) {
	db := setupTestDB(t)
	submissionSvc := NewSubmissionService(db)
	leaderboardSvc := NewLeaderboardService(db)
	player := createTestUser(t, db, "player@test.com", models.RolePlayer)
	challenge := createTestChallenge(t, db, "rsa101", 100, "flag{abc}", true)

	_, err := submissionSvc.Submit(player.ID, challenge.ID, "flag{abc}", false)
	require.NoError(t, err)

	// 解题后上调分值，历史得分保持快照不变
	require.NoError(t, db.Model(&models.Challenge{}).Where("id = ?", challenge.ID).Update("points", 500).Error)

	entries, err := leaderboardSvc.Compute()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(100), entries[0].TotalPoints)
}

func TestCompute_StableOrderOnFullTie(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)
	first := createTestUser(t, db, "first@test.com", models.RolePlayer)
	second := createTestUser(t, db, "second@test.com", models.RolePlayer)
	chalA := createTestChallenge(t, db, "web-a", 100, "flag{a}", true)
	chalB := createTestChallenge(t, db, "web-b", 100, "flag{b}", true)

	ts := time.Now()
	addSolve(t, db, first.ID, chalA.ID, 100, ts)
	addSolve(t, db, second.ID, chalB.ID, 100, ts)

	entries, err := svc.Compute()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// 分数、时间、解题数全同时按用户 ID 稳定排序
	assert.Equal(t, first.ID, entries[0].UserID)
	assert.Equal(t, second.ID, entries[1].UserID)
}
