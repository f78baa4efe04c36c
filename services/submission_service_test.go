// file: services/submission_service_test.go
package services

import (
	"testing"

	"github.com/hemanthrajvardhan/ctf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSubmit_CorrectFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db)
	user := createTestUser(t, db, "player@test.com", models.RolePlayer)
	challenge := createTestChallenge(t, db, "rsa101", 100, "flag{abc}", true)

	submission, err := svc.Submit(user.ID, challenge.ID, "flag{abc}", false)
	require.NoError(t, err)
	assert.True(t, submission.IsCorrect)
	assert.Equal(t, user.ID, submission.UserID)
	assert.Equal(t, challenge.ID, submission.ChallengeID)

	var solve models.Solve
	require.NoError(t, db.Where("user_id = ? AND challenge_id = ?", user.ID, challenge.ID).First(&solve).Error)
	assert.Equal(t, uint(100), solve.Points)
	assert.Equal(t, submission.SubmittedAt.Unix(), solve.SolvedAt.Unix())
}

func TestSubmit_WrongFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db)
	user := createTestUser(t, db, "player@test.com", models.RolePlayer)
	challenge := createTestChallenge(t, db, "rsa101", 100, "flag{abc}", true)

	submission, err := svc.Submit(user.ID, challenge.ID, "flag{wrong}", false)
	require.NoError(t, err)
	assert.False(t, submission.IsCorrect)

	// 错误提交也要进流水，但绝不产生解题标记
	var submissionCount, solveCount int64
	db.Model(&models.Submission{}).Count(&submissionCount)
	db.Model(&models.Solve{}).Count(&solveCount)
	assert.Equal(t, int64(1), submissionCount)
	assert.Equal(t, int64(0), solveCount)
}

func TestSubmit_FlagIsCaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db)
	user := createTestUser(t, db, "player@test.com", models.RolePlayer)
	challenge := createTestChallenge(t, db, "rsa101", 100, "flag{abc}", true)

	submission, err := svc.Submit(user.ID, challenge.ID, "FLAG{ABC}", false)
	require.NoError(t, err)
	assert.False(t, submission.IsCorrect)
}

func TestSubmit_RepeatedCorrectCountsOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db)
	user := createTestUser(t, db, "player@test.com", models.RolePlayer)
	challenge := createTestChallenge(t, db, "rsa101", 100, "flag{abc}", true)

	first, err := svc.Submit(user.ID, challenge.ID, "flag{abc}", false)
	require.NoError(t, err)
	second, err := svc.Submit(user.ID, challenge.ID, "flag{abc}", false)
	require.NoError(t, err)

	// 两次提交都记正确
	assert.True(t, first.IsCorrect)
	assert.True(t, second.IsCorrect)

	// 流水两条，解题标记只有一条，首解时间取第一次
	var submissionCount int64
	db.Model(&models.Submission{}).Where("user_id = ?", user.ID).Count(&submissionCount)
	assert.Equal(t, int64(2), submissionCount)

	var solves []models.Solve
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&solves).Error)
	require.Len(t, solves, 1)
	assert.Equal(t, first.SubmittedAt.Unix(), solves[0].SolvedAt.Unix())
}

func TestSubmit_DuplicateSolveInsertIsBenign(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "player@test.com", models.RolePlayer)
	challenge := createTestChallenge(t, db, "rsa101", 100, "flag{abc}", true)

	// 直接验证存储层兜底：第二条同 (user, challenge) 标记被唯一索引拒绝
	require.NoError(t, db.Create(&models.Solve{UserID: user.ID, ChallengeID: challenge.ID, Points: 100}).Error)
	err := db.Create(&models.Solve{UserID: user.ID, ChallengeID: challenge.ID, Points: 100}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSubmit_EmptyFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db)
	user := createTestUser(t, db, "player@test.com", models.RolePlayer)
	challenge := createTestChallenge(t, db, "rsa101", 100, "flag{abc}", true)

	_, err := svc.Submit(user.ID, challenge.ID, "", false)
	assert.ErrorIs(t, err, ErrEmptyFlag)

	var count int64
	db.Model(&models.Submission{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubmit_UnknownChallenge(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db)
	user := createTestUser(t, db, "player@test.com", models.RolePlayer)

	_, err := svc.Submit(user.ID, 999, "flag{abc}", false)
	assert.ErrorIs(t, err, ErrChallengeNotFound)
}

func TestSubmit_HiddenChallengeVisibility(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db)
	user := createTestUser(t, db, "player@test.com", models.RolePlayer)
	hidden := createTestChallenge(t, db, "secret", 200, "flag{hidden}", false)

	// 普通用户对隐藏题目提交等同题目不存在
	_, err := svc.Submit(user.ID, hidden.ID, "flag{hidden}", false)
	assert.ErrorIs(t, err, ErrChallengeNotFound)

	// 管理员身份可以提交
	submission, err := svc.Submit(user.ID, hidden.ID, "flag{hidden}", true)
	require.NoError(t, err)
	assert.True(t, submission.IsCorrect)
}

func TestUserSubmissions_OrderAndJoin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db)
	user := createTestUser(t, db, "player@test.com", models.RolePlayer)
	challenge := createTestChallenge(t, db, "rsa101", 100, "flag{abc}", true)

	_, err := svc.Submit(user.ID, challenge.ID, "flag{wrong}", false)
	require.NoError(t, err)
	_, err = svc.Submit(user.ID, challenge.ID, "flag{abc}", false)
	require.NoError(t, err)

	rows, err := svc.UserSubmissions(user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// 时间倒序：最后一次提交排最前
	assert.True(t, rows[0].IsCorrect)
	assert.False(t, rows[1].IsCorrect)
	assert.Equal(t, "rsa101", rows[0].ChallengeTitle)
	assert.Equal(t, uint(100), rows[0].Points)
}

func TestUserSubmissions_EmptyHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db)
	user := createTestUser(t, db, "player@test.com", models.RolePlayer)

	rows, err := svc.UserSubmissions(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Len(t, rows, 0)
}

func TestSolvedChallengeIDs_Distinct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubmissionService(db)
	user := createTestUser(t, db, "player@test.com", models.RolePlayer)
	other := createTestUser(t, db, "other@test.com", models.RolePlayer)
	chalA := createTestChallenge(t, db, "web-a", 100, "flag{a}", true)
	chalB := createTestChallenge(t, db, "web-b", 200, "flag{b}", true)

	for _, flag := range []string{"flag{a}", "flag{a}", "flag{nope}"} {
		_, err := svc.Submit(user.ID, chalA.ID, flag, false)
		require.NoError(t, err)
	}
	_, err := svc.Submit(user.ID, chalB.ID, "flag{b}", false)
	require.NoError(t, err)
	_, err = svc.Submit(other.ID, chalA.ID, "flag{a}", false)
	require.NoError(t, err)

	ids, err := svc.SolvedChallengeIDs(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint32{chalA.ID, chalB.ID}, ids)
}
