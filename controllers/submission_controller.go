// file: controllers/submission_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hemanthrajvardhan/ctf/dto"
	"github.com/hemanthrajvardhan/ctf/middlewares"
	"github.com/hemanthrajvardhan/ctf/services"
	"github.com/hemanthrajvardhan/ctf/utils"
)

type SubmissionController struct {
	Submissions *services.SubmissionService
}

func NewSubmissionController(submissions *services.SubmissionService) *SubmissionController {
	return &SubmissionController{Submissions: submissions}
}

// Submit 提交 Flag，无论对错都落一条流水并原样返回
func (ctl *SubmissionController) Submit(c *gin.Context) {
	var req dto.SubmitFlagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user := middlewares.CurrentUser(c)
	submission, err := ctl.Submissions.Submit(user.ID, req.ChallengeID, req.Flag, middlewares.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyFlag):
			utils.Error(c, http.StatusBadRequest, "Flag must not be empty")
		case errors.Is(err, services.ErrChallengeNotFound):
			utils.Error(c, http.StatusNotFound, "Challenge not found")
		default:
			utils.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// List 本人提交历史，时间倒序
func (ctl *SubmissionController) List(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	rows, err := ctl.Submissions.UserSubmissions(user.ID)
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Solved 本人已解出的题目 ID 集合
func (ctl *SubmissionController) Solved(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	ids, err := ctl.Submissions.SolvedChallengeIDs(user.ID)
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}
