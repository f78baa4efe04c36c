// file: controllers/hint_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hemanthrajvardhan/ctf/dto"
	"github.com/hemanthrajvardhan/ctf/middlewares"
	"github.com/hemanthrajvardhan/ctf/models"
	"github.com/hemanthrajvardhan/ctf/utils"
	"gorm.io/gorm"
)

type HintController struct {
	DB *gorm.DB
}

func NewHintController(db *gorm.DB) *HintController {
	return &HintController{DB: db}
}

// ListForChallenge 按 slug 取题目提示，position 升序。
// 可见性检查与题目详情一致。
func (ctl *HintController) ListForChallenge(c *gin.Context) {
	slug := c.Param("slug")

	var challenge models.Challenge
	if err := ctl.DB.Where("slug = ?", slug).First(&challenge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Challenge not found")
			return
		}
		utils.ServerError(c, err)
		return
	}
	if !challenge.IsVisible && !middlewares.IsAdmin(c) {
		utils.Error(c, http.StatusNotFound, "Challenge not found")
		return
	}

	var hints []models.Hint
	if err := ctl.DB.Where("challenge_id = ?", challenge.ID).
		Order("position ASC, id ASC").Find(&hints).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, hints)
}

// Create 管理员为题目添加提示
func (ctl *HintController) Create(c *gin.Context) {
	challengeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid challenge ID")
		return
	}

	var req dto.CreateHintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var count int64
	ctl.DB.Model(&models.Challenge{}).Where("id = ?", challengeID).Count(&count)
	if count == 0 {
		utils.Error(c, http.StatusNotFound, "Challenge not found")
		return
	}

	hint := models.Hint{
		ChallengeID: uint32(challengeID),
		Content:     req.Content,
		Cost:        req.Cost,
		UnlockTime:  req.UnlockTime,
		Position:    req.Position,
	}
	if err := ctl.DB.Create(&hint).Error; err != nil {
		utils.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hint)
}

// Update 部分更新提示
func (ctl *HintController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid hint ID")
		return
	}

	var req dto.UpdateHintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var hint models.Hint
	if err := ctl.DB.First(&hint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Hint not found")
			return
		}
		utils.ServerError(c, err)
		return
	}

	if req.Content != nil {
		hint.Content = *req.Content
	}
	if req.Cost != nil {
		hint.Cost = *req.Cost
	}
	if req.UnlockTime != nil {
		hint.UnlockTime = *req.UnlockTime
	}
	if req.Position != nil {
		hint.Position = *req.Position
	}

	if err := ctl.DB.Save(&hint).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, hint)
}

// Delete 删除提示
func (ctl *HintController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid hint ID")
		return
	}

	result := ctl.DB.Delete(&models.Hint{}, id)
	if result.Error != nil {
		utils.ServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Hint not found")
		return
	}
	utils.Message(c, "Hint deleted successfully")
}
