// file: controllers/challenge_controller.go
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

type ChallengeController struct {
	DB *gorm.DB
}

func NewChallengeController(db *gorm.DB) *ChallengeController {
	return &ChallengeController{DB: db}
}

// List 题目列表，按分值升序；隐藏题目仅管理员可见
func (ctl *ChallengeController) List(c *gin.Context) {
	db := ctl.DB.Model(&models.Challenge{})
	if !middlewares.IsAdmin(c) {
		db = db.Where("is_visible = ?", true)
	}

	var challenges []models.Challenge
	if err := db.Order("points ASC, id ASC").Find(&challenges).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// GetBySlug 题目详情。可见性检查与列表一致：
// 普通用户访问隐藏题目按不存在处理，不能靠直连 slug 绕过。
func (ctl *ChallengeController) GetBySlug(c *gin.Context) {
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

	c.JSON(http.StatusOK, challenge)
}

// Create 新建题目，Flag 只存单向哈希
func (ctl *ChallengeController) Create(c *gin.Context) {
	var req dto.CreateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	req.Normalize()

	if req.Title == "" || req.Slug == "" || req.Category == "" || req.Flag == "" || req.Points == nil {
		utils.Error(c, http.StatusBadRequest, "Missing required fields: title, slug, category, points, flag")
		return
	}

	challenge := models.Challenge{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		Category:     req.Category,
		Points:       *req.Points,
		Round:        req.Round,
		ImageURL:     req.ImageURL,
		ExternalLink: req.ExternalLink,
		IsVisible:    *req.IsVisible,
	}
	if err := challenge.SetFlag(req.Flag); err != nil {
		utils.ServerError(c, err)
		return
	}

	if err := ctl.DB.Create(&challenge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Error(c, http.StatusBadRequest, "Slug already exists")
			return
		}
		utils.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

// Update 部分更新；省略 flag 字段时保留原有哈希。
// 修改分值不会重算历史得分，已快照进解题标记。
func (ctl *ChallengeController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid challenge ID")
		return
	}

	var req dto.UpdateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var challenge models.Challenge
	if err := ctl.DB.First(&challenge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Challenge not found")
			return
		}
		utils.ServerError(c, err)
		return
	}

	if req.Title != nil {
		challenge.Title = *req.Title
	}
	if req.Slug != nil {
		challenge.Slug = *req.Slug
	}
	if req.Description != nil {
		challenge.Description = *req.Description
	}
	if req.Category != nil {
		challenge.Category = *req.Category
	}
	if req.Points != nil {
		challenge.Points = *req.Points
	}
	if req.Round != nil {
		challenge.Round = req.Round
	}
	if req.ImageURL != nil {
		challenge.ImageURL = *req.ImageURL
	}
	if req.ExternalLink != nil {
		challenge.ExternalLink = *req.ExternalLink
	}
	if req.IsVisible != nil {
		challenge.IsVisible = *req.IsVisible
	}
	if req.Flag != nil && *req.Flag != "" {
		if err := challenge.SetFlag(*req.Flag); err != nil {
			utils.ServerError(c, err)
			return
		}
	}

	if err := ctl.DB.Save(&challenge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Error(c, http.StatusBadRequest, "Slug already exists")
			return
		}
		utils.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// Delete 删除题目并级联清理提示、提交流水与解题标记，单事务完成
func (ctl *ChallengeController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid challenge ID")
		return
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var challenge models.Challenge
		if err := tx.First(&challenge, id).Error; err != nil {
			return err
		}
		if err := tx.Where("challenge_id = ?", id).Delete(&models.Hint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("challenge_id = ?", id).Delete(&models.Submission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("challenge_id = ?", id).Delete(&models.Solve{}).Error; err != nil {
			return err
		}
		return tx.Delete(&challenge).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Challenge not found")
			return
		}
		utils.ServerError(c, err)
		return
	}

	utils.Message(c, "Challenge deleted")
}
