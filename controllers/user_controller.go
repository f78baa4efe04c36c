// file: controllers/user_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hemanthrajvardhan/ctf/dto"
	"github.com/hemanthrajvardhan/ctf/models"
	"github.com/hemanthrajvardhan/ctf/services"
	"github.com/hemanthrajvardhan/ctf/utils"
	"gorm.io/gorm"
)

// UserController 管理员用户管理接口
type UserController struct {
	DB          *gorm.DB
	Submissions *services.SubmissionService
}

func NewUserController(db *gorm.DB, submissions *services.SubmissionService) *UserController {
	return &UserController{DB: db, Submissions: submissions}
}

// List 按注册时间倒序列出全部用户
func (ctl *UserController) List(c *gin.Context) {
	var users []models.User
	if err := ctl.DB.Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create 管理员建号，可指定角色
func (ctl *UserController) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	role := models.RolePlayer
	if req.Role != "" {
		role = models.UserRole(req.Role)
		if role != models.RolePlayer && role != models.RoleAdmin {
			utils.Error(c, http.StatusBadRequest, "Invalid role")
			return
		}
	}

	newUser := models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     role,
	}
	if err := ctl.DB.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Error(c, http.StatusBadRequest, "Email already registered")
			return
		}
		utils.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUser)
}

// Ban 封禁用户，重复封禁为幂等操作
func (ctl *UserController) Ban(c *gin.Context) {
	ctl.setBanned(c, true, "User banned successfully")
}

// Unban 解封用户
func (ctl *UserController) Unban(c *gin.Context) {
	ctl.setBanned(c, false, "User unbanned successfully")
}

func (ctl *UserController) setBanned(c *gin.Context, banned bool, msg string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	result := ctl.DB.Model(&models.User{}).Where("id = ?", id).Update("is_banned", banned)
	if result.Error != nil {
		utils.ServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		// 目标状态已一致时 MySQL 也报 0 行，需区分用户是否存在
		var count int64
		ctl.DB.Model(&models.User{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			utils.Error(c, http.StatusNotFound, "User not found")
			return
		}
	}

	utils.Message(c, msg)
}

// SubmissionsOf 管理员查看指定用户的提交历史
func (ctl *UserController) SubmissionsOf(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	rows, err := ctl.Submissions.UserSubmissions(uint32(id))
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
