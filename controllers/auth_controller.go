// file: controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hemanthrajvardhan/ctf/dto"
	"github.com/hemanthrajvardhan/ctf/middlewares"
	"github.com/hemanthrajvardhan/ctf/models"
	"github.com/hemanthrajvardhan/ctf/sessions"
	"github.com/hemanthrajvardhan/ctf/utils"
	"gorm.io/gorm"
)

type AuthController struct {
	DB         *gorm.DB
	Sessions   sessions.Store
	SessionTTL time.Duration
}

func NewAuthController(db *gorm.DB, store sessions.Store, ttl time.Duration) *AuthController {
	return &AuthController{DB: db, Sessions: store, SessionTTL: ttl}
}

// Register 开放注册，只能创建 player 角色
func (ctl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	newUser := models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     models.RolePlayer,
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

// Login 邮箱+密码换取会话。用户不存在与密码错误返回同一错误，避免枚举。
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var user models.User
	if err := ctl.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.ServerError(c, err)
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if user.IsBanned {
		utils.Error(c, http.StatusForbidden, "Forbidden: account banned")
		return
	}

	token, err := ctl.Sessions.Create(c.Request.Context(), user.ID, ctl.SessionTTL)
	if err != nil {
		utils.ServerError(c, err)
		return
	}

	c.SetCookie(middlewares.SessionCookieName, token, int(ctl.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout 销毁会话并清除 Cookie
func (ctl *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(middlewares.SessionCookieName); err == nil && token != "" {
		if err := ctl.Sessions.Delete(c.Request.Context(), token); err != nil {
			utils.ServerError(c, err)
			return
		}
	}
	c.SetCookie(middlewares.SessionCookieName, "", -1, "/", "", false, true)
	utils.Message(c, "Logged out")
}

// Session 返回当前会话用户，未登录为 null
func (ctl *AuthController) Session(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Profile 当前登录用户详情
func (ctl *AuthController) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, middlewares.CurrentUser(c))
}
