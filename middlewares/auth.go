// file: middlewares/auth.go
package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hemanthrajvardhan/ctf/models"
	"github.com/hemanthrajvardhan/ctf/sessions"
	"github.com/hemanthrajvardhan/ctf/utils"
	"gorm.io/gorm"
)

// SessionCookieName 会话令牌所在的 Cookie
const SessionCookieName = "ctf_session"

// SessionAuthMiddleware 验证用户是否登录。
// 每次请求都回查用户表，封禁立即生效，不依赖会话创建时的状态。
func SessionAuthMiddleware(store sessions.Store, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		userID, err := store.Get(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, sessions.ErrNotFound) {
				utils.Error(c, http.StatusUnauthorized, "Unauthorized")
			} else {
				utils.ServerError(c, err)
			}
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// 用户已不存在，会话作废
				utils.Error(c, http.StatusUnauthorized, "Unauthorized")
			} else {
				utils.ServerError(c, err)
			}
			c.Abort()
			return
		}

		if user.IsBanned {
			utils.Error(c, http.StatusForbidden, "Forbidden: account banned")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_role", user.Role)
		c.Set("current_user", &user)
		c.Next()
	}
}

// RoleAuthMiddleware 验证用户角色权限
func RoleAuthMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get("user_role")
		if !exists {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		role := roleAny.(models.UserRole)

		hasPermission := false
		for _, requiredRole := range requiredRoles {
			if role == requiredRole {
				hasPermission = true
				break
			}
		}

		if !hasPermission {
			utils.Error(c, http.StatusForbidden, "Forbidden: admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// TrySessionAuthMiddleware 尝试解析会话，即使失败也继续执行。
// 封禁用户在可选鉴权的路由上按匿名处理。
func TrySessionAuthMiddleware(store sessions.Store, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := store.Get(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err == nil && !user.IsBanned {
			c.Set("user_id", user.ID)
			c.Set("user_role", user.Role)
			c.Set("current_user", &user)
		}

		c.Next()
	}
}

// CurrentUser 从上下文取出已认证用户，未登录返回 nil
func CurrentUser(c *gin.Context) *models.User {
	userAny, exists := c.Get("current_user")
	if !exists {
		return nil
	}
	return userAny.(*models.User)
}

// IsAdmin 当前请求是否具有管理员身份
func IsAdmin(c *gin.Context) bool {
	roleAny, exists := c.Get("user_role")
	return exists && roleAny.(models.UserRole) == models.RoleAdmin
}
