// file: routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hemanthrajvardhan/ctf/controllers"
	"github.com/hemanthrajvardhan/ctf/middlewares"
	"github.com/hemanthrajvardhan/ctf/models"
	"github.com/hemanthrajvardhan/ctf/services"
	"github.com/hemanthrajvardhan/ctf/sessions"
	"gorm.io/gorm"
)

// SetupRouter 组装全部路由。依赖在此注入，控制器不持有任何全局状态。
func SetupRouter(db *gorm.DB, store sessions.Store, sessionTTL time.Duration) *gin.Engine {
	r := gin.Default()

	submissionSvc := services.NewSubmissionService(db)
	leaderboardSvc := services.NewLeaderboardService(db)

	authCtl := controllers.NewAuthController(db, store, sessionTTL)
	userCtl := controllers.NewUserController(db, submissionSvc)
	challengeCtl := controllers.NewChallengeController(db)
	hintCtl := controllers.NewHintController(db)
	categoryCtl := controllers.NewCategoryController(db)
	submissionCtl := controllers.NewSubmissionController(submissionSvc)
	leaderboardCtl := controllers.NewLeaderboardController(leaderboardSvc)

	requireAuth := middlewares.SessionAuthMiddleware(store, db)
	tryAuth := middlewares.TrySessionAuthMiddleware(store, db)
	requireAdmin := middlewares.RoleAuthMiddleware(models.RoleAdmin)

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// --- 认证与会话 ---
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", authCtl.Register)
			authRoutes.POST("/login", authCtl.Login)
			authRoutes.POST("/logout", requireAuth, authCtl.Logout)
		}
		apiV1.GET("/session", tryAuth, authCtl.Session)
		apiV1.GET("/profile", requireAuth, authCtl.Profile)

		// --- 题目（读侧），隐藏题目仅管理员可见 ---
		challengeRoutes := apiV1.Group("/challenges")
		challengeRoutes.Use(tryAuth)
		{
			challengeRoutes.GET("", challengeCtl.List)
			challengeRoutes.GET("/:slug", challengeCtl.GetBySlug)
			challengeRoutes.GET("/:slug/hints", hintCtl.ListForChallenge)
		}

		// --- 提交与计分 ---
		submissionRoutes := apiV1.Group("/submissions")
		submissionRoutes.Use(requireAuth)
		{
			submissionRoutes.POST("", submissionCtl.Submit)
			submissionRoutes.GET("", submissionCtl.List)
			submissionRoutes.GET("/solved", submissionCtl.Solved)
		}

		apiV1.GET("/leaderboard", leaderboardCtl.Get)

		// --- 分类字典（读侧公开） ---
		categoryRoutes := apiV1.Group("/categories")
		{
			categoryRoutes.GET("", categoryCtl.List)
			categoryRoutes.GET("/:type", categoryCtl.ListByType)
		}

		// --- 管理员接口 ---
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(requireAuth, requireAdmin)
		{
			adminRoutes.GET("/users", userCtl.List)
			adminRoutes.POST("/users", userCtl.Create)
			adminRoutes.POST("/users/:id/ban", userCtl.Ban)
			adminRoutes.POST("/users/:id/unban", userCtl.Unban)
			adminRoutes.GET("/users/:id/submissions", userCtl.SubmissionsOf)

			adminRoutes.POST("/challenges", challengeCtl.Create)
			adminRoutes.PATCH("/challenges/:id", challengeCtl.Update)
			adminRoutes.DELETE("/challenges/:id", challengeCtl.Delete)
			adminRoutes.POST("/challenges/:id/hints", hintCtl.Create)
			adminRoutes.PATCH("/hints/:id", hintCtl.Update)
			adminRoutes.DELETE("/hints/:id", hintCtl.Delete)

			adminRoutes.POST("/categories", categoryCtl.Create)
			adminRoutes.DELETE("/categories/:id", categoryCtl.Delete)
		}
	}

	return r
}
