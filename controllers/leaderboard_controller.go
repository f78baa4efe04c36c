// file: controllers/leaderboard_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hemanthrajvardhan/ctf/services"
	"github.com/hemanthrajvardhan/ctf/utils"
)

type LeaderboardController struct {
	Leaderboard *services.LeaderboardService
}

func NewLeaderboardController(leaderboard *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{Leaderboard: leaderboard}
}

// Get 排行榜，读时全量重算
func (ctl *LeaderboardController) Get(c *gin.Context) {
	entries, err := ctl.Leaderboard.Compute()
	if err != nil {
		utils.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
