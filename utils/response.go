// file: utils/response.go
package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error 统一错误响应格式 {"error": msg}，状态码即语义
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// ServerError 内部错误只记日志，不向客户端泄露细节
func ServerError(c *gin.Context, err error) {
	log.Printf("internal error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// Message 简单成功提示
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
