// file: utils/code_generator.go
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateSessionToken 生成不可猜测的会话令牌（128 位随机 x2）
func GenerateSessionToken() string {
	part1 := strings.Replace(uuid.New().String(), "-", "", -1)
	part2 := strings.Replace(uuid.New().String(), "-", "", -1)
	return part1 + part2
}
