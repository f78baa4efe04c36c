// file: sessions/store.go
package sessions

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound 表示会话不存在或已过期
var ErrNotFound = errors.New("session not found")

// Store 服务端会话存储，key 为不透明令牌，value 只存用户 ID。
// 角色、封禁状态一律不进令牌，每次请求回查用户表。
type Store interface {
	Create(ctx context.Context, userID uint32, ttl time.Duration) (string, error)
	Get(ctx context.Context, token string) (uint32, error)
	Delete(ctx context.Context, token string) error
}
