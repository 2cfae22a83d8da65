package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookreview/internal/domain/user"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// SessionStore 会话存储（Redis实现）
// 设计说明：
// 1. Key设计：session:{token} → 用户名，冒号分隔命名空间便于监控
// 2. 按Token做键而不是按用户做键：同一用户多端登录互不干扰，
//    且认证中间件拿到的就是Token，单次GET即可完成身份还原
// 3. TTL与Token有效期一致（1小时），到期自动删除，无需手动清理；
//    没有登出功能，不提供删除操作
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client) user.SessionStore {
	return &SessionStore{client: client}
}

// Save 绑定Token与用户名
func (s *SessionStore) Save(ctx context.Context, token, username string, ttl time.Duration) error {
	key := sessionKey(token)

	if err := s.client.Set(ctx, key, username, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "Session store unavailable")
	}
	return nil
}

// Get 按Token取回用户名
// 会话不存在（从未登录或已过期）返回ErrUnauthenticated
func (s *SessionStore) Get(ctx context.Context, token string) (string, error) {
	key := sessionKey(token)

	username, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrUnauthenticated
		}
		return "", apperrors.Wrap(err, "Session store unavailable")
	}
	return username, nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
