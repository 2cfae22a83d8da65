package user

import (
	"context"
	"time"
)

// SessionStore 会话存储接口
// 设计说明：
// 1. 登录成功后把Token→用户名的绑定写入会话，TTL与Token有效期一致（1小时）
// 2. 认证中间件按Token取回用户名，取不到即未登录
// 3. 没有删除操作：本系统没有登出功能，会话随TTL自然过期
// 4. 实现：生产环境用Redis（infrastructure/persistence/redis），
//    测试用内存实现（infrastructure/persistence/memory）
type SessionStore interface {
	// Save 绑定Token与用户名
	Save(ctx context.Context, token, username string, ttl time.Duration) error

	// Get 按Token取回用户名
	// 会话不存在或已过期时返回apperrors.ErrUnauthenticated
	Get(ctx context.Context, token string) (string, error)
}
