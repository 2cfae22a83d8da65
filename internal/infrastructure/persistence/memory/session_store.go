package memory

import (
	"context"
	"sync"
	"time"

	"github.com/xiebiao/bookreview/internal/domain/user"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// sessionStore 会话存储实现（进程内存）
// 用于测试和无Redis的本地开发。语义与Redis实现一致：
// Token→用户名，TTL到期后不可见（懒过期，读取时检查）
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
}

type sessionEntry struct {
	username  string
	expiresAt time.Time
}

// NewSessionStore 创建内存会话存储
func NewSessionStore() user.SessionStore {
	return &sessionStore{
		sessions: make(map[string]sessionEntry),
	}
}

// Save 绑定Token与用户名
func (s *sessionStore) Save(ctx context.Context, token, username string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = sessionEntry{
		username:  username,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Get 按Token取回用户名
func (s *sessionStore) Get(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[token]
	if !ok {
		return "", apperrors.ErrUnauthenticated
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, token)
		return "", apperrors.ErrUnauthenticated
	}
	return entry.username, nil
}
