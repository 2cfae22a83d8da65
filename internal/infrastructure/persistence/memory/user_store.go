package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookreview/internal/domain/user"
)

// userStore 用户仓储实现（进程内存）
// 设计说明：
// 1. 实现domain/user/repository.go定义的接口
// 2. 旧实现存在先查后插的时间窗口，并发重复注册可能都成功（唯一性丢失）。
//    这里按文档化的加固策略改为互斥锁内的原子check-and-insert，
//    并发重复注册恰好一个成功
type userStore struct {
	mu    sync.Mutex
	users map[string]*user.User
}

// NewUserStore 创建用户仓储
func NewUserStore() user.Repository {
	return &userStore{
		users: make(map[string]*user.User),
	}
}

// Create 创建用户（原子check-and-insert）
func (s *userStore) Create(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.Username]; ok {
		return user.ErrUserExists
	}
	s.users[u.Username] = u
	return nil
}

// FindByUsername 按用户名查找
func (s *userStore) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	// 用户注册后不可变，直接返回内部指针是安全的
	return u, nil
}

// Count 当前注册用户数
func (s *userStore) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
