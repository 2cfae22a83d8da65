package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookreview/internal/domain/user"
)

// TestUserStoreCreate 测试用户创建
func TestUserStoreCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("创建后可查回", func(t *testing.T) {
		store := NewUserStore()
		require.NoError(t, store.Create(ctx, user.NewUser("alice", "secret")))

		u, err := store.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, "secret", u.Password)
		assert.Equal(t, 1, store.Count(ctx))
	})

	t.Run("重复用户名被拒绝", func(t *testing.T) {
		store := NewUserStore()
		require.NoError(t, store.Create(ctx, user.NewUser("alice", "secret")))

		err := store.Create(ctx, user.NewUser("alice", "other"))
		assert.True(t, errors.Is(err, user.ErrUserExists))
		assert.Equal(t, 1, store.Count(ctx))

		// 原用户的密码没有被覆盖
		u, err := store.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "secret", u.Password)
	})

	t.Run("查找不存在的用户", func(t *testing.T) {
		store := NewUserStore()
		_, err := store.FindByUsername(ctx, "nobody")
		assert.True(t, errors.Is(err, user.ErrUserNotFound))
	})
}

// TestUserStoreConcurrentCreate 并发重复注册
// check-and-insert在锁内原子完成，同名并发注册必须恰好一个成功
func TestUserStoreConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()

	const goroutines = 50
	var success atomic.Int64
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			if err := store.Create(ctx, user.NewUser("alice", "secret")); err == nil {
				success.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), success.Load(), "同名并发注册应该恰好一个成功")
	assert.Equal(t, 1, store.Count(ctx))
}
