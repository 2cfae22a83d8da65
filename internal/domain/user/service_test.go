package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/memory"
)

// TestRegister 测试用户注册
func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		svc := user.NewService(memory.NewUserStore())
		u, err := svc.Register(ctx, "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.False(t, u.CreatedAt.IsZero())
	})

	t.Run("字段缺失", func(t *testing.T) {
		svc := user.NewService(memory.NewUserStore())

		_, err := svc.Register(ctx, "", "secret")
		assert.True(t, errors.Is(err, user.ErrUnableToRegister))

		_, err = svc.Register(ctx, "alice", "")
		assert.True(t, errors.Is(err, user.ErrUnableToRegister))
	})

	t.Run("重复用户名", func(t *testing.T) {
		svc := user.NewService(memory.NewUserStore())
		_, err := svc.Register(ctx, "alice", "secret")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "alice", "other")
		assert.True(t, errors.Is(err, user.ErrUserExists))
	})
}

// TestLogin 测试用户登录
func TestLogin(t *testing.T) {
	ctx := context.Background()

	newSvc := func(t *testing.T) user.Service {
		svc := user.NewService(memory.NewUserStore())
		_, err := svc.Register(ctx, "alice", "secret")
		require.NoError(t, err)
		return svc
	}

	t.Run("凭证正确返回身份", func(t *testing.T) {
		svc := newSvc(t)
		identity, err := svc.Login(ctx, "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Username)
		assert.False(t, identity.Anonymous())
	})

	t.Run("字段缺失", func(t *testing.T) {
		svc := newSvc(t)

		_, err := svc.Login(ctx, "", "secret")
		assert.True(t, errors.Is(err, user.ErrMissingLogin))

		_, err = svc.Login(ctx, "alice", "")
		assert.True(t, errors.Is(err, user.ErrMissingLogin))
	})

	t.Run("密码错误", func(t *testing.T) {
		svc := newSvc(t)
		_, err := svc.Login(ctx, "alice", "wrong")
		assert.True(t, errors.Is(err, user.ErrInvalidCredentials))
	})

	t.Run("用户不存在与密码错误不区分", func(t *testing.T) {
		svc := newSvc(t)
		_, err := svc.Login(ctx, "nobody", "secret")
		assert.True(t, errors.Is(err, user.ErrInvalidCredentials))
	})
}
