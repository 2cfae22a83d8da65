package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// TestGenerateAndParse 测试Token签发与解析
func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	t.Run("签发后可解析", func(t *testing.T) {
		token, err := m.GenerateToken("alice", "secret")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := m.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Subject)
		assert.Equal(t, "secret", claims.Data)
		assert.Equal(t, "bookreview", claims.Issuer)
	})

	t.Run("过期时间按配置设置", func(t *testing.T) {
		token, err := m.GenerateToken("alice", "secret")
		require.NoError(t, err)

		claims, err := m.ParseToken(token)
		require.NoError(t, err)

		ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
		assert.Equal(t, time.Hour, ttl)
	})
}

// TestParseInvalidToken 测试非法Token
func TestParseInvalidToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	t.Run("乱码Token", func(t *testing.T) {
		_, err := m.ParseToken("not-a-jwt")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
	})

	t.Run("密钥不匹配", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour)
		token, err := other.GenerateToken("alice", "secret")
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
	})

	t.Run("过期Token", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute)
		token, err := expired.GenerateToken("alice", "secret")
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))
	})
}

// TestExpire 会话TTL与Token有效期一致
func TestExpire(t *testing.T) {
	m := NewManager("test-secret", 30*time.Minute)
	assert.Equal(t, 30*time.Minute, m.Expire())
}
