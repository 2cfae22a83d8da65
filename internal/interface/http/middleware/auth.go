package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookreview/internal/domain/user"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
	"github.com/xiebiao/bookreview/pkg/jwt"
	"github.com/xiebiao/bookreview/pkg/response"
)

// identityKey gin Context里存放已认证身份的键
const identityKey = "identity"

// AuthMiddleware 认证中间件
// 设计说明：
// 1. 从Authorization头提取Bearer Token
// 2. 验证Token签名与有效期
// 3. 按Token查会话取回用户名——会话是身份的最终依据，
//    Token有效但会话不存在（如服务端会话丢失）一样算未登录
// 4. 把Identity注入Context，Handler经由GetIdentity取用
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore user.SessionStore
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore user.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth 要求登录
// 使用方式：
//
//	auth := r.Group("/auth")
//	auth.Use(authMiddleware.RequireAuth())
//	auth.PUT("/review/:isbn", reviewHandler.Add)
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 提取Token（格式：Authorization: Bearer <token>）
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}
		tokenString := parts[1]

		// 2. 验证Token（签名、exp、nbf）
		if _, err := m.jwtManager.ParseToken(tokenString); err != nil {
			response.Error(c, err) // ErrTokenExpired / ErrInvalidToken
			c.Abort()
			return
		}

		// 3. 会话还原身份
		username, err := m.sessionStore.Get(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, err) // ErrUnauthenticated或会话存储错误
			c.Abort()
			return
		}

		// 4. 注入身份，继续处理请求
		c.Set(identityKey, user.Identity{Username: username})
		c.Next()
	}
}

// GetIdentity 从Context获取当前已认证身份
// 未经过RequireAuth的请求返回匿名身份（零值），
// 书评用例对匿名身份显式返回Unauthenticated错误
func GetIdentity(c *gin.Context) user.Identity {
	if v, exists := c.Get(identityKey); exists {
		if id, ok := v.(user.Identity); ok {
			return id
		}
	}
	return user.Identity{}
}
