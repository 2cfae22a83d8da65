package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// Manager JWT管理器
// 设计说明：
// 1. 对称密钥HS256签名，单Token机制（登录后绑定到会话，客户端不重复提交）
// 2. Token有效期与会话TTL一致（默认1小时）
type Manager struct {
	secret            string        // JWT签名密钥
	accessTokenExpire time.Duration // Token有效期
}

// NewManager 创建JWT管理器
func NewManager(secret string, accessTokenExpire time.Duration) *Manager {
	return &Manager{
		secret:            secret,
		accessTokenExpire: accessTokenExpire,
	}
}

// Claims 自定义JWT Claims
// 注意：Data字段携带的是登录密码——这是被保留的历史契约
// （旧系统即如此签发），不是推荐做法；Token只存在于服务端会话里，
// 不会下发给第三方
type Claims struct {
	Data string `json:"data"`
	jwt.RegisteredClaims
}

// GenerateToken 签发Token
func (m *Manager) GenerateToken(username, password string) (string, error) {
	now := time.Now()

	claims := Claims{
		Data: password,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTokenExpire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "bookreview",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", apperrors.Wrap(err, "Failed to sign token")
	}

	return tokenString, nil
}

// ParseToken 解析并验证Token
// 验证内容：签名算法、签名本身、过期时间（exp）、生效时间（nbf）
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非法的签名算法: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// Expire 返回Token有效期（会话TTL与之保持一致）
func (m *Manager) Expire() time.Duration {
	return m.accessTokenExpire
}
