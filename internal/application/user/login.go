package user

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/pkg/jwt"
	"github.com/xiebiao/bookreview/pkg/metrics"
)

// LoginUseCase 用户登录用例
// 设计说明：
// 1. 凭证核对由领域服务完成，成功后得到Identity
// 2. 签发JWT（有效期1小时，payload携带密码——历史契约，见pkg/jwt）
// 3. 把Token→用户名写入会话存储，TTL与Token一致；
//    后续书评接口凭会话还原身份，客户端不在每个请求重发Token
// 4. 会话写入失败则登录失败：没有会话，Token就换不回身份
type LoginUseCase struct {
	userService  user.Service
	jwtManager   *jwt.Manager
	sessionStore user.SessionStore
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore user.SessionStore,
) *LoginUseCase {
	return &LoginUseCase{
		userService:  userService,
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse 登录响应
type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // Token过期时间（秒）
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	identity, err := uc.userService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if metrics.LoginsTotal != nil {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return nil, err
	}

	token, err := uc.jwtManager.GenerateToken(identity.Username, req.Password)
	if err != nil {
		return nil, err
	}

	if err := uc.sessionStore.Save(ctx, token, identity.Username, uc.jwtManager.Expire()); err != nil {
		return nil, err
	}

	if metrics.LoginsTotal != nil {
		metrics.LoginsTotal.WithLabelValues("success").Inc()
	}

	return &LoginResponse{
		Message:     "User successfully logged in",
		AccessToken: token,
		ExpiresIn:   int64(uc.jwtManager.Expire().Seconds()),
	}, nil
}
