package user

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/pkg/metrics"
	"github.com/xiebiao/bookreview/pkg/mq"
)

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. Application层负责用例编排：调用领域服务，成功后记指标、发事件
// 2. 事件发布失败不影响注册结果（只记日志语义，由调用方统一处理错误日志）
type RegisterUseCase struct {
	userService user.Service
	publisher   *mq.Publisher
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service, publisher *mq.Publisher) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
		publisher:   publisher,
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string
	Password string
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// UserRegisteredEvent 注册成功事件（routing key: user.registered）
type UserRegisteredEvent struct {
	Username string `json:"username"`
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	u, err := uc.userService.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	if metrics.UsersRegisteredTotal != nil {
		metrics.UsersRegisteredTotal.Inc()
	}

	// 事件是尽力而为：MQ不可用不阻断注册
	_ = uc.publisher.Publish(ctx, "user.registered", UserRegisteredEvent{Username: u.Username})

	return &RegisterResponse{
		Username: u.Username,
		Message:  "User successfully registered. Now you can login",
	}, nil
}
