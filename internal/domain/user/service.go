package user

import (
	"context"
	"errors"
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（注册前置校验、凭证核对）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. 字段存在性校验在这里做（而非只靠HTTP层binding），保证非HTTP调用方
//    （测试、未来的CLI）拿到同样的错误语义
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, username, password string) (*User, error)

	// Login 用户登录，成功时返回已认证身份
	Login(ctx context.Context, username, password string) (Identity, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 业务规则：
// 1. 用户名和密码都必须非空（除此之外不做格式校验——历史契约）
// 2. 用户名唯一性由Repository的原子check-and-insert保证
func (s *service) Register(ctx context.Context, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, ErrUnableToRegister
	}

	u := NewUser(username, password)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err // Repository已转换为ErrUserExists
	}

	return u, nil
}

// Login 用户登录
// 业务规则：
// 1. 字段缺失在凭证核对之前报错（ErrMissingLogin）
// 2. 凭证为明文精确匹配（历史契约）
// 3. 用户不存在与密码错误统一返回ErrInvalidCredentials，不区分
//    （避免用户名枚举）
func (s *service) Login(ctx context.Context, username, password string) (Identity, error) {
	if username == "" || password == "" {
		return Identity{}, ErrMissingLogin
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}

	if !u.MatchCredentials(username, password) {
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{Username: u.Username}, nil
}
