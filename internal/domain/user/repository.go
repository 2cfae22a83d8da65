package user

import (
	"context"
)

// Repository 用户仓储接口
// DDD设计说明：
// 1. 接口定义在domain层（依赖倒置原则），实现在infrastructure/persistence/memory
// 2. 用户名唯一性由存储层的原子check-and-insert保证（而非应用层先查再插），
//    并发重复注册只会有一个成功
type Repository interface {
	// Create 创建用户
	// 如果用户名已存在，返回ErrUserExists
	Create(ctx context.Context, user *User) error

	// FindByUsername 根据用户名查找用户
	// 如果不存在，返回ErrUserNotFound
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Count 当前注册用户数（测试与指标用）
	Count(ctx context.Context) int
}
