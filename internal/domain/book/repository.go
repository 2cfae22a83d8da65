package book

import (
	"context"
)

// Repository 图书仓储接口
// DDD设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/memory层
// 3. 返回的实体都是拷贝，调用方修改不会影响存储内容
type Repository interface {
	// List 返回全部图书，顺序为种子数据的插入顺序
	List(ctx context.Context) ([]*Book, error)

	// FindByISBN 根据ISBN查找图书
	// 如果不存在，返回ErrBookNotFound
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// SaveReview 写入某用户对某书的书评（插入或覆盖，单次调用原子）
	// 图书不存在时返回ErrBookNotFound
	SaveReview(ctx context.Context, isbn, username, text string) error

	// RemoveReview 删除某用户对某书的书评
	// 图书不存在返回ErrBookNotFound；该用户无书评返回ErrReviewNotFound
	RemoveReview(ctx context.Context, isbn, username string) error
}
