package catalog

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
)

// GetReviewsUseCase 查询某本书全部书评的用例
type GetReviewsUseCase struct {
	bookService book.Service
}

// NewGetReviewsUseCase 创建书评查询用例
func NewGetReviewsUseCase(bookService book.Service) *GetReviewsUseCase {
	return &GetReviewsUseCase{
		bookService: bookService,
	}
}

// Execute 执行查询
// 返回用户名→书评内容的映射；没有书评的书返回空对象（不是404）。
// ISBN不存在时透传ErrBookNotFound
func (uc *GetReviewsUseCase) Execute(ctx context.Context, isbn string) (map[string]string, error) {
	return uc.bookService.GetReviews(ctx, isbn)
}
