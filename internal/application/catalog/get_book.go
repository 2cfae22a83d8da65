package catalog

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
)

// GetBookUseCase 按ISBN查询图书用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建按ISBN查询用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
	}
}

// Execute 执行查询
// ISBN不存在时透传ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, isbn string) (*BookDetail, error) {
	b, err := uc.bookService.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	return &BookDetail{
		Author:  b.Author,
		Title:   b.Title,
		Reviews: b.Reviews,
	}, nil
}
