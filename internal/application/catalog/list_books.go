package catalog

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
)

// ListBooksUseCase 全量目录查询用例
// 设计说明:
// 1. 响应形状沿用对外契约: 以ISBN为键的对象,条目内不重复isbn字段
// 2. 总是成功(空目录返回空对象)
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建全量目录查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// BookDetail 单本图书DTO(不含isbn,isbn是外层的键或路径参数)
type BookDetail struct {
	Author  string            `json:"author"`
	Title   string            `json:"title"`
	Reviews map[string]string `json:"reviews"`
}

// Catalog 全量目录DTO: ISBN→图书
type Catalog map[string]BookDetail

// Execute 执行全量目录查询
func (uc *ListBooksUseCase) Execute(ctx context.Context) (Catalog, error) {
	books, err := uc.bookService.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(Catalog, len(books))
	for _, b := range books {
		catalog[b.ISBN] = BookDetail{
			Author:  b.Author,
			Title:   b.Title,
			Reviews: b.Reviews,
		}
	}
	return catalog, nil
}
