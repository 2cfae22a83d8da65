package catalog

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
)

// SearchBooksUseCase 图书检索用例（按作者/按书名）
// 设计说明:
// 1. 检索结果条目带isbn字段（与全量目录的形状不同——对外契约如此）
// 2. 结果顺序为种子插入顺序，不排序
// 3. 匹配规则在domain层：作者为忽略大小写的精确匹配，书名为子串匹配
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建检索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
	}
}

// BookSummary 检索结果条目DTO
type BookSummary struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

// ByAuthor 按作者检索
// 无匹配时透传ErrNoBooksByAuthor
func (uc *SearchBooksUseCase) ByAuthor(ctx context.Context, author string) ([]BookSummary, error) {
	books, err := uc.bookService.SearchByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	return toSummaries(books), nil
}

// ByTitle 按书名检索
// 无匹配时透传ErrNoBooksByTitle
func (uc *SearchBooksUseCase) ByTitle(ctx context.Context, fragment string) ([]BookSummary, error) {
	books, err := uc.bookService.SearchByTitle(ctx, fragment)
	if err != nil {
		return nil, err
	}
	return toSummaries(books), nil
}

// toSummaries 领域实体→检索结果DTO
func toSummaries(books []*book.Book) []BookSummary {
	summaries := make([]BookSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, BookSummary{
			ISBN:    b.ISBN,
			Title:   b.Title,
			Author:  b.Author,
			Reviews: b.Reviews,
		})
	}
	return summaries
}
