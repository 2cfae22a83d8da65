package book

import (
	"context"
	"strings"
)

// Service 图书领域服务
// 设计说明：
// 1. 检索的匹配规则（作者精确匹配、书名子串匹配，均忽略大小写）属于业务
//    规则，放在Service而非Repository——存储层只提供按键查找和全量遍历
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. 空结果按约定视为错误（ErrNoBooksByAuthor / ErrNoBooksByTitle），
//    而不是返回空集合
type Service interface {
	// ListAll 全量目录快照（种子顺序），总是成功
	ListAll(ctx context.Context) ([]*Book, error)

	// GetByISBN 按ISBN查询图书
	GetByISBN(ctx context.Context, isbn string) (*Book, error)

	// SearchByAuthor 按作者检索（忽略大小写的精确匹配，不是子串）
	SearchByAuthor(ctx context.Context, author string) ([]*Book, error)

	// SearchByTitle 按书名检索（忽略大小写的子串匹配）
	SearchByTitle(ctx context.Context, fragment string) ([]*Book, error)

	// GetReviews 某本书的全部书评
	GetReviews(ctx context.Context, isbn string) (map[string]string, error)

	// AddReview 写入某用户的书评（插入或覆盖）
	AddReview(ctx context.Context, isbn, username, text string) error

	// DeleteReview 删除某用户的书评
	DeleteReview(ctx context.Context, isbn, username string) error
}

type service struct {
	repo Repository
}

// NewService 创建图书服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListAll 全量目录快照
func (s *service) ListAll(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// GetByISBN 按ISBN查询
func (s *service) GetByISBN(ctx context.Context, isbn string) (*Book, error) {
	return s.repo.FindByISBN(ctx, isbn)
}

// SearchByAuthor 按作者检索
// 匹配规则：strings.EqualFold精确比较整个作者名，"alice"能匹配"Alice"，
// 但"ali"不能。结果保持种子插入顺序，不另行排序
func (s *service) SearchByAuthor(ctx context.Context, author string) ([]*Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*Book
	for _, b := range books {
		if strings.EqualFold(b.Author, author) {
			matched = append(matched, b)
		}
	}

	if len(matched) == 0 {
		return nil, ErrNoBooksByAuthor
	}
	return matched, nil
}

// SearchByTitle 按书名检索
// 匹配规则：忽略大小写的子串包含，"nov"匹配任何含"nov"的书名
func (s *service) SearchByTitle(ctx context.Context, fragment string) ([]*Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(fragment)
	var matched []*Book
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			matched = append(matched, b)
		}
	}

	if len(matched) == 0 {
		return nil, ErrNoBooksByTitle
	}
	return matched, nil
}

// GetReviews 某本书的全部书评
func (s *service) GetReviews(ctx context.Context, isbn string) (map[string]string, error) {
	b, err := s.repo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	return b.Reviews, nil
}

// AddReview 写入书评
// 幂等：同一用户重复写入只保留最后一次的内容（覆盖语义）
func (s *service) AddReview(ctx context.Context, isbn, username, text string) error {
	return s.repo.SaveReview(ctx, isbn, username, text)
}

// DeleteReview 删除书评
func (s *service) DeleteReview(ctx context.Context, isbn, username string) error {
	return s.repo.RemoveReview(ctx, isbn, username)
}
