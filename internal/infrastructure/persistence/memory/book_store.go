package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/bookreview/internal/domain/book"
)

// bookStore 图书仓储实现（进程内存）
// 设计说明：
// 1. 实现domain/book/repository.go定义的接口
// 2. 目录在构造时由种子数据一次性建好，运行期只变更书评
// 3. order切片保存种子插入顺序——map遍历无序，而检索结果要求按种子顺序返回
// 4. 并发策略：RWMutex整表加锁。查询共享读锁；书评写入/删除持写锁，
//    单次操作原子，同一(书,用户)的并发写为last-writer-wins
type bookStore struct {
	mu    sync.RWMutex
	books map[string]*book.Book
	order []string // ISBN的种子插入顺序
}

// NewBookStore 创建图书仓储
// 种子条目按切片顺序建立目录；重复ISBN保留先出现的条目
// 注意：返回的是domain层的接口类型，不是具体类型（依赖倒置）
func NewBookStore(seed []SeedBook) book.Repository {
	s := &bookStore{
		books: make(map[string]*book.Book, len(seed)),
		order: make([]string, 0, len(seed)),
	}
	for _, entry := range seed {
		if _, ok := s.books[entry.ISBN]; ok {
			continue
		}
		s.books[entry.ISBN] = book.NewBook(entry.ISBN, entry.Title, entry.Author)
		s.order = append(s.order, entry.ISBN)
	}
	return s
}

// List 全部图书（种子顺序，返回拷贝）
func (s *bookStore) List(ctx context.Context) ([]*book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]*book.Book, 0, len(s.order))
	for _, isbn := range s.order {
		books = append(books, s.books[isbn].Clone())
	}
	return books, nil
}

// FindByISBN 按ISBN查找（返回拷贝）
func (s *bookStore) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[isbn]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b.Clone(), nil
}

// SaveReview 写入书评（插入或覆盖，写锁内原子完成存在性检查和写入）
func (s *bookStore) SaveReview(ctx context.Context, isbn, username, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[isbn]
	if !ok {
		return book.ErrBookNotFound
	}
	b.SetReview(username, text)
	return nil
}

// RemoveReview 删除书评（写锁内原子完成两级存在性检查和删除）
func (s *bookStore) RemoveReview(ctx context.Context, isbn, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[isbn]
	if !ok {
		return book.ErrBookNotFound
	}
	return b.RemoveReview(username)
}
