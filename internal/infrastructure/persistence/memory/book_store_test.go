package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookreview/internal/domain/book"
)

func testSeed() []SeedBook {
	return []SeedBook{
		{ISBN: "1", Title: "Things Fall Apart", Author: "Chinua Achebe"},
		{ISBN: "2", Title: "Fairy tales", Author: "Hans Christian Andersen"},
		{ISBN: "3", Title: "The Divine Comedy", Author: "Dante Alighieri"},
	}
}

// TestBookStoreList 测试目录遍历
func TestBookStoreList(t *testing.T) {
	ctx := context.Background()
	store := NewBookStore(testSeed())

	t.Run("保持种子顺序", func(t *testing.T) {
		books, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, books, 3)

		assert.Equal(t, "1", books[0].ISBN)
		assert.Equal(t, "2", books[1].ISBN)
		assert.Equal(t, "3", books[2].ISBN)
	})

	t.Run("返回的是拷贝", func(t *testing.T) {
		books, err := store.List(ctx)
		require.NoError(t, err)

		// 篡改返回值不应影响仓储内部状态
		books[0].Title = "hacked"
		books[0].Reviews["mallory"] = "hacked"

		fresh, err := store.FindByISBN(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Things Fall Apart", fresh.Title)
		assert.Empty(t, fresh.Reviews)
	})

	t.Run("重复ISBN保留先出现的条目", func(t *testing.T) {
		dup := NewBookStore([]SeedBook{
			{ISBN: "1", Title: "First", Author: "A"},
			{ISBN: "1", Title: "Second", Author: "B"},
		})

		books, err := dup.List(ctx)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "First", books[0].Title)
	})
}

// TestBookStoreFindByISBN 测试按ISBN查找
func TestBookStoreFindByISBN(t *testing.T) {
	ctx := context.Background()
	store := NewBookStore(testSeed())

	t.Run("存在的ISBN", func(t *testing.T) {
		b, err := store.FindByISBN(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "Fairy tales", b.Title)
		assert.Equal(t, "Hans Christian Andersen", b.Author)
	})

	t.Run("不存在的ISBN", func(t *testing.T) {
		_, err := store.FindByISBN(ctx, "999")
		assert.True(t, errors.Is(err, book.ErrBookNotFound))
	})
}

// TestBookStoreReviews 测试书评写入与删除
func TestBookStoreReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("写入后可读回", func(t *testing.T) {
		store := NewBookStore(testSeed())
		require.NoError(t, store.SaveReview(ctx, "1", "alice", "great book"))

		b, err := store.FindByISBN(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "great book", b.Reviews["alice"])
	})

	t.Run("同一用户重复写入为覆盖", func(t *testing.T) {
		store := NewBookStore(testSeed())
		require.NoError(t, store.SaveReview(ctx, "1", "alice", "first"))
		require.NoError(t, store.SaveReview(ctx, "1", "alice", "second"))

		b, err := store.FindByISBN(ctx, "1")
		require.NoError(t, err)
		require.Len(t, b.Reviews, 1)
		assert.Equal(t, "second", b.Reviews["alice"])
	})

	t.Run("不同用户互不影响", func(t *testing.T) {
		store := NewBookStore(testSeed())
		require.NoError(t, store.SaveReview(ctx, "1", "alice", "from alice"))
		require.NoError(t, store.SaveReview(ctx, "1", "bob", "from bob"))

		b, err := store.FindByISBN(ctx, "1")
		require.NoError(t, err)
		assert.Len(t, b.Reviews, 2)
	})

	t.Run("删除后不可见", func(t *testing.T) {
		store := NewBookStore(testSeed())
		require.NoError(t, store.SaveReview(ctx, "1", "alice", "to be deleted"))
		require.NoError(t, store.RemoveReview(ctx, "1", "alice"))

		b, err := store.FindByISBN(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, b.Reviews)
	})

	t.Run("删除不存在的书评", func(t *testing.T) {
		store := NewBookStore(testSeed())
		err := store.RemoveReview(ctx, "1", "nobody")
		assert.True(t, errors.Is(err, book.ErrReviewNotFound))
	})

	t.Run("对不存在的图书操作", func(t *testing.T) {
		store := NewBookStore(testSeed())
		assert.True(t, errors.Is(store.SaveReview(ctx, "999", "alice", "x"), book.ErrBookNotFound))
		assert.True(t, errors.Is(store.RemoveReview(ctx, "999", "alice"), book.ErrBookNotFound))
	})
}

// TestBookStoreConcurrentReviews 并发写书评
// 验证写锁下单次操作原子，并发覆盖后恰好剩最后一个值
func TestBookStoreConcurrentReviews(t *testing.T) {
	ctx := context.Background()
	store := NewBookStore(testSeed())

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_ = store.SaveReview(ctx, "1", "alice", "concurrent")
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	b, err := store.FindByISBN(ctx, "1")
	require.NoError(t, err)
	require.Len(t, b.Reviews, 1)
	assert.Equal(t, "concurrent", b.Reviews["alice"])
}
