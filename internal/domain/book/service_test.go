package book_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/memory"
)

func newService() book.Service {
	return book.NewService(memory.NewBookStore([]memory.SeedBook{
		{ISBN: "1", Title: "Things Fall Apart", Author: "Chinua Achebe"},
		{ISBN: "4", Title: "The Epic Of Gilgamesh", Author: "Unknown"},
		{ISBN: "5", Title: "The Book Of Job", Author: "Unknown"},
		{ISBN: "8", Title: "Pride and Prejudice", Author: "Jane Austen"},
	}))
}

// TestSearchByAuthor 测试按作者检索
func TestSearchByAuthor(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	t.Run("精确匹配忽略大小写", func(t *testing.T) {
		books, err := svc.SearchByAuthor(ctx, "JANE AUSTEN")
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "8", books[0].ISBN)
	})

	t.Run("同一作者多本书按种子顺序返回", func(t *testing.T) {
		books, err := svc.SearchByAuthor(ctx, "unknown")
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "4", books[0].ISBN)
		assert.Equal(t, "5", books[1].ISBN)
	})

	t.Run("作者名子串不匹配", func(t *testing.T) {
		// 精确匹配整个作者名，"Jane"不能命中"Jane Austen"
		_, err := svc.SearchByAuthor(ctx, "Jane")
		assert.True(t, errors.Is(err, book.ErrNoBooksByAuthor))
	})

	t.Run("无结果视为错误", func(t *testing.T) {
		_, err := svc.SearchByAuthor(ctx, "Nobody")
		assert.True(t, errors.Is(err, book.ErrNoBooksByAuthor))
	})
}

// TestSearchByTitle 测试按书名检索
func TestSearchByTitle(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	t.Run("子串匹配忽略大小写", func(t *testing.T) {
		books, err := svc.SearchByTitle(ctx, "pride")
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "8", books[0].ISBN)
	})

	t.Run("短片段可命中多本", func(t *testing.T) {
		books, err := svc.SearchByTitle(ctx, "the")
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "4", books[0].ISBN)
		assert.Equal(t, "5", books[1].ISBN)
	})

	t.Run("无结果视为错误", func(t *testing.T) {
		_, err := svc.SearchByTitle(ctx, "zzzz")
		assert.True(t, errors.Is(err, book.ErrNoBooksByTitle))
	})
}

// TestGetByISBN 测试按ISBN查询
func TestGetByISBN(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	t.Run("存在", func(t *testing.T) {
		b, err := svc.GetByISBN(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Things Fall Apart", b.Title)
	})

	t.Run("不存在", func(t *testing.T) {
		_, err := svc.GetByISBN(ctx, "999")
		assert.True(t, errors.Is(err, book.ErrBookNotFound))
	})
}

// TestReviewLifecycle 测试书评的完整生命周期
func TestReviewLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	t.Run("新书没有书评", func(t *testing.T) {
		reviews, err := svc.GetReviews(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("写入读回覆盖删除", func(t *testing.T) {
		require.NoError(t, svc.AddReview(ctx, "1", "alice", "wonderful"))

		reviews, err := svc.GetReviews(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "wonderful", reviews["alice"])

		// 覆盖
		require.NoError(t, svc.AddReview(ctx, "1", "alice", "changed my mind"))
		reviews, err = svc.GetReviews(ctx, "1")
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, "changed my mind", reviews["alice"])

		// 删除
		require.NoError(t, svc.DeleteReview(ctx, "1", "alice"))
		reviews, err = svc.GetReviews(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("第二次删除报书评不存在", func(t *testing.T) {
		require.NoError(t, svc.AddReview(ctx, "8", "bob", "ok"))
		require.NoError(t, svc.DeleteReview(ctx, "8", "bob"))

		err := svc.DeleteReview(ctx, "8", "bob")
		assert.True(t, errors.Is(err, book.ErrReviewNotFound))
	})

	t.Run("不存在的图书", func(t *testing.T) {
		assert.True(t, errors.Is(svc.AddReview(ctx, "999", "alice", "x"), book.ErrBookNotFound))
		_, err := svc.GetReviews(ctx, "999")
		assert.True(t, errors.Is(err, book.ErrBookNotFound))
	})
}
