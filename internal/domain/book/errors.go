package book

import (
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// 图书领域错误定义
// message文案是对外接口契约的一部分,客户端按原文断言,不要改动
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")

	// ErrNoBooksByAuthor 按作者检索无结果
	ErrNoBooksByAuthor = apperrors.New(apperrors.ErrCodeNoBooksByAuthor, "No books found by this author")

	// ErrNoBooksByTitle 按书名检索无结果
	ErrNoBooksByTitle = apperrors.New(apperrors.ErrCodeNoBooksByTitle, "No books found with this title")

	// ErrReviewNotFound 该用户没有此书的书评
	ErrReviewNotFound = apperrors.New(apperrors.ErrCodeReviewNotFound, "Review not found for this user")
)
