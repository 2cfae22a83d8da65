package review

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/user"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
	"github.com/xiebiao/bookreview/pkg/metrics"
	"github.com/xiebiao/bookreview/pkg/mq"
)

// DeleteReviewUseCase 删书评用例
// 只能删自己的书评：用户名来自Identity，不接受外部指定
type DeleteReviewUseCase struct {
	bookService book.Service
	publisher   *mq.Publisher
}

// NewDeleteReviewUseCase 创建删书评用例
func NewDeleteReviewUseCase(bookService book.Service, publisher *mq.Publisher) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		bookService: bookService,
		publisher:   publisher,
	}
}

// Execute 执行删书评
// 图书不存在→ErrBookNotFound；该用户没有书评→ErrReviewNotFound
func (uc *DeleteReviewUseCase) Execute(ctx context.Context, identity user.Identity, isbn string) error {
	if identity.Anonymous() {
		return apperrors.ErrUnauthenticated
	}

	if err := uc.bookService.DeleteReview(ctx, isbn, identity.Username); err != nil {
		return err
	}

	if metrics.ReviewsDeletedTotal != nil {
		metrics.ReviewsDeletedTotal.Inc()
	}
	_ = uc.publisher.Publish(ctx, "review.deleted", ReviewEvent{ISBN: isbn, Username: identity.Username})

	return nil
}
