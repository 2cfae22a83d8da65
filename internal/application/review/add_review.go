package review

import (
	"context"

	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/user"
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
	"github.com/xiebiao/bookreview/pkg/metrics"
	"github.com/xiebiao/bookreview/pkg/mq"
)

// AddReviewUseCase 写书评用例
// 设计说明：
// 1. Identity以参数显式传入，只能由登录用例或认证中间件构造；
//    旧系统在这里直接读会话、假设一定存在，匿名调用会崩——
//    现在匿名身份显式返回ErrUnauthenticated
// 2. 同一用户对同一本书重复写书评是覆盖语义（幂等）
type AddReviewUseCase struct {
	bookService book.Service
	publisher   *mq.Publisher
}

// NewAddReviewUseCase 创建写书评用例
func NewAddReviewUseCase(bookService book.Service, publisher *mq.Publisher) *AddReviewUseCase {
	return &AddReviewUseCase{
		bookService: bookService,
		publisher:   publisher,
	}
}

// ReviewEvent 书评变更事件（routing key: review.added / review.deleted）
type ReviewEvent struct {
	ISBN     string `json:"isbn"`
	Username string `json:"username"`
}

// Execute 执行写书评
// 图书不存在时透传ErrBookNotFound
func (uc *AddReviewUseCase) Execute(ctx context.Context, identity user.Identity, isbn, text string) error {
	if identity.Anonymous() {
		return apperrors.ErrUnauthenticated
	}

	if err := uc.bookService.AddReview(ctx, isbn, identity.Username, text); err != nil {
		return err
	}

	if metrics.ReviewsWrittenTotal != nil {
		metrics.ReviewsWrittenTotal.Inc()
	}
	_ = uc.publisher.Publish(ctx, "review.added", ReviewEvent{ISBN: isbn, Username: identity.Username})

	return nil
}
