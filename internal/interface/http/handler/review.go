package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/bookreview/internal/application/review"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
	"github.com/xiebiao/bookreview/pkg/response"
)

// ReviewHandler 书评HTTP处理器（需认证路由）
type ReviewHandler struct {
	addReviewUseCase    *appreview.AddReviewUseCase
	deleteReviewUseCase *appreview.DeleteReviewUseCase
}

// NewReviewHandler 创建书评处理器
func NewReviewHandler(
	addReviewUseCase *appreview.AddReviewUseCase,
	deleteReviewUseCase *appreview.DeleteReviewUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		addReviewUseCase:    addReviewUseCase,
		deleteReviewUseCase: deleteReviewUseCase,
	}
}

// Add 写书评
// 书评内容取query参数review（对外契约），重复写入为覆盖
// @Summary      写书评
// @Description  为指定图书写入当前用户的书评（已有则覆盖）
// @Tags         书评
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Param        review query string true "书评内容"
// @Security     BearerAuth
// @Success      200 {object} response.MessageBody "写入成功"
// @Failure      401 {object} response.MessageBody "未登录"
// @Failure      404 {object} response.MessageBody "图书不存在"
// @Router       /auth/review/{isbn} [put]
func (h *ReviewHandler) Add(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	isbn := c.Param("isbn")
	text := c.Query("review")

	if err := h.addReviewUseCase.Execute(c.Request.Context(), identity, isbn, text); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Review successfully added/updated")
}

// Delete 删书评
// 只删当前用户自己的书评
// @Summary      删书评
// @Tags         书评
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Security     BearerAuth
// @Success      200 {object} response.MessageBody "删除成功"
// @Failure      401 {object} response.MessageBody "未登录"
// @Failure      404 {object} response.MessageBody "图书或书评不存在"
// @Router       /auth/review/{isbn} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	isbn := c.Param("isbn")

	if err := h.deleteReviewUseCase.Execute(c.Request.Context(), identity, isbn); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Review successfully deleted")
}
