package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookreview/internal/application/catalog"
	"github.com/xiebiao/bookreview/pkg/response"
)

// CatalogHandler 目录查询HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：取路径参数、调用应用层、编码响应
// 2. 查询结果直接以业务数据返回（4空格缩进pretty JSON，对外契约）
// 3. /async/*路由与同步路由共用同一批用例，经Defer包装——只是调用
//    形式不同，逻辑只有一份
type CatalogHandler struct {
	listBooks   *catalog.ListBooksUseCase
	getBook     *catalog.GetBookUseCase
	searchBooks *catalog.SearchBooksUseCase
	getReviews  *catalog.GetReviewsUseCase
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(
	listBooks *catalog.ListBooksUseCase,
	getBook *catalog.GetBookUseCase,
	searchBooks *catalog.SearchBooksUseCase,
	getReviews *catalog.GetReviewsUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		listBooks:   listBooks,
		getBook:     getBook,
		searchBooks: searchBooks,
		getReviews:  getReviews,
	}
}

// List 全量目录
// @Summary      图书目录
// @Description  返回全部图书（以ISBN为键的对象）
// @Tags         目录
// @Produce      json
// @Success      200 {object} catalog.Catalog
// @Router       / [get]
func (h *CatalogHandler) List(c *gin.Context) {
	books, err := h.listBooks.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, books)
}

// GetByISBN 按ISBN查询
// @Summary      按ISBN查询图书
// @Tags         目录
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Success      200 {object} catalog.BookDetail
// @Failure      404 {object} response.MessageBody "图书不存在"
// @Router       /isbn/{isbn} [get]
func (h *CatalogHandler) GetByISBN(c *gin.Context) {
	b, err := h.getBook.Execute(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, b)
}

// ByAuthor 按作者检索
// @Summary      按作者检索图书
// @Description  作者名忽略大小写精确匹配
// @Tags         目录
// @Produce      json
// @Param        author path string true "作者"
// @Success      200 {array} catalog.BookSummary
// @Failure      404 {object} response.MessageBody "该作者没有图书"
// @Router       /author/{author} [get]
func (h *CatalogHandler) ByAuthor(c *gin.Context) {
	books, err := h.searchBooks.ByAuthor(c.Request.Context(), c.Param("author"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, books)
}

// ByTitle 按书名检索
// @Summary      按书名检索图书
// @Description  书名忽略大小写子串匹配
// @Tags         目录
// @Produce      json
// @Param        title path string true "书名片段"
// @Success      200 {array} catalog.BookSummary
// @Failure      404 {object} response.MessageBody "没有匹配书名的图书"
// @Router       /title/{title} [get]
func (h *CatalogHandler) ByTitle(c *gin.Context) {
	books, err := h.searchBooks.ByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, books)
}

// Reviews 某本书的全部书评
// @Summary      查询书评
// @Tags         书评
// @Produce      json
// @Param        isbn path string true "ISBN"
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.MessageBody "图书不存在"
// @Router       /review/{isbn} [get]
func (h *CatalogHandler) Reviews(c *gin.Context) {
	reviews, err := h.getReviews.Execute(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, reviews)
}

// =========================================
// 异步路由（/async/*）
// 响应与同步路由完全一致，仅调用形式为延迟结果
// =========================================

// AsyncList 全量目录（异步包装）
func (h *CatalogHandler) AsyncList(c *gin.Context) {
	ctx := c.Request.Context()
	books, err := catalog.Await(catalog.Defer(ctx, func(ctx2 context.Context) (catalog.Catalog, error) {
		return h.listBooks.Execute(ctx2)
	}))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, books)
}

// AsyncGetByISBN 按ISBN查询（异步包装）
func (h *CatalogHandler) AsyncGetByISBN(c *gin.Context) {
	ctx := c.Request.Context()
	isbn := c.Param("isbn")
	b, err := catalog.Await(catalog.Defer(ctx, func(ctx2 context.Context) (*catalog.BookDetail, error) {
		return h.getBook.Execute(ctx2, isbn)
	}))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, b)
}

// AsyncByAuthor 按作者检索（异步包装）
func (h *CatalogHandler) AsyncByAuthor(c *gin.Context) {
	ctx := c.Request.Context()
	author := c.Param("author")
	books, err := catalog.Await(catalog.Defer(ctx, func(ctx2 context.Context) ([]catalog.BookSummary, error) {
		return h.searchBooks.ByAuthor(ctx2, author)
	}))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, books)
}

// AsyncByTitle 按书名检索（异步包装）
func (h *CatalogHandler) AsyncByTitle(c *gin.Context) {
	ctx := c.Request.Context()
	title := c.Param("title")
	books, err := catalog.Await(catalog.Defer(ctx, func(ctx2 context.Context) ([]catalog.BookSummary, error) {
		return h.searchBooks.ByTitle(ctx2, title)
	}))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, books)
}
