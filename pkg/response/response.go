package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// 本包负责对外接口的响应编码。
// 设计说明：
// 1. 查询接口直接返回业务数据（不做{code,message,data}包装），
//    且使用4空格缩进的pretty JSON——这是对外契约，客户端按原样解析
// 2. 提示类响应统一为{"message": "..."}结构
// 3. 业务错误码→HTTP状态码的映射集中在本包，Handler不关心状态码

// MessageBody 提示响应结构
type MessageBody struct {
	Message string `json:"message"`
}

// JSON 成功响应（原样返回业务数据，4空格缩进）
func JSON(c *gin.Context, data interface{}) {
	c.IndentedJSON(http.StatusOK, data)
}

// Message 提示响应（如注册成功、书评已删除）
func Message(c *gin.Context, message string) {
	c.IndentedJSON(http.StatusOK, MessageBody{Message: message})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := addReviewUseCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	c.JSON(HTTPStatus(appErr.Code), MessageBody{Message: appErr.Message})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(HTTPStatus(code), MessageBody{Message: message})
}

// HTTPStatus 业务错误码→HTTP状态码
// 注意：映射保持与既有接口契约一致，部分取值并不符合REST惯例：
// - 注册参数缺失/用户名重复 → 404
// - 登录凭证错误 → 208
// 这是被保留的历史行为，客户端已按这些状态码判断
func HTTPStatus(code int) int {
	switch {
	case code == apperrors.ErrCodeInvalidCredentials:
		return http.StatusAlreadyReported // 208
	case code >= 40100 && code < 40200:
		return http.StatusUnauthorized
	case code >= 40400 && code < 40500:
		return http.StatusNotFound
	case code == apperrors.ErrCodeUserExists:
		return http.StatusNotFound
	case code >= 40900 && code < 41000:
		return http.StatusNotFound
	case code >= 50000:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}
