package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如Redis错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数缺失、凭证错误、资源不存在）
// - 5xxxx: 服务端错误（Redis异常、消息队列异常）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal   = 50000 // 内部错误
	ErrCodeRedisError = 50001 // Redis错误
	ErrCodeMQError    = 50002 // 消息队列错误

	// 认证授权错误（40100-40199）
	ErrCodeUnauthenticated    = 40100 // 未登录（无会话身份）
	ErrCodeInvalidToken       = 40101 // Token无效
	ErrCodeTokenExpired       = 40102 // Token过期
	ErrCodeInvalidCredentials = 40103 // 用户名或密码错误

	// 资源错误（40400-40499）
	ErrCodeNotFound        = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound    = 40401 // 图书不存在
	ErrCodeNoBooksByAuthor = 40402 // 该作者没有图书
	ErrCodeNoBooksByTitle  = 40403 // 没有匹配书名的图书
	ErrCodeReviewNotFound  = 40404 // 该用户没有此书的书评

	// 业务规则错误（40000-40099）
	ErrCodeUserExists = 40001 // 用户名已存在

	// 参数错误（40900-40999）
	ErrCodeMissingField = 40900 // 必填字段缺失
	ErrCodeBindError    = 40901 // 参数绑定失败
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================
// 提示信息保持与对外接口约定一致（客户端按message文案断言），故为英文。
// 领域相关的错误（图书不存在、用户名重复等）定义在各domain包的errors.go。

var (
	// 系统错误
	ErrInternal   = New(ErrCodeInternal, "Internal server error")
	ErrRedisError = New(ErrCodeRedisError, "Session store unavailable")

	// 认证授权
	ErrUnauthenticated = New(ErrCodeUnauthenticated, "User not logged in")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "Invalid token")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "Token expired")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}
