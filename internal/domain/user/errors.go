package user

import (
	apperrors "github.com/xiebiao/bookreview/pkg/errors"
)

// 用户领域错误定义
// message文案是对外接口契约的一部分,客户端按原文断言,不要改动
var (
	// ErrUserExists 用户名已被注册
	ErrUserExists = apperrors.New(apperrors.ErrCodeUserExists, "User already exists!")

	// ErrUserNotFound 用户不存在（仓储层错误，登录服务会统一转为ErrInvalidCredentials）
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeNotFound, "User not found")

	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = apperrors.New(apperrors.ErrCodeInvalidCredentials, "Invalid Login. Check username and password")

	// ErrUnableToRegister 注册字段缺失
	ErrUnableToRegister = apperrors.New(apperrors.ErrCodeMissingField, "Unable to register user.")

	// ErrMissingLogin 登录字段缺失
	ErrMissingLogin = apperrors.New(apperrors.ErrCodeMissingField, "Error logging in")
)
