package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/bookreview/internal/application/user"
	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/internal/interface/http/dto"
	"github.com/xiebiao/bookreview/pkg/response"
)

// UserHandler 用户HTTP处理器
type UserHandler struct {
	registerUseCase *appuser.RegisterUseCase
	loginUseCase    *appuser.LoginUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建新用户；字段缺失或用户名重复时按契约返回404
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.CredentialsRequest true "注册信息"
// @Success      200 {object} response.MessageBody "注册成功"
// @Failure      404 {object} response.MessageBody "字段缺失或用户名已存在"
// @Router       /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	// 请求体无法解析与字段缺失同等对待（契约只有一种失败文案）
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, user.ErrUnableToRegister)
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, result.Message)
}

// Login 用户登录
// @Summary      用户登录
// @Description  核对凭证，签发Token并绑定会话
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.CredentialsRequest true "登录信息"
// @Success      200 {object} appuser.LoginResponse "登录成功"
// @Failure      404 {object} response.MessageBody "字段缺失"
// @Failure      208 {object} response.MessageBody "用户名或密码错误"
// @Router       /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, user.ErrMissingLogin)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, result)
}
