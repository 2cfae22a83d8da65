package dto

// CredentialsRequest 注册/登录请求体
// 说明：不加binding:"required"——字段缺失必须走领域层的存在性校验，
// 返回契约规定的message（"Unable to register user." / "Error logging in"），
// 而不是gin validator的英文错误
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
