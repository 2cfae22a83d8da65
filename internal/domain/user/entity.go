package user

import (
	"time"
)

// User 用户实体（聚合根）
// 设计说明：
// 1. Username是业务唯一标识，注册后不可变更
// 2. Password是明文存储、精确比较——这是被保留的历史契约（登录签发的
//    Token还要携带它），不是推荐做法；新系统应当用bcrypt哈希
// 3. 用户注册后不更新、不删除（无改密码/注销功能）
type User struct {
	Username  string
	Password  string // 明文（历史契约，见上）
	CreatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
func NewUser(username, password string) *User {
	return &User{
		Username:  username,
		Password:  password,
		CreatedAt: time.Now(),
	}
}

// MatchCredentials 校验凭证（精确匹配用户名+密码）
func (u *User) MatchCredentials(username, password string) bool {
	return u.Username == username && u.Password == password
}
