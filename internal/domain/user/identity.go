package user

// Identity 已认证身份
// 设计说明：
// 旧系统从可变的会话存储里隐式读取当前用户名，书评接口直接假设它存在。
// 这里把它改成显式的值类型：只有两个来源可以构造出非零Identity——
// 登录用例（登录成功时）和认证中间件（Token+会话校验通过时）。
// 书评用例以参数形式接收Identity，匿名调用在类型上就无法伪装成已登录。
type Identity struct {
	Username string
}

// Anonymous 判断是否为匿名（零值）身份
func (i Identity) Anonymous() bool {
	return i.Username == ""
}
