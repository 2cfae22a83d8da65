package book

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,ISBN为业务唯一标识(目录初始化后不可变)
// 2. Reviews是书评映射: 用户名→书评内容,每个用户对一本书只有一条书评
// 3. 目录在进程启动时由种子数据构建,运行期不增删图书,只变更书评
type Book struct {
	ISBN    string            // ISBN号(外部分配的不透明字符串,不校验格式)
	Title   string            // 书名
	Author  string            // 作者
	Reviews map[string]string // 书评: 用户名→内容
}

// NewBook 创建新图书(工厂方法)
// 书评映射初始化为空,避免调用方判空
func NewBook(isbn, title, author string) *Book {
	return &Book{
		ISBN:    isbn,
		Title:   title,
		Author:  author,
		Reviews: map[string]string{},
	}
}

// SetReview 写入书评(领域行为)
// 同一用户重复写入为覆盖语义,不追加
func (b *Book) SetReview(username, text string) {
	if b.Reviews == nil {
		b.Reviews = map[string]string{}
	}
	b.Reviews[username] = text
}

// RemoveReview 删除指定用户的书评(领域行为)
// 该用户没有书评时返回ErrReviewNotFound
func (b *Book) RemoveReview(username string) error {
	if _, ok := b.Reviews[username]; !ok {
		return ErrReviewNotFound
	}
	delete(b.Reviews, username)
	return nil
}

// Clone 深拷贝
// Repository向外返回拷贝,避免调用方与存储共享同一个书评map
func (b *Book) Clone() *Book {
	reviews := make(map[string]string, len(b.Reviews))
	for user, text := range b.Reviews {
		reviews[user] = text
	}
	return &Book{
		ISBN:    b.ISBN,
		Title:   b.Title,
		Author:  b.Author,
		Reviews: reviews,
	}
}
