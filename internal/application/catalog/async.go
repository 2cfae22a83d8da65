package catalog

import (
	"context"
)

// 旧系统为每个查询各写了一份Promise/async版本，逻辑与同步版完全重复。
// 这里只保留一份实现：/async/*路由通过Defer把同一个用例包装成延迟结果，
// 不复制查询逻辑。

// Result 延迟计算的结果
type Result[T any] struct {
	Value T
	Err   error
}

// Defer 在新goroutine里执行fn，返回承载结果的channel
// 语义说明：
// 1. 纯透传包装，不增加排序或取消语义——fn本身不阻塞I/O，
//    ctx取消不回滚已完成的效果
// 2. channel带1个缓冲：调用方放弃接收时goroutine也能退出
func Defer[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		value, err := fn(ctx)
		ch <- Result[T]{Value: value, Err: err}
	}()
	return ch
}

// Await 等待延迟结果
func Await[T any](ch <-chan Result[T]) (T, error) {
	r := <-ch
	return r.Value, r.Err
}
