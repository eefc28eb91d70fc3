package xinet

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrNilBuffer 表示格式化目标缓冲为 nil。
	ErrNilBuffer = errors.New("xinet: nil buffer")
)
