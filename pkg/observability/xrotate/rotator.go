package xrotate

import "io"

var _ io.WriteCloser = (Rotator)(nil)

// Rotator 日志轮转器接口，可直接作为 xlog 的输出目标。
//
// 实现必须并发安全；Close 之后 Write 和 Rotate 返回 [ErrClosed]。
type Rotator interface {
	Write(p []byte) (n int, err error)
	Close() error

	// Rotate 关闭当前文件，重命名为备份文件，再创建新的日志文件
	Rotate() error
}
