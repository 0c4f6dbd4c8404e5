package xlog

import "errors"

var (
	// ErrUnknownLevel 无法识别的日志级别
	ErrUnknownLevel = errors.New("xlog: unknown level")

	// ErrUnknownFormat 无法识别的输出格式
	ErrUnknownFormat = errors.New("xlog: unknown format")
)
