package xlog

import "log/slog"

// 常用属性 Key 常量
const (
	// KeyError 错误字段的标准 key
	KeyError = "error"

	// KeyCount 计数字段的标准 key
	KeyCount = "count"

	// KeyComponent 组件名称字段的标准 key
	KeyComponent = "component"

	// KeyOperation 操作名称字段的标准 key
	KeyOperation = "operation"

	// KeyLine 输入行号
	KeyLine = "line"

	// KeyInput 原始输入文本
	KeyInput = "input"
)

// Err 创建错误属性
//
// 如果 err 为 nil，返回空属性（会被 slog 忽略）。
//
//	if err != nil {
//	    logger.Error(ctx, "operation failed", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Count 创建计数属性
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}

// Line 创建行号属性
func Line(n int) slog.Attr {
	return slog.Int(KeyLine, n)
}

// Input 创建原始输入属性
func Input(s string) slog.Attr {
	return slog.String(KeyInput, s)
}
