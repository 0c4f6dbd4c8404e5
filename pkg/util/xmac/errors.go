package xmac

import (
	"errors"
	"fmt"
)

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrOctetRange 表示八位组取值超出 [0,255]。
	ErrOctetRange = errors.New("xmac: octet out of range")

	// ErrInvalidFormat 表示 MAC 地址或组织标识格式无效。
	ErrInvalidFormat = errors.New("xmac: invalid format")

	// ErrRandomSource 表示随机源读取失败或数据不足。
	ErrRandomSource = errors.New("xmac: random source failure")

	// ErrNilReceiver 表示在 nil 指针上调用了反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)

// 解析失败时报告的期望格式描述。
const (
	// PatternAddress 完整地址的期望格式。
	PatternAddress = "XX:XX:XX:XX:XX:XX (X = hex digit)"

	// PatternOrganization 组织标识（OUI）的期望格式。
	PatternOrganization = "XXXXXX (X = hex digit)"
)

// ValidationError 表示通过整数构造地址时某个八位组越界。
//
// 仅 [New] 会返回此错误；解析和生成的八位组来源本身有界。
type ValidationError struct {
	// Octet 越界八位组的下标（0..5）。
	Octet int
	// Value 传入的原始值。
	Value int
}

// Error 实现 error 接口。
func (e *ValidationError) Error() string {
	return fmt.Sprintf("xmac: octet %d: value %d not in range [0,255]", e.Octet, e.Value)
}

// Is 支持 errors.Is(err, ErrOctetRange)。
func (e *ValidationError) Is(target error) bool {
	return target == ErrOctetRange
}

// ParseError 表示地址或组织标识文本不符合期望格式。
//
// Input 保留调用方传入的原始文本（未去除空白），Pattern 为期望格式描述，
// 二者用于诊断输出，不依赖任何本地化机制。
type ParseError struct {
	Input   string
	Pattern string
}

// Error 实现 error 接口。
func (e *ParseError) Error() string {
	return fmt.Sprintf("xmac: invalid format: %q does not match %s", e.Input, e.Pattern)
}

// Is 支持 errors.Is(err, ErrInvalidFormat)。
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidFormat
}
