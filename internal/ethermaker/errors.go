package ethermaker

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeCount 请求生成的地址数量为负数。
	ErrNegativeCount = errors.New("ethermaker: count must not be negative")

	// ErrNegativeAttempts 最大尝试次数为负数。
	ErrNegativeAttempts = errors.New("ethermaker: max attempts must not be negative")

	// ErrAttemptsExceeded 在尝试次数上限内未能凑齐所需的不重复地址。
	ErrAttemptsExceeded = errors.New("ethermaker: generation attempts exceeded")

	// ErrLineTooLong 输入行超过长度上限。
	ErrLineTooLong = errors.New("ethermaker: input line too long")

	// ErrUnknownFormat 未知的输出格式。
	ErrUnknownFormat = errors.New("ethermaker: unknown output format")
)

// GenerationError 描述一次因尝试次数耗尽而失败的批量生成。
type GenerationError struct {
	Requested int
	Generated int
	Attempts  int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("ethermaker: generated %d of %d distinct addresses in %d attempts",
		e.Generated, e.Requested, e.Attempts)
}

// Is 支持 errors.Is(err, ErrAttemptsExceeded)。
func (e *GenerationError) Is(target error) bool {
	return target == ErrAttemptsExceeded
}
