package xmac

import (
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]，输出规范冒号格式。
func (a Addr) MarshalText() ([]byte, error) {
	var buf [addrTextLen]byte
	return appendWithSep(buf[:0], a.bytes, ':', hexLower), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 与 [Parse] 一样只接受冒号格式。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的规范冒号格式字符串（"aa:bb:cc:dd:ee:ff"）。
//
// MAC 地址字符串仅包含 [0-9a-f:] 字符，无需 JSON 转义，
// 因此直接构造带引号的字节切片。
func (a Addr) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, addrTextLen+2)
	buf = append(buf, '"')
	buf = appendWithSep(buf, a.bytes, ':', hexLower)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 设置为零值；字符串按 [Parse] 解析。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
