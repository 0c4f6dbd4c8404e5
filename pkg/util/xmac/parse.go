package xmac

import (
	"fmt"
	"strings"
)

// 严格格式的固定长度。
const (
	// addrTextLen xx:xx:xx:xx:xx:xx
	addrTextLen = 17
	// orgTextLen xxxxxx
	orgTextLen = 6
)

// Parse 解析 MAC 地址字符串。
//
// 仅接受冒号分隔格式 XX:XX:XX:XX:XX:XX：六组、每组恰好两位十六进制数字。
// 输入会先去除首尾的空格与 ASCII 控制字符（U+0000 到 U+0020）；地址内部出现空白、分隔符不是冒号、组数或位数不符、
// 含非十六进制字符时均返回 [*ParseError]。大小写不敏感。
//
//	xmac.Parse("AA:BB:CC:DD:EE:FF")     // aa:bb:cc:dd:ee:ff
//	xmac.Parse("  02:00:00:00:00:00 ")  // 02:00:00:00:00:00
//	xmac.Parse("aa-bb-cc-dd-ee-ff")     // ErrInvalidFormat
func Parse(s string) (Addr, error) {
	t := trimControl(s)
	if len(t) != addrTextLen {
		return Addr{}, &ParseError{Input: s, Pattern: PatternAddress}
	}

	var addr Addr
	for i := range 6 {
		offset := i * 3 // 每组 2 个十六进制字符 + 1 个分隔符
		if i > 0 && t[offset-1] != ':' {
			return Addr{}, &ParseError{Input: s, Pattern: PatternAddress}
		}
		b, ok := parseHexByte(t[offset], t[offset+1])
		if !ok {
			return Addr{}, &ParseError{Input: s, Pattern: PatternAddress}
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// trimControl 去除首尾不大于 U+0020 的字符。U+00A0 等 Unicode 空白不会被去除。
func trimControl(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseOrganization 解析组织标识（OUI），例如 "C419D1"。
//
// 去除首尾的空格与 ASCII 控制字符后必须恰好是六位连续的十六进制数字（无分隔符）。
// 六位数字按 24 位整数解析，高字节在前拆分为八位组 0-2，
// 八位组 3-5 置零。格式不符时返回 [*ParseError]。
func ParseOrganization(s string) (Addr, error) {
	t := trimControl(s)
	if len(t) != orgTextLen {
		return Addr{}, &ParseError{Input: s, Pattern: PatternOrganization}
	}

	var base uint32
	for i := range orgTextLen {
		v := hexValue(t[i])
		if v < 0 {
			return Addr{}, &ParseError{Input: s, Pattern: PatternOrganization}
		}
		base = base<<4 | uint32(v)
	}
	return Addr{bytes: [6]byte{byte(base >> 16), byte(base >> 8), byte(base)}}, nil
}

// MustParseOrganization 类似 [ParseOrganization]，但解析失败时 panic。
func MustParseOrganization(s string) Addr {
	addr, err := ParseOrganization(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParseOrganization(%q): %v", s, err))
	}
	return addr
}

// parseHexByte 解析两个十六进制字符为一个字节。
func parseHexByte(high, low byte) (byte, bool) {
	h := hexValue(high)
	l := hexValue(low)
	if h < 0 || l < 0 {
		return 0, false
	}
	return byte(h<<4 | l), true
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
