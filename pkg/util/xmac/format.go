package xmac

// Format 定义 MAC 地址的格式化风格。
type Format uint8

const (
	// FormatColon 使用冒号分隔，小写：aa:bb:cc:dd:ee:ff
	FormatColon Format = iota
	// FormatDash 使用短线分隔，小写：aa-bb-cc-dd-ee-ff
	FormatDash
	// FormatDot 使用点分隔（Cisco 风格），小写：aabb.ccdd.eeff
	FormatDot
	// FormatBare 无分隔符，小写：aabbccddeeff
	FormatBare
	// FormatColonUpper 使用冒号分隔，大写：AA:BB:CC:DD:EE:FF
	FormatColonUpper
	// FormatDashUpper 使用短线分隔，大写：AA-BB-CC-DD-EE-FF
	FormatDashUpper
)

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// String 返回规范文本形式：小写、冒号分隔，如 "02:00:00:00:00:00"。
// 这是 [Parse] 唯一接受的格式，因此 Parse(a.String()) == a。
func (a Addr) String() string {
	return formatWithSep(a.bytes, ':', hexLower)
}

// FormatString 按指定格式返回 MAC 地址字符串。
// 未知格式按 [FormatColon] 输出。
// 注意只有 FormatColon 与 FormatColonUpper 的输出可被 [Parse] 读回。
func (a Addr) FormatString(f Format) string {
	switch f {
	case FormatDash:
		return formatWithSep(a.bytes, '-', hexLower)
	case FormatDot:
		return formatDot(a.bytes, hexLower)
	case FormatBare:
		return formatBare(a.bytes, hexLower)
	case FormatColonUpper:
		return formatWithSep(a.bytes, ':', hexUpper)
	case FormatDashUpper:
		return formatWithSep(a.bytes, '-', hexUpper)
	default:
		return formatWithSep(a.bytes, ':', hexLower)
	}
}

// appendWithSep 将 6 字节按 "xx<sep>xx..." 追加到 buf。
func appendWithSep(buf []byte, b [6]byte, sep byte, hex string) []byte {
	for i, v := range b {
		if i > 0 {
			buf = append(buf, sep)
		}
		buf = append(buf, hex[v>>4], hex[v&0x0f])
	}
	return buf
}

// formatWithSep 使用指定分隔符格式化（6*2 + 5 = 17 字节）。
func formatWithSep(b [6]byte, sep byte, hex string) string {
	var buf [addrTextLen]byte
	return string(appendWithSep(buf[:0], b, sep, hex))
}

// formatDot 格式化为点分隔格式（xxxx.xxxx.xxxx）。
func formatDot(b [6]byte, hex string) string {
	var buf [14]byte
	out := buf[:0]
	for i, v := range b {
		if i == 2 || i == 4 {
			out = append(out, '.')
		}
		out = append(out, hex[v>>4], hex[v&0x0f])
	}
	return string(out)
}

// formatBare 格式化为无分隔符格式（xxxxxxxxxxxx）。
func formatBare(b [6]byte, hex string) string {
	var buf [12]byte
	out := buf[:0]
	for _, v := range b {
		out = append(out, hex[v>>4], hex[v&0x0f])
	}
	return string(out)
}
