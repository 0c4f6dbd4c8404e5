package xmac

// 第一字节中的标志位。
const (
	// bitMulticast 组地址位（I/G），1 = 多播，0 = 单播。
	bitMulticast byte = 0x01
	// bitLocal 本地管理位（U/L），1 = 本地管理，0 = OUI 强制（全球唯一）。
	bitLocal byte = 0x02
)

// IsUnicast 报告 a 是否为单播地址。
// 单播地址的第一字节最低位（bit 0）为 0。
func (a Addr) IsUnicast() bool {
	return a.bytes[0]&bitMulticast == 0
}

// IsMulticast 报告 a 是否为多播地址。
// 多播地址的第一字节最低位（bit 0）为 1。
// 广播地址也是一种特殊的多播地址。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&bitMulticast == bitMulticast
}

// IsBroadcast 报告 a 是否为广播地址（ff:ff:ff:ff:ff:ff）。
func (a Addr) IsBroadcast() bool {
	return a == broadcastAddr()
}

// IsLocallyAdministered 报告 a 是否为本地管理地址（LAA）。
// LAA 的第一字节次低位（bit 1）为 1。
// 虚拟机、容器等通常使用 LAA。
func (a Addr) IsLocallyAdministered() bool {
	return a.bytes[0]&bitLocal == bitLocal
}

// IsUniversallyAdministered 报告 a 是否为 OUI 强制的全球唯一地址（UAA）。
// UAA 的第一字节次低位（bit 1）为 0。
func (a Addr) IsUniversallyAdministered() bool {
	return a.bytes[0]&bitLocal == 0
}

// IsZero 报告 a 是否为全零地址（00:00:00:00:00:00）。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// OUI 返回组织唯一标识符（Organizationally Unique Identifier），
// 即 MAC 地址的前 3 字节。
func (a Addr) OUI() [3]byte {
	return [3]byte{a.bytes[0], a.bytes[1], a.bytes[2]}
}

// NIC 返回网络接口控制器标识，即 MAC 地址的后 3 字节。
func (a Addr) NIC() [3]byte {
	return [3]byte{a.bytes[3], a.bytes[4], a.bytes[5]}
}

// Organization 返回 OUI 的文本形式：6 位小写十六进制，无分隔符，
// 例如 "f497c2"。
func (a Addr) Organization() string {
	var buf [6]byte
	for i := range 3 {
		buf[i*2] = hexLower[a.bytes[i]>>4]
		buf[i*2+1] = hexLower[a.bytes[i]&0x0f]
	}
	return string(buf[:])
}
