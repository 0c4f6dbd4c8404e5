package xmac

// 以下变换各自强制第一字节中的一个标志位，其余八位组原样复制。
// 作用于同一位的变换按调用顺序覆盖：最后一次调用决定该位的最终状态，
// 例如 a.AsMulticast().AsUnicast() 是单播地址。

// AsUnicast 返回清除组地址位（bit 0）后的单播地址。
func (a Addr) AsUnicast() Addr {
	a.bytes[0] &^= bitMulticast
	return a
}

// AsMulticast 返回设置组地址位（bit 0）后的多播地址。
func (a Addr) AsMulticast() Addr {
	a.bytes[0] |= bitMulticast
	return a
}

// AsOUIEnforced 返回清除本地管理位（bit 1）后的全球唯一地址。
func (a Addr) AsOUIEnforced() Addr {
	a.bytes[0] &^= bitLocal
	return a
}

// AsLocallyAdministered 返回设置本地管理位（bit 1）后的本地管理地址。
func (a Addr) AsLocallyAdministered() Addr {
	a.bytes[0] |= bitLocal
	return a
}
