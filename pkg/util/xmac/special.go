package xmac

// broadcastAddr 返回内部使用的广播地址。
func broadcastAddr() Addr { return Addr{bytes: [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}} }

// Zero 返回全零地址 00:00:00:00:00:00。
// 与零值 Addr{} 相同。
func Zero() Addr { return Addr{} }

// Broadcast 返回广播地址 ff:ff:ff:ff:ff:ff。
// 广播地址同时是多播地址和本地管理地址。
func Broadcast() Addr { return broadcastAddr() }
