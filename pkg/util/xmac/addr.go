package xmac

import "fmt"

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 可直接比较（==）和用作 map key
//   - 所有变换（如 [Addr.AsMulticast]）返回新值，不修改原值
//   - 并发安全，无需加锁
//
// 零值即 00:00:00:00:00:00，是合法地址。
//
// 使用 [Parse]、[ParseOrganization] 或 [New] 创建地址：
//
//	addr, err := xmac.Parse("aa:bb:cc:dd:ee:ff")
//	addr, err := xmac.New(0x02, 0, 0, 0, 0, 1)
type Addr struct {
	bytes [6]byte
}

// New 从六个整数构造 MAC 地址。
//
// 每个值必须位于 [0,255]，否则返回 [*ValidationError]，
// 其中记录第一个越界八位组的下标和值。
func New(o0, o1, o2, o3, o4, o5 int) (Addr, error) {
	octets := [6]int{o0, o1, o2, o3, o4, o5}
	var addr Addr
	for i, v := range octets {
		if v < 0 || v > 0xff {
			return Addr{}, &ValidationError{Octet: i, Value: v}
		}
		addr.bytes[i] = byte(v)
	}
	return addr, nil
}

// MustNew 类似 [New]，但构造失败时 panic。
// 仅用于包级常量初始化或测试。
func MustNew(o0, o1, o2, o3, o4, o5 int) Addr {
	addr, err := New(o0, o1, o2, o3, o4, o5)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustNew: %v", err))
	}
	return addr
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// Bytes 返回 MAC 地址的字节表示。
// 返回副本，修改不影响原值。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// Octet 返回第 i 个八位组（0..5），越界时 panic。
func (a Addr) Octet(i int) byte {
	return a.bytes[i]
}

// Compare 比较两个 MAC 地址的字节顺序。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	for i := range 6 {
		if a.bytes[i] < b.bytes[i] {
			return -1
		}
		if a.bytes[i] > b.bytes[i] {
			return 1
		}
	}
	return 0
}
