package xmac

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Generate 从随机源生成 MAC 地址。
//
// 每次调用恰好从 r 读取 6 字节，依次作为八位组 0-5。
// org 非 nil 时，其八位组 0-2 覆盖随机得到的八位组 0-2，八位组 3-5 保持随机。
// 覆盖不改变读取量与读取顺序：固定种子的随机源在有无 org 时得到相同的八位组 3-5。
//
// r 为 nil 时使用 [crypto/rand.Reader]。生成的地址用作真实硬件标识的替代，
// 生产环境应使用密码学安全的随机源；仅测试使用可复现的种子源。
//
// 返回的地址不做标志位处理，调用方按需使用 [Addr.AsUnicast] 等变换。
func Generate(org *Addr, r io.Reader) (Addr, error) {
	if r == nil {
		r = rand.Reader
	}

	var addr Addr
	if _, err := io.ReadFull(r, addr.bytes[:]); err != nil {
		return Addr{}, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	if org != nil {
		addr.bytes[0] = org.bytes[0]
		addr.bytes[1] = org.bytes[1]
		addr.bytes[2] = org.bytes[2]
	}
	return addr, nil
}
