// Package xmac 提供 IEEE 802 MAC 地址（EUI-48）的值类型与基础操作。
//
//   - 构造与校验：[New]（每个八位组须在 [0,255]）、[AddrFrom6]
//   - 严格解析：[Parse]（XX:XX:XX:XX:XX:XX）、[ParseOrganization]（XXXXXX）
//   - 属性判断：单播/多播、本地管理/OUI 强制、广播
//   - 标志位变换：[Addr.AsUnicast]、[Addr.AsMulticast]、
//     [Addr.AsOUIEnforced]、[Addr.AsLocallyAdministered]
//   - 随机生成：[Generate]，可保留指定组织的 OUI
//   - Text/JSON 序列化
//
// # 快速示例
//
//	addr, err := xmac.Parse("02:00:00:00:00:00")
//	addr.IsLocallyAdministered()  // true
//	addr.IsMulticast()            // false
//	addr.Organization()           // "020000"
//
//	org, _ := xmac.ParseOrganization("F497C2")
//	gen, _ := xmac.Generate(&org, nil)
//	gen = gen.AsUnicast().AsLocallyAdministered()
//
// # 标志位
//
// 第一字节 bit 0 区分单播（0）与多播（1），bit 1 区分 OUI 强制（0）与本地管理（1）。
// 变换以按位覆盖的方式强制某一位，同一位上最后一次变换生效。
// 广播地址 ff:ff:ff:ff:ff:ff 同时满足多播与本地管理。
//
// # 错误处理
//
// 所有失败以返回值形式交给直接调用方，包内不记录日志、不重试：
//
//	_, err := xmac.Parse("gg:00:00:00:00:00")
//	errors.Is(err, xmac.ErrInvalidFormat)  // true
//	var pe *xmac.ParseError
//	errors.As(err, &pe)                    // pe.Input, pe.Pattern 用于诊断
//
//	_, err = xmac.New(256, 0, 0, 0, 0, 0)
//	errors.Is(err, xmac.ErrOctetRange)     // true
//
// 仅支持 EUI-48，不支持 EUI-64。
package xmac
