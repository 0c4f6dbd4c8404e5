// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmac: MAC 地址值类型，解析、分类、标志位变换与随机生成
package util
