// Package ethermaker 实现 ethermaker 命令行的两个核心流程：
// 逐行描述标准输入中的 MAC 地址（[Describer]），以及批量生成互不重复的
// 随机 MAC 地址（[Generator]）。
//
// 两者都只依赖 xmac 的值类型与解析/生成函数，日志通过 xlog.Logger 输出，
// 结果写入调用方提供的 io.Writer。
package ethermaker
