// Package xrotate 为 ethermaker 的 --log-file 输出提供按大小轮转的日志文件。
//
// [NewLumberjack] 基于 lumberjack v2 实现 [Rotator]。默认值偏小
// （10MB、3 个备份、保留 7 天），适合命令行工具偶发的诊断输出。
//
// 轮转器通常不直接使用，而是交给 xlog.Builder.SetRotation 构建：
//
//	logger, cleanup, err := xlog.New().SetRotation("/var/log/ethermaker.log").Build()
package xrotate
