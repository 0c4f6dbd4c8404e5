// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、轮转、固定属性）
//   - 动态级别调整
//   - 便捷属性构造：[Err]、[Component]、[Operation]、[Count]、[Line]、[Input]
//
// # 创建 Logger
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/ethermaker.log").
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
//	logger.Error(ctx, "parse failed", xlog.Line(3), xlog.Err(err))
//
// 未配置输出时写 stderr。测试或不关心日志的调用方可使用 [Discard]。
package xlog
