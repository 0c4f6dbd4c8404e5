// Package xrun 提供基于 errgroup + context 的任务生命周期管理。
//
// 当任一任务返回错误或收到终止信号时 context 被取消，
// 所有任务应监听 ctx.Done() 并尽快退出。
//
// # 入口
//
//   - [Run] / [RunWithOptions]: 常驻任务，运行到出错或收到信号为止
//   - [RunTask]: 有限任务（如读取标准输入、批量生成），完成后立即返回
//   - [NewGroup]: 手动组合多个任务
//
// # 信号
//
// 默认监听 [DefaultSignals]。收到信号后返回 [*SignalError]，
// 可用 errors.Is(err, ErrSignal) 判断：
//
//	err := xrun.RunTask(ctx, nil, func(ctx context.Context) error {
//	    return describer.Describe(ctx, os.Stdin, os.Stdout)
//	})
//	if errors.Is(err, xrun.ErrSignal) {
//	    // 用户按下了 Ctrl-C
//	}
//
// [WithSignals] 自定义信号列表，[WithoutSignalHandler] 完全禁用信号处理。
package xrun
