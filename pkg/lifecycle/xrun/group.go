package xrun

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/io7m-com/ethermaker/pkg/observability/xlog"
	"golang.org/x/sync/errgroup"
)

// Group 基于 errgroup + context 管理多个任务的并发运行和协调关闭。
//
// 当任一任务返回错误或 context 被取消时，所有任务都会收到取消信号。
// Go、GoWithName、Cancel 可并发调用；Wait 应仅调用一次。
//
//	g, ctx := xrun.NewGroup(ctx)
//	g.Go(func(ctx context.Context) error {
//	    return produce(ctx)
//	})
//	if err := g.Wait(); err != nil {
//	    return err
//	}
type Group struct {
	eg       *errgroup.Group
	ctx      context.Context
	causeCtx context.Context
	cancel   context.CancelCauseFunc
	opts     *groupOptions
}

// NewGroup 创建新的 Group，返回的 context 在任一任务出错时被取消。
// nil ctx 视为 context.Background()，nil Option 被忽略。
func NewGroup(ctx context.Context, opts ...Option) (*Group, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	options := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(options)
	}

	causeCtx, cancel := context.WithCancelCause(ctx)
	eg, egCtx := errgroup.WithContext(causeCtx)

	return &Group{
		eg:       eg,
		ctx:      egCtx,
		causeCtx: causeCtx,
		cancel:   cancel,
		opts:     options,
	}, egCtx
}

// Go 启动一个 goroutine 执行 fn。fn 返回非 nil 错误时取消其他任务。
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		return fn(g.ctx)
	})
}

// GoWithName 与 Go 相同，但会在日志中记录任务名称。
func (g *Group) GoWithName(name string, fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		attrs := []slog.Attr{slog.String("group", g.opts.name), slog.String("task", name)}
		g.opts.logger.Debug(g.ctx, "task starting", attrs...)

		err := fn(g.ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			g.opts.logger.Warn(g.ctx, "task exited with error", append(attrs, xlog.Err(err))...)
		} else {
			g.opts.logger.Debug(g.ctx, "task stopped", attrs...)
		}
		return err
	})
}

// Wait 等待所有 goroutine 完成并返回第一个非 nil 错误。
//
// Group 被主动取消时（Cancel 或信号），context.Canceled 会被过滤，
// 改为返回 context.Cause；没有显式原因时返回 nil。
// 任务内部产生的 context.Canceled 原样返回。
func (g *Group) Wait() error {
	defer g.cancel(nil)

	err := g.eg.Wait()

	if errors.Is(err, context.Canceled) {
		if g.causeCtx.Err() != nil {
			return g.explicitCause()
		}
		return err
	}

	// 任务都返回 nil 时，Cancel(cause) 设置的原因仍不能丢失
	if err == nil && g.causeCtx.Err() != nil {
		return g.explicitCause()
	}
	return err
}

func (g *Group) explicitCause() error {
	if cause := context.Cause(g.causeCtx); cause != nil && !errors.Is(cause, context.Canceled) {
		return cause
	}
	return nil
}

// Cancel 主动取消所有 goroutine，cause 会成为 Wait 的返回值。
//
// cause 不应包装 context.Canceled，否则 Wait 会将其视为普通取消而过滤掉。
func (g *Group) Cancel(cause error) {
	g.cancel(cause)
}

// Context 返回 Group 的 context。
func (g *Group) Context() context.Context {
	return g.ctx
}

// runGroup 是 Run、RunWithOptions、RunTask 的共享实现。
//
// 默认注册信号监听任务：收到配置的信号时以 &SignalError{Signal: sig}
// 取消 Group，Wait 随之返回 *SignalError。
func runGroup(ctx context.Context, opts []Option, setup func(g *Group)) error {
	g, _ := NewGroup(ctx, opts...)

	if !g.opts.noSignalHandler {
		signals := g.opts.signals
		// signal.Notify(ch) 无参调用会订阅所有信号
		if len(signals) == 0 {
			signals = DefaultSignals()
		}

		g.Go(func(ctx context.Context) error {
			testc := testSigChan(ctx)
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, signals...)
			defer signal.Stop(sigCh)

			var sig os.Signal
			select {
			case sig = <-testc:
			case sig = <-sigCh:
			case <-ctx.Done():
				return ctx.Err()
			}

			g.opts.logger.Info(ctx, "received signal",
				slog.String("group", g.opts.name),
				slog.String("signal", sig.String()),
			)
			g.cancel(&SignalError{Signal: sig})
			return nil
		})
	}

	setup(g)
	return g.Wait()
}

// Run 监听信号并运行常驻任务，直到任一任务出错或收到信号。
//
// 收到 SIGHUP/SIGINT/SIGTERM/SIGQUIT 时 ctx 被取消，Run 返回 *SignalError。
func Run(ctx context.Context, tasks ...func(ctx context.Context) error) error {
	return RunWithOptions(ctx, nil, tasks...)
}

// RunWithOptions 与 Run 相同，但支持配置选项。
func RunWithOptions(ctx context.Context, opts []Option, tasks ...func(ctx context.Context) error) error {
	return runGroup(ctx, opts, func(g *Group) {
		for _, task := range tasks {
			g.Go(task)
		}
	})
}

// RunTask 运行一个有限任务，并在等待期间监听信号。
//
// 与 Run 不同，task 正常返回后信号监听随即停止，RunTask 返回 nil；
// task 出错时返回该错误；收到信号时 task 的 ctx 被取消，返回 *SignalError；
// 父 ctx 被取消导致 task 未完成时，返回 task 的错误（通常是 ctx.Err()）。
//
//	err := xrun.RunTask(ctx, []xrun.Option{xrun.WithName("generate")},
//	    func(ctx context.Context) error {
//	        return gen.Run(ctx)
//	    })
func RunTask(ctx context.Context, opts []Option, task func(ctx context.Context) error) error {
	var taskErr error
	err := runGroup(ctx, opts, func(g *Group) {
		g.GoWithName(g.opts.name, func(ctx context.Context) error {
			if task == nil {
				taskErr = ErrNilFunc
				return taskErr
			}
			if taskErr = task(ctx); taskErr != nil {
				return taskErr
			}
			// 结束信号监听；无显式原因，Wait 返回 nil
			g.cancel(nil)
			return nil
		})
	})
	if err != nil {
		return err
	}
	// Wait 会过滤父 ctx 取消，但未完成的任务不能被当作成功
	return taskErr
}
