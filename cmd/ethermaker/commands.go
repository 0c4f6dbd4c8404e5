package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/io7m-com/ethermaker/internal/ethermaker"
	"github.com/io7m-com/ethermaker/pkg/lifecycle/xrun"
	"github.com/io7m-com/ethermaker/pkg/observability/xlog"
	"github.com/io7m-com/ethermaker/pkg/util/xmac"
)

// usageError 表示参数错误（退出码 2）。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) *usageError {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// env 保存一次运行的输入输出和由全局选项构建的依赖。
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg     cliConfig
	logger  xlog.Logger
	cleanup func() error
}

func newEnv(stdin io.Reader, stdout, stderr io.Writer) *env {
	return &env{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		cfg:    defaultConfig(),
		logger: xlog.Discard(),
	}
}

// setup 是根命令的 Before 钩子：加载配置并构建 logger。
func (e *env) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return ctx, usageErrorf("load config: %v", err)
	}
	applyLogFlags(cmd, &cfg.Log)

	b := xlog.New().
		SetOutput(e.stderr).
		SetLevelString(cfg.Log.Level).
		SetFormat(cfg.Log.Format).
		SetOnError(func(err error) {
			fmt.Fprintf(e.stderr, "ethermaker: log write failed: %v\n", err)
		})
	if cfg.Log.File != "" {
		b.SetRotation(cfg.Log.File)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return ctx, usageErrorf("configure logging: %v", err)
	}

	e.cfg = cfg
	e.logger = logger
	e.cleanup = cleanup
	return ctx, nil
}

func (e *env) close() {
	if e.cleanup != nil {
		if err := e.cleanup(); err != nil {
			fmt.Fprintf(e.stderr, "ethermaker: close log: %v\n", err)
		}
		e.cleanup = nil
	}
}

func (e *env) runOptions(name string) []xrun.Option {
	return []xrun.Option{
		xrun.WithName(name),
		xrun.WithLogger(e.logger),
	}
}

// createCommands 创建所有子命令。
func createCommands(e *env) []*cli.Command {
	return []*cli.Command{
		createDescribeCommand(e),
		createGenerateCommand(e),
		createVersionCommand(e),
	}
}

func createDescribeCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "describe",
		Usage: "从标准输入逐行读取 MAC 地址并输出其分类",
		Description: `每行一个 XX:XX:XX:XX:XX:XX 形式的地址，首尾空白被忽略，空行被跳过。
无法解析的行记录错误日志后跳过，不影响退出码。`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "输出格式 (text/json)",
				Value: string(ethermaker.FormatText),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := e.cfg.Describe.Format
			if cmd.IsSet("format") {
				format = cmd.String("format")
			}
			return cmdDescribe(ctx, e, format)
		},
	}
}

func createGenerateCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "生成互不重复的随机 MAC 地址",
		Description: `依次按 --multicast、--unicast、--local 强制标志位，因此 --unicast
（默认开启）优先于 --multicast；生成多播地址需同时指定 --unicast=false。
强制后为广播地址的结果会被丢弃并重新抽取。`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "organization",
				Usage: "组织标识（OUI），6 位十六进制，例如 C42996",
			},
			&cli.BoolFlag{
				Name:  "local",
				Usage: "生成本地管理地址",
			},
			&cli.BoolFlag{
				Name:  "unicast",
				Usage: "生成单播地址",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "multicast",
				Usage: "生成多播地址",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "生成的地址数量",
				Value: defaultCount,
			},
			&cli.IntFlag{
				Name:  "max-attempts",
				Usage: "随机抽取次数上限（0 表示不限制）",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "输出格式 (text/json)",
				Value: string(ethermaker.FormatText),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := e.cfg.Generate
			applyGenerateFlags(cmd, &cfg)
			return cmdGenerate(ctx, e, cfg)
		},
	}
}

func createVersionCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "显示版本",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "long",
				Usage: "同时显示提交和构建时间",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdVersion(e.stdout, cmd.Bool("long"))
		},
	}
}

func cmdDescribe(ctx context.Context, e *env, format string) error {
	f, err := ethermaker.ParseFormat(format)
	if err != nil {
		return usageErrorf("--format: %v", err)
	}

	d := ethermaker.NewDescriber(e.logger, f)
	var stats ethermaker.Stats
	err = xrun.RunTask(ctx, e.runOptions("describe"), func(ctx context.Context) error {
		var err error
		stats, err = d.Describe(ctx, e.stdin, e.stdout)
		return err
	})
	if err != nil {
		return runtimeError(err)
	}

	e.logger.Debug(ctx, "describe finished",
		xlog.Count(int64(stats.Described)), xlog.Line(stats.Lines))
	return nil
}

// cmdGenerate 在任何抽取之前完成全部参数校验，参数错误时不产生输出。
func cmdGenerate(ctx context.Context, e *env, cfg generateConfig) error {
	if cfg.Count < 0 {
		return usageErrorf("--count: must be >= 0, got %d", cfg.Count)
	}
	if cfg.MaxAttempts < 0 {
		return usageErrorf("--max-attempts: must be >= 0, got %d", cfg.MaxAttempts)
	}
	format, err := ethermaker.ParseFormat(cfg.Format)
	if err != nil {
		return usageErrorf("--format: %v", err)
	}

	opts := ethermaker.GenerateOptions{
		Local:       cfg.Local,
		Unicast:     cfg.Unicast,
		Multicast:   cfg.Multicast,
		Count:       cfg.Count,
		MaxAttempts: cfg.MaxAttempts,
	}
	if cfg.Organization != nil {
		org, err := xmac.ParseOrganization(*cfg.Organization)
		if err != nil {
			return usageErrorf("--organization: %v", err)
		}
		opts.Organization = &org
	}

	gen := ethermaker.NewGenerator(opts, e.logger)
	var addrs []xmac.Addr
	err = xrun.RunTask(ctx, e.runOptions("generate"), func(ctx context.Context) error {
		var err error
		addrs, err = gen.Generate(ctx)
		return err
	})
	if err != nil {
		return runtimeError(err)
	}

	if err := ethermaker.Write(e.stdout, addrs, format); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func cmdVersion(w io.Writer, long bool) error {
	if _, err := fmt.Fprintf(w, "ethermaker %s\n", Version); err != nil {
		return err
	}
	if long {
		_, err := fmt.Fprintf(w, "commit: %s\nbuilt: %s\n", GitCommit, BuildTime)
		return err
	}
	return nil
}

// runtimeError 为信号中断补充可读的说明，其余错误原样返回（退出码 1）。
func runtimeError(err error) error {
	var sigErr *xrun.SignalError
	if errors.As(err, &sigErr) {
		return fmt.Errorf("interrupted: %w", err)
	}
	return err
}
