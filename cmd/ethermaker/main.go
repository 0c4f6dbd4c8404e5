// ethermaker 解析、分类并随机生成 IEEE 802 MAC 地址。
//
// 用法:
//
//	ethermaker [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      YAML/JSON 配置文件
//	    --log-level   日志级别 (debug/info/warn/error, 默认: info)
//	    --log-format  日志格式 (text/json, 默认: text)
//	    --log-file    日志写入文件并按大小轮转（默认写 stderr）
//
// 命令:
//
//	describe   从标准输入逐行读取地址并输出其分类
//	generate   生成互不重复的随机地址
//	version    显示版本
//
// 退出码:
//
//	0: 成功
//	1: 运行失败（随机源错误、输出失败、被信号中断、尝试次数耗尽）
//	2: 参数错误（负数数量、非法组织标识、配置文件错误、未知参数等）
//
// 示例:
//
//	echo 02:42:ac:11:00:02 | ethermaker describe
//	ethermaker generate --count 5
//	ethermaker generate --organization F497C2 --local --count 3
//	ethermaker generate --multicast --unicast=false
//	ethermaker -c ethermaker.yaml generate --format json
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// createApp 创建 CLI 应用，结果写 stdout，日志和错误写 stderr。
func createApp(e *env) *cli.Command {
	return &cli.Command{
		Name:      "ethermaker",
		Usage:     "解析、分类并生成 MAC 地址",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    e.stdin,
		Writer:    e.stdout,
		ErrWriter: e.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML/JSON 配置文件路径",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
				Value: defaultLogLevel,
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
				Value: defaultLogFormat,
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件路径，启用按大小轮转",
			},
		},
		Before:   e.setup,
		Commands: createCommands(e),
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(e.stderr, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := newEnv(stdin, stdout, stderr)
	defer e.close()

	if err := createApp(e).Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if isCLIUsageError(err) {
			// flag 解析器已向 stderr 输出错误详情
			fmt.Fprintf(stderr, "参数错误: %v\n", err)
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// isCLIUsageError 判断错误是否来自 urfave/cli 的参数解析。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"Required flag",
		"No help topic for",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
