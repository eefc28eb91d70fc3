// inetctl 是 xinet 库的命令行入口，用于判定 IP 地址文本、查询地址族、
// 格式化端点以及查询本机规范主机名。
//
// 用法:
//
//	inetctl <命令> [命令选项] [参数]
//
// 命令:
//
//	check <地址>...   判定每个地址文本的类别（ipv4/ipv6/ipv6-bracketed/ipv4-mapped/invalid）
//	check -           从标准输入逐行读取地址文本并判定
//	family <地址>     输出地址族标签（IPv4 或 IPv6）
//	format            按 host:port 形式格式化端点（--ip/--port/--zone/--udp）
//	localhost         输出本机规范主机名（--timeout 控制解析超时，上限 5m）
//	help              显示帮助信息
//
// 判定规则说明:
//
//	check 与 family 只做文本判定，不访问网络。点分十进制字段不允许前导零，
//	IPv6 的 zone 形如 %eth0，URL 方括号形式恰剥一层括号。
//	IPv4-mapped 写法（::ffff:a.b.c.d）属于 IPv6 地址族。
//
// 退出码:
//
//	0: 命令执行成功（check: 全部地址合法）
//	1: 命令执行失败（check: 存在非法地址; family: 地址族无法判定）
//	2: 参数错误（缺少必需参数、无效端口、未知命令等）
//
// 示例:
//
//	inetctl check 192.168.1.1 2001:db8::1        # 判定多个地址
//	echo "fe80::1%eth0" | inetctl check -        # 从标准输入读取
//	inetctl family ::ffff:10.0.0.1               # 输出 IPv6
//	inetctl format --ip 10.0.0.1 --port 8080     # 输出 10.0.0.1:8080
//	inetctl format --port 8080                   # 未解析端点，输出 :8080
//	inetctl localhost --timeout 3s               # 限时查询规范主机名
package main

import (
	"context"
	"errors"
	"fmt"
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
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "inetctl",
		Usage:          "IP 地址文本判定与端点格式化工具",
		Version:        fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"InetKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `inetctl 对 IP 地址文本做纯文本判定，不做任何网络访问
（localhost 命令除外，它会查询系统解析器）。

判定类别:
  ipv4              点分十进制（四个 0-255 字段，不允许前导零）
  ipv6              十六进制标准/压缩形式，可带 %zone
  ipv6-bracketed    URL 方括号形式，如 [::1]
  ipv4-mapped       IPv4-mapped 形式，如 ::ffff:192.168.1.1
  invalid           以上皆非

localhost 命令:
  依次尝试 主机名 → CNAME 规范名，任一步失败回退输出 localhost，
  永不报错。--timeout 控制整个解析过程的时限。`,
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 设置信号处理
	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// isCLIUsageError 判断是否为 CLI 框架产生的参数类错误（未知 flag、未知命令等）。
// urfave/cli 的 flag 解析错误没有专门的错误类型，只能按错误文本识别。
func isCLIUsageError(err error) bool {
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		// 未知子命令等由框架包装为 ExitCoder，消息已由 ExitErrHandler 输出
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "invalid value") ||
		strings.Contains(msg, "No help topic for")
}
