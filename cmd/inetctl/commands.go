package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/inetkit/pkg/util/xinet"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数类错误，run() 统一映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// 地址文本的类别标签。五个类别互斥。
const (
	classIPv4          = "ipv4"
	classIPv6          = "ipv6"
	classIPv6Bracketed = "ipv6-bracketed"
	classIPv4Mapped    = "ipv4-mapped"
	classInvalid       = "invalid"
)

const (
	defaultLookupTimeout = 5 * time.Second
	maxLookupTimeout     = 5 * time.Minute

	maxPort = 65535
)

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createCheckCommand(),
		createFamilyCommand(),
		createFormatCommand(),
		createLocalhostCommand(),
	}
}

// createCheckCommand 创建 check 子命令。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"c"},
		Usage:     "判定地址文本类别（ipv4/ipv6/ipv6-bracketed/ipv4-mapped/invalid）",
		ArgsUsage: "<地址>... | -",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdCheck(ctx, cmd.Args().Slice())
		},
	}
}

// createFamilyCommand 创建 family 子命令。
func createFamilyCommand() *cli.Command {
	return &cli.Command{
		Name:      "family",
		Aliases:   []string{"f"},
		Usage:     "输出地址族标签（IPv4 或 IPv6）",
		ArgsUsage: "<地址>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdFamily(cmd.Args().Slice())
		},
	}
}

// createFormatCommand 创建 format 子命令。
func createFormatCommand() *cli.Command {
	return &cli.Command{
		Name:  "format",
		Usage: "按 host:port 形式格式化端点",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ip",
				Usage: "端点 IP 字面量，省略则构造未解析端点",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "端口号",
			},
			&cli.StringFlag{
				Name:  "zone",
				Usage: "IPv6 zone（如 eth0），需与 --ip 同时使用",
			},
			&cli.BoolFlag{
				Name:  "udp",
				Usage: "构造 UDP 端点（默认 TCP）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdFormat(cmd.String("ip"), cmd.Int("port"), cmd.String("zone"), cmd.Bool("udp"))
		},
	}
}

// createLocalhostCommand 创建 localhost 子命令。
func createLocalhostCommand() *cli.Command {
	return &cli.Command{
		Name:    "localhost",
		Aliases: []string{"l"},
		Usage:   "输出本机规范主机名",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "解析超时时间",
				Value:   defaultLookupTimeout,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdLocalhost(ctx, cmd.Duration("timeout"))
		},
	}
}

// classifyAddress 返回地址文本的类别标签。
// 判定是纯文本操作，五个类别互斥。
func classifyAddress(s string) string {
	switch {
	case xinet.IsIPv4Address(s):
		return classIPv4
	case xinet.IsIPv4MappedIPv6Address(s):
		return classIPv4Mapped
	case xinet.IsIPv6Address(s):
		return classIPv6
	case xinet.IsIPv6URLBracketedAddress(s):
		return classIPv6Bracketed
	default:
		return classInvalid
	}
}

// familyOf 判定地址文本的地址族。第二个返回值为 false 表示无法判定。
// IPv4-mapped 与方括号写法都属于 IPv6 地址族。
func familyOf(s string) (xinet.Family, bool) {
	switch {
	case xinet.IsIPv4Address(s):
		return xinet.FamilyIPv4, true
	case xinet.IsIPv6Address(s), xinet.IsIPv6URLBracketedAddress(s), xinet.IsIPv4MappedIPv6Address(s):
		return xinet.FamilyIPv6, true
	default:
		return 0, false
	}
}

// cmdCheck 判定地址文本类别。
// 参数为单个 "-" 时改为从标准输入逐行读取。
func cmdCheck(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return &usageError{msg: "check 需要至少一个地址参数（或使用 - 从标准输入读取）"}
	}

	if len(args) == 1 && args[0] == "-" {
		return checkStream(ctx, os.Stdin, os.Stdout)
	}

	return checkAll(os.Stdout, args)
}

// checkAll 逐个判定并输出 "地址\t类别"。
// 存在非法地址时返回 exitError（输出已完成，只需设置退出码）。
func checkAll(w io.Writer, addrs []string) error {
	invalid := 0
	for _, addr := range addrs {
		label := classifyAddress(addr)
		if label == classInvalid {
			invalid++
		}
		fmt.Fprintf(w, "%s\t%s\n", addr, label)
	}

	if invalid > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// checkStream 从 r 逐行读取地址文本并判定，行首尾空白剔除，空行跳过。
func checkStream(ctx context.Context, r io.Reader, w io.Writer) error {
	var addrs []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		addrs = append(addrs, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("读取标准输入失败: %w", err)
	}

	if len(addrs) == 0 {
		return &usageError{msg: "标准输入中没有地址文本"}
	}
	return checkAll(w, addrs)
}

// cmdFamily 输出地址族标签。
func cmdFamily(args []string) error {
	if len(args) != 1 {
		return &usageError{msg: "family 需要且仅需要一个地址参数"}
	}

	fam, ok := familyOf(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "无法判定地址族: %q 不是合法的 IP 地址文本\n", args[0])
		return &exitError{code: 1}
	}

	fmt.Println(fam)
	return nil
}

// validateFormatArgs 校验 format 命令的参数组合。
func validateFormatArgs(ipFlag string, port int, zone string) error {
	if port < 0 || port > maxPort {
		return &usageError{msg: fmt.Sprintf("端口 %d 超出范围 [0, %d]", port, maxPort)}
	}
	if ipFlag != "" && net.ParseIP(ipFlag) == nil {
		return &usageError{msg: fmt.Sprintf("无效的 IP 字面量: %q", ipFlag)}
	}
	if zone != "" && ipFlag == "" {
		return &usageError{msg: "--zone 需要与 --ip 同时使用"}
	}
	return nil
}

// cmdFormat 构造端点并输出 host:port 文本。
// 省略 --ip 时端点不含 IP，输出退化为 ":端口" 形式。
func cmdFormat(ipFlag string, port int, zone string, udp bool) error {
	if err := validateFormatArgs(ipFlag, port, zone); err != nil {
		return err
	}

	var ip net.IP
	if ipFlag != "" {
		ip = net.ParseIP(ipFlag)
	}

	var endpoint net.Addr
	if udp {
		endpoint = &net.UDPAddr{IP: ip, Port: port, Zone: zone}
	} else {
		endpoint = &net.TCPAddr{IP: ip, Port: port, Zone: zone}
	}

	var sb strings.Builder
	if err := xinet.FormatAddress(&sb, endpoint); err != nil {
		return err
	}

	fmt.Println(sb.String())
	return nil
}

// validateTimeout 校验解析超时参数。
func validateTimeout(d time.Duration) error {
	if d <= 0 {
		return &usageError{msg: fmt.Sprintf("超时时间必须为正: %v", d)}
	}
	if d > maxLookupTimeout {
		return &usageError{msg: fmt.Sprintf("超时时间 %v 超出上限 %v", d, maxLookupTimeout)}
	}
	return nil
}

// cmdLocalhost 输出本机规范主机名。
// CanonicalLocalHostName 永不失败，解析异常时回退输出 "localhost"，
// 因此命令本身只会因参数错误失败。
func cmdLocalhost(ctx context.Context, timeout time.Duration) error {
	if err := validateTimeout(timeout); err != nil {
		return err
	}

	lookupCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fmt.Println(xinet.CanonicalLocalHostName(lookupCtx))
	return nil
}

// setupSignalHandler 设置信号处理。
// 设计决策: 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
// 当命令阻塞时（如 localhost 的解析、check - 的标准输入读取），
// 用户可通过再次 Ctrl+C 强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel() // 第一次信号: 优雅取消

		<-sigCh
		signal.Stop(sigCh) // 回收订阅
		os.Exit(130)       // 第二次信号: 强制退出
	}()
}
