package xinet

import (
	"context"
	"net"
	"os"
	"strings"
)

// fallbackLocalHostName 是任何一步失败时的统一回退值。
const fallbackLocalHostName = "localhost"

// osHostname 与 lookupCNAME 是对应系统调用的包级变量，支持测试中 mock。
//
// 设计决策: 使用包级变量 mock 是 Go 生态中广泛使用的测试模式，
// 对于仅一个导出函数依赖两个系统调用的场景，此方案的简洁性优于依赖注入。
var (
	osHostname = os.Hostname

	lookupCNAME = func(ctx context.Context, host string) (string, error) {
		return net.DefaultResolver.LookupCNAME(ctx, host)
	}
)

// CanonicalLocalHostName 返回本机的规范主机名（FQDN），
// 即系统解析器对 [os.Hostname] 结果的 CNAME 回答，尾部点号已去除。
// 任何一步失败（主机名获取、解析、空结果）统一返回 "localhost"。
//
// 每次调用都重新查询，不缓存：主机名与 CNAME 可能随运行时网络配置变化，
// 缓存策略留给调用方。解析阻塞时长取决于系统解析器，
// 超时与取消通过 ctx 控制。
//
// 设计决策: 返回 string 而非 (string, error)。此函数的典型用途是
// 日志字段、协议握手中的本机标识等"尽力获取"场景，"localhost"
// 本身就是有意义的回退值，调用方不需要区分失败原因。
func CanonicalLocalHostName(ctx context.Context) string {
	host, err := osHostname()
	if err != nil || host == "" {
		return fallbackLocalHostName
	}

	cname, err := lookupCNAME(ctx, host)
	if err != nil || cname == "" {
		return fallbackLocalHostName
	}

	// LookupCNAME 返回的规范名以点号结尾（如 "host.example.com."）。
	if name := strings.TrimSuffix(cname, "."); name != "" {
		return name
	}
	return fallbackLocalHostName
}
