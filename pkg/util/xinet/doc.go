// Package xinet 提供 IP 地址文本语法校验与端点格式化工具。
//
// xinet 回答一个问题：一段文本在语法上是不是 IPv4 或 IPv6 地址字面量。
// 它不做 DNS 解析，不创建连接，不产生 4/16 字节二进制编码，
// 也不对地址做规范化——只给出 yes/no 判定和面向展示的端点文本。
//
// # 核心功能
//
//   - validate.go: 文本分类谓词 [IsIPv4Address]、[IsIPv6StdAddress]、
//     [IsIPv6HexCompressedAddress]、[IsIPv6Address]、[IsIPv6URLBracketedAddress]、
//     [IsIPv4MappedIPv6Address] 及冒号计数防线 [HasValidIPv6ColonCount]
//   - family.go: 地址族标签 [Family]（[FamilyIPv4]、[FamilyIPv6]）
//   - format.go: 端点格式化 [FormatAddress]（net.Addr）、[FormatAddrPort]（netip.AddrPort）
//   - localhost.go: 本机规范主机名 [CanonicalLocalHostName]
//
// # 快速示例
//
// 分类地址文本：
//
//	xinet.IsIPv4Address("192.168.1.1")              // true
//	xinet.IsIPv4Address("192.168.001.1")            // false（前导零）
//	xinet.IsIPv6Address("fe80::1%eth0")             // true
//	xinet.IsIPv6URLBracketedAddress("[2001:db8::1]") // true
//
// 格式化已解析的端点：
//
//	var b strings.Builder
//	_ = xinet.FormatAddress(&b, &net.TCPAddr{IP: net.IPv4(10, 0, 0, 1), Port: 8080})
//	fmt.Println(b.String())  // 10.0.0.1:8080
//
// # 与 net/netip 的关系
//
// [net/netip.ParseAddr] 做的是解析：接受一段文本并构造地址值。
// xinet 做的是语法判定：按固定文法给出 yes/no，不构造任何值。
// 两者对大多数输入一致，但文法边界不同：
//
//   - netip 接受带 zone 的任何接口名（"fe80::1%en0.100"），
//     xinet 的 zone 文法只接受 [a-zA-Z0-9-]+
//   - netip 接受 8 冒号的压缩写法（"1:2:3:4:5:6:7::"），
//     xinet 的冒号计数防线（上限 7）拒绝它
//   - netip 接受点分十进制结尾的混合写法（"::1.2.3.4"、
//     "1:2:3:4:5:6:1.2.3.4"），xinet 的十六进制分组文法不含点号，
//     仅 [IsIPv4MappedIPv6Address] 单独接受 "::ffff:a.b.c.d"
//
// 需要地址值、需要规范化时用 netip；只需要按既定文法做文本判定时用 xinet。
//
// # 已知文法边界
//
// 压缩形式的正则模式自身不复核 "::" 两侧分组总数与 8 的关系
// （两侧各至多 6 组，自身可容纳 12 组），冒号计数 [2,7] 防线是唯一的
// 总量约束。"1:2:3:4:5:6::7:8" 能匹配模式，但含 8 个冒号，
// 被防线拦下——防线是文法的组成部分，不是可省略的优化。
//
// 防线的 7 冒号上限同时意味着 "1:2:3:4:5:6:7::" 这类 8 冒号的
// RFC 4291 合法写法会被拒绝。
//
// IPv4-mapped 前缀只接受恰好 4 个 f（"::ffff:"，大小写不限），
// 十六进制上等价的其他拼写（"::0ffff:"、"::0:ffff:"、
// "0:0:0:0:0:ffff:"）均被 [IsIPv4MappedIPv6Address] 拒绝。
//
// 以上边界均有测试固定，修改文法属不兼容变更。
//
// # 并发安全
//
// 所有文法模式在包初始化时一次编译，此后只读。[regexp.Regexp] 的匹配
// 方法本身并发安全，因此全部谓词可在任意 goroutine 中无锁并发调用。
// 仅 [CanonicalLocalHostName] 会阻塞（一次系统解析器查询），
// 超时与取消由调用方通过 ctx 控制。
//
// # 设计决策
//
//   - 文法即数据：五个正则模式就是规格本身，集中在 pattern.go 便于比对 RFC
//   - Go regexp 为 RE2 实现，匹配时间与输入长度线性相关，
//     不存在回溯型正则的灾难性回溯问题，恶意超长输入安全
//   - 谓词是纯函数：任意字符串输入（含空串、空白、超长串）只返回 bool，
//     不 panic、无副作用、幂等
//   - [CanonicalLocalHostName] 返回 string 而非 (string, error)：
//     任何失败统一回退 "localhost"，调用方无需分支处理失败原因
//   - [CanonicalLocalHostName] 不缓存结果：主机名与 CNAME 可能随运行时
//     网络配置变化，缓存策略留给调用方
//
// # 错误处理
//
// 唯一的预定义错误是 [ErrNilBuffer]（格式化目标缓冲为 nil），支持 errors.Is：
//
//	err := xinet.FormatAddress(nil, addr)
//	if errors.Is(err, xinet.ErrNilBuffer) {
//	    // 调用方传参错误
//	}
//
// 谓词永不返回错误：格式不合法就是 false。
package xinet
