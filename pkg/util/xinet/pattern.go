package xinet

import "regexp"

// IPv4 点分十进制的单个字段：0-255，不允许前导零。
// "0" 合法，"00"、"01"、"001" 均不合法。
const ipv4Octet = `([0-9]|[1-9][0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])`

// IPv6 冒号计数防线的上下界。
//
// 合法 IPv6 文本最少含 2 个冒号（"::"），最多 7 个（8 分组标准形式）。
// 压缩形式文法对分组总数是宽松的（见 doc.go"已知文法边界"），
// 冒号计数是唯一的总量约束，因此所有 IPv6 谓词都先过这道防线。
const (
	minIPv6ColonCount = 2
	maxIPv6ColonCount = 7
)

// 文法模式，包初始化时一次编译，此后只读。
//
// 设计决策: 保持正则而非改写为手工扫描器。这五个模式本身就是文法规格，
// 正则形式可与 RFC 4291 / RFC 6874 逐段比对；Go regexp 为 RE2 实现，
// 匹配时间与输入长度线性相关，无回溯型引擎的灾难性回溯风险，
// 不需要为性能或安全放弃声明式写法。
var (
	// ipv4Pattern 匹配点分十进制 IPv4：四个 0-255 字段，点号分隔。
	ipv4Pattern = regexp.MustCompile(`^(` + ipv4Octet + `\.){3}` + ipv4Octet + `$`)

	// ipv4MappedIPv6Pattern 匹配 IPv4-mapped IPv6（RFC 4291 §2.5.5.2）的
	// "::ffff:a.b.c.d" 写法。前缀恰好 4 个 f，大小写不限；
	// 十六进制上等价的 "::0ffff:" 前导零写法不被接受。
	ipv4MappedIPv6Pattern = regexp.MustCompile(`^::[fF]{4}:(` + ipv4Octet + `\.){3}` + ipv4Octet + `$`)

	// ipv6StdPattern 匹配标准形式 IPv6：恰好 8 个 1-4 位十六进制分组，
	// 冒号分隔，无 "::" 压缩。
	ipv6StdPattern = regexp.MustCompile(`^[0-9a-fA-F]{1,4}(:[0-9a-fA-F]{1,4}){7}$`)

	// ipv6HexCompressedPattern 匹配含 "::" 压缩的 IPv6：
	// 两侧各为至多 6 个分组的可选序列。两侧分组总数不在此复核，
	// 由冒号计数防线兜底。
	ipv6HexCompressedPattern = regexp.MustCompile(`^(([0-9A-Fa-f]{1,4}(:[0-9A-Fa-f]{1,4}){0,5})?)::(([0-9A-Fa-f]{1,4}(:[0-9A-Fa-f]{1,4}){0,5})?)$`)

	// scopeIDPattern 匹配 zone 标识（RFC 4007）：字母、数字、连字符，非空。
	scopeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)
