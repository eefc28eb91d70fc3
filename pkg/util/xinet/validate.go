package xinet

import "strings"

// IsIPv4Address 报告 s 是否为点分十进制 IPv4 地址。
// 四个 0-255 的十进制字段，点号分隔，不允许前导零
// （"192.168.001.1" 为 false）。不接受任何空白。
func IsIPv4Address(s string) bool {
	return ipv4Pattern.MatchString(s)
}

// IsIPv4MappedIPv6Address 报告 s 是否为 "::ffff:a.b.c.d" 写法的
// IPv4-mapped IPv6 地址。前缀恰好 4 个 f（大小写不限），
// 点分部分按 [IsIPv4Address] 的文法校验。
// 注意：此形式同时也是合法的压缩 IPv6 的特例之外的独立判定，
// "::0ffff:1.2.3.4" 这类前导零写法返回 false。
func IsIPv4MappedIPv6Address(s string) bool {
	return ipv4MappedIPv6Pattern.MatchString(s)
}

// HasValidIPv6ColonCount 报告 s 中冒号的原始计数是否落在 [2,7]。
// 这是所有 IPv6 判定的前置防线：压缩形式文法对分组总数宽松，
// 冒号计数是唯一的总量约束。对 s 不做任何其他检查。
func HasValidIPv6ColonCount(s string) bool {
	n := strings.Count(s, ":")
	return n >= minIPv6ColonCount && n <= maxIPv6ColonCount
}

// IsIPv6StdAddress 报告 s 是否为标准形式 IPv6 地址：
// 恰好 8 个 1-4 位十六进制分组，冒号分隔，无 "::" 压缩，无 zone。
func IsIPv6StdAddress(s string) bool {
	return HasValidIPv6ColonCount(s) && ipv6StdPattern.MatchString(s)
}

// IsIPv6HexCompressedAddress 报告 s 是否为含 "::" 压缩的 IPv6 地址（无 zone）。
// 正则模式自身不复核 "::" 两侧分组总数与 8 的关系，
// 由冒号计数防线兜底（见 doc.go"已知文法边界"）。
func IsIPv6HexCompressedAddress(s string) bool {
	return HasValidIPv6ColonCount(s) && ipv6HexCompressedPattern.MatchString(s)
}

// IsIPv6Address 报告 s 是否为 IPv6 地址，标准与压缩形式均可，
// 可带 "%zone" 后缀（zone 文法为 [a-zA-Z0-9-]+，非空）。
// 在第一个 '%' 处切分：地址部分必须自身合法，"fe80::1%" 这类空 zone 为 false。
func IsIPv6Address(s string) bool {
	i := strings.IndexByte(s, '%')
	if i < 0 {
		return IsIPv6StdAddress(s) || IsIPv6HexCompressedAddress(s)
	}

	addr, scopeID := s[:i], s[i+1:]
	if !IsIPv6StdAddress(addr) && !IsIPv6HexCompressedAddress(addr) {
		return false
	}
	return scopeIDPattern.MatchString(scopeID)
}

// IsIPv6URLBracketedAddress 报告 s 是否为 URL 方括号形式的 IPv6 地址
// （RFC 2732），即 "[" + 合法 IPv6 文本 + "]"。括号只剥一层，
// 内部文本按 [IsIPv6Address] 判定，"[]" 为 false。
func IsIPv6URLBracketedAddress(s string) bool {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return false
	}
	return IsIPv6Address(s[1 : len(s)-1])
}
