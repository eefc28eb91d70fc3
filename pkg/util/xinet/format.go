package xinet

import (
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// FormatAddress 将已解析的网络端点以文本形式追加到 b。
//
// 对携带 IP 的 [*net.TCPAddr] / [*net.UDPAddr]，追加
// "地址[%zone]:端口"，IPv6 字面量不加方括号
// （"[2001:db8::1]:443" 是 URL 写法，展示文本用裸字面量）。
// 其余端点（nil 接口、类型化 nil 指针、未携带 IP 的地址、
// 其他 net.Addr 实现）原样追加其自身的 String() 文本。
//
// b 为 nil 时返回 [ErrNilBuffer]，此外不产生错误，也不会 panic。
func FormatAddress(b *strings.Builder, endpoint net.Addr) error {
	if b == nil {
		return ErrNilBuffer
	}
	if endpoint == nil {
		b.WriteString("<nil>")
		return nil
	}

	switch ep := endpoint.(type) {
	case *net.TCPAddr:
		if ep != nil && len(ep.IP) != 0 {
			appendHostPort(b, ep.IP, ep.Zone, ep.Port)
			return nil
		}
	case *net.UDPAddr:
		if ep != nil && len(ep.IP) != 0 {
			appendHostPort(b, ep.IP, ep.Zone, ep.Port)
			return nil
		}
	}

	// 类型化 nil 指针走到这里时，String() 自身返回 "<nil>"。
	b.WriteString(endpoint.String())
	return nil
}

// FormatAddrPort 将 [netip.AddrPort] 端点以文本形式追加到 b。
//
// 有效地址追加 "地址:端口"（zone 由 [netip.Addr.String] 自带）。
//
// 设计决策: 与 [netip.AddrPort.String] 不同，IPv6 字面量不加方括号，
// 与 [FormatAddress] 的展示文本保持一致。无效（零值）端点原样追加
// 其自身的 String() 文本。
//
// b 为 nil 时返回 [ErrNilBuffer]。
func FormatAddrPort(b *strings.Builder, ap netip.AddrPort) error {
	if b == nil {
		return ErrNilBuffer
	}
	if !ap.Addr().IsValid() {
		b.WriteString(ap.String())
		return nil
	}

	b.WriteString(ap.Addr().String())
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(int(ap.Port())))
	return nil
}

// appendHostPort 追加 "地址[%zone]:端口"。
func appendHostPort(b *strings.Builder, ip net.IP, zone string, port int) {
	b.WriteString(ip.String())
	if zone != "" {
		b.WriteByte('%')
		b.WriteString(zone)
	}
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(port))
}
