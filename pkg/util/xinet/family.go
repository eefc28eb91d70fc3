package xinet

// Family 表示地址族标签。
//
// 标签值本身是不透明的线路常量，供上层协议按字节编码地址族使用，
// xinet 不解释其数值含义。
type Family byte

const (
	// FamilyIPv4 表示 IPv4 地址族。
	FamilyIPv4 Family = 1
	// FamilyIPv6 表示 IPv6 地址族。
	FamilyIPv6 Family = 4
)

// String 返回地址族的字符串表示。
func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	default:
		return "unknown"
	}
}
