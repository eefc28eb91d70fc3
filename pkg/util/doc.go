// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xinet: IP 地址文本判定工具库，IPv4/IPv6 各类写法的纯文本分类、
//     端点格式化与本机规范主机名查询
//
// 设计原则：
//   - 纯函数优先，不持有状态
//   - 阻塞操作显式接收 context
//   - 跨平台兼容
package util
