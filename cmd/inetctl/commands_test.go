package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExitError(t *testing.T) {
	err := &exitError{code: 1}
	want := "exit status 1"
	if err.Error() != want {
		t.Errorf("exitError.Error() = %q, want %q", err.Error(), want)
	}

	// exitError 应可通过 errors.As 检测
	var target *exitError
	if !errors.As(err, &target) {
		t.Error("errors.As failed for *exitError")
	}
	if target.code != 1 {
		t.Errorf("exitError.code = %d, want 1", target.code)
	}
}

func TestUsageError(t *testing.T) {
	err := &usageError{msg: "test error"}
	if err.Error() != "test error" {
		t.Errorf("usageError.Error() = %q, want %q", err.Error(), "test error")
	}

	var target *usageError
	if !errors.As(err, &target) {
		t.Error("errors.As failed for *usageError")
	}
}

func TestClassifyAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ipv4", "192.168.1.1", classIPv4},
		{"ipv4_zero", "0.0.0.0", classIPv4},
		{"ipv6_std", "2001:0db8:0000:0000:0000:0000:1428:07ab", classIPv6},
		{"ipv6_compressed", "2001:db8::1", classIPv6},
		{"ipv6_scoped", "fe80::1%eth0", classIPv6},
		{"ipv6_bracketed", "[::1]", classIPv6Bracketed},
		{"ipv6_bracketed_scoped", "[fe80::1%eth0]", classIPv6Bracketed},
		{"ipv4_mapped", "::ffff:192.168.1.1", classIPv4Mapped},
		{"invalid_leading_zero", "192.168.001.1", classInvalid},
		{"invalid_range", "256.1.1.1", classInvalid},
		{"invalid_empty_zone", "fe80::1%", classInvalid},
		{"invalid_garbage", "not an address", classInvalid},
		{"invalid_empty", "", classInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyAddress(tt.input); got != tt.want {
				t.Errorf("classifyAddress(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"ipv4", "10.0.0.1", "IPv4", true},
		{"ipv6_std", "1:2:3:4:5:6:7:8", "IPv6", true},
		{"ipv6_compressed", "::1", "IPv6", true},
		{"ipv6_scoped", "fe80::1%eth0", "IPv6", true},
		{"ipv6_bracketed", "[2001:db8::1]", "IPv6", true},
		{"ipv4_mapped", "::ffff:10.0.0.1", "IPv6", true},
		{"invalid", "10.0.0.256", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fam, ok := familyOf(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("familyOf(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && fam.String() != tt.want {
				t.Errorf("familyOf(%q) = %v, want %v", tt.input, fam, tt.want)
			}
		})
	}
}

func TestCheckAll(t *testing.T) {
	var out strings.Builder
	err := checkAll(&out, []string{"10.0.0.1", "::1", "[fe80::1%eth0]"})
	if err != nil {
		t.Fatalf("checkAll with valid addrs returned error: %v", err)
	}

	want := "10.0.0.1\tipv4\n::1\tipv6\n[fe80::1%eth0]\tipv6-bracketed\n"
	if out.String() != want {
		t.Errorf("checkAll output = %q, want %q", out.String(), want)
	}
}

func TestCheckAllInvalid(t *testing.T) {
	// 存在非法地址时仍输出全部判定结果，再以 exitError(1) 结束
	var out strings.Builder
	err := checkAll(&out, []string{"10.0.0.1", "999.1.1.1"})
	if err == nil {
		t.Fatal("checkAll with invalid addr should return error")
	}

	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exitError, got %T: %v", err, err)
	}
	if exitErr.code != 1 {
		t.Errorf("exitError.code = %d, want 1", exitErr.code)
	}

	want := "10.0.0.1\tipv4\n999.1.1.1\tinvalid\n"
	if out.String() != want {
		t.Errorf("checkAll output = %q, want %q", out.String(), want)
	}
}

func TestCheckStream(t *testing.T) {
	// 行首尾空白剔除，空行跳过
	in := strings.NewReader("  192.168.1.1  \n\n\t::1\n")
	var out strings.Builder

	err := checkStream(context.Background(), in, &out)
	if err != nil {
		t.Fatalf("checkStream returned error: %v", err)
	}

	want := "192.168.1.1\tipv4\n::1\tipv6\n"
	if out.String() != want {
		t.Errorf("checkStream output = %q, want %q", out.String(), want)
	}
}

func TestCheckStreamEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank_lines_only", "\n \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			err := checkStream(context.Background(), strings.NewReader(tt.input), &out)
			if err == nil {
				t.Fatal("checkStream with no addresses should return error")
			}

			var usageErr *usageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("expected *usageError, got %T: %v", err, err)
			}
		})
	}
}

func TestCheckStreamCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // 立即取消

	var out strings.Builder
	err := checkStream(ctx, strings.NewReader("::1\n"), &out)
	if err == nil {
		t.Fatal("checkStream with canceled context should return error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestCmdCheckNoArgs(t *testing.T) {
	err := cmdCheck(context.Background(), nil)
	if err == nil {
		t.Fatal("cmdCheck with no args should return error")
	}

	var usageErr *usageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected *usageError, got %T: %v", err, err)
	}
}

func TestCmdFamilyArgCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no_args", nil},
		{"two_args", []string{"::1", "10.0.0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cmdFamily(tt.args)
			if err == nil {
				t.Fatal("cmdFamily with wrong arg count should return error")
			}

			var usageErr *usageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("expected *usageError, got %T: %v", err, err)
			}
		})
	}
}

func TestCmdFamilyInvalidAddress(t *testing.T) {
	err := cmdFamily([]string{"not-an-address"})
	if err == nil {
		t.Fatal("cmdFamily with invalid address should return error")
	}

	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exitError, got %T: %v", err, err)
	}
	if exitErr.code != 1 {
		t.Errorf("exitError.code = %d, want 1", exitErr.code)
	}
}

func TestValidateFormatArgs(t *testing.T) {
	tests := []struct {
		name    string
		ip      string
		port    int
		zone    string
		wantErr bool
	}{
		{"ip_and_port", "10.0.0.1", 8080, "", false},
		{"no_ip", "", 8080, "", false},
		{"port_zero", "10.0.0.1", 0, "", false},
		{"port_max", "10.0.0.1", 65535, "", false},
		{"ipv6_with_zone", "fe80::1", 22, "eth0", false},
		{"port_negative", "10.0.0.1", -1, "", true},
		{"port_too_big", "10.0.0.1", 65536, "", true},
		{"bad_ip_literal", "10.0.0.256", 80, "", true},
		{"bad_ip_garbage", "foo", 80, "", true},
		{"zone_without_ip", "", 80, "eth0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormatArgs(tt.ip, tt.port, tt.zone)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormatArgs(%q, %d, %q) error = %v, wantErr %v",
					tt.ip, tt.port, tt.zone, err, tt.wantErr)
			}
			if err != nil {
				var usageErr *usageError
				if !errors.As(err, &usageErr) {
					t.Errorf("expected *usageError, got %T", err)
				}
			}
		})
	}
}

func TestCmdFormatInvalidArgs(t *testing.T) {
	err := cmdFormat("bad-ip", 8080, "", false)
	if err == nil {
		t.Fatal("cmdFormat with invalid IP should return error")
	}

	var usageErr *usageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected *usageError, got %T: %v", err, err)
	}
}

func TestValidateTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		wantErr bool
	}{
		{"default", defaultLookupTimeout, false},
		{"one_second", time.Second, false},
		{"max", maxLookupTimeout, false},
		{"zero", 0, true},
		{"negative", -time.Second, true},
		{"over_max", maxLookupTimeout + time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTimeout(tt.timeout)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateTimeout(%v) error = %v, wantErr %v", tt.timeout, err, tt.wantErr)
			}
			if err != nil {
				var usageErr *usageError
				if !errors.As(err, &usageErr) {
					t.Errorf("expected *usageError, got %T", err)
				}
			}
		})
	}
}

func TestCmdLocalhostInvalidTimeout(t *testing.T) {
	// 参数校验失败时不触发任何解析查询
	err := cmdLocalhost(context.Background(), 0)
	if err == nil {
		t.Fatal("cmdLocalhost with zero timeout should return error")
	}

	var usageErr *usageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected *usageError, got %T: %v", err, err)
	}

	err = cmdLocalhost(context.Background(), maxLookupTimeout+time.Minute)
	if err == nil {
		t.Fatal("cmdLocalhost with oversized timeout should return error")
	}
	if !errors.As(err, &usageErr) {
		t.Fatalf("expected *usageError, got %T: %v", err, err)
	}
}

func TestCreateCommands(t *testing.T) {
	cmds := createCommands()
	if len(cmds) == 0 {
		t.Fatal("createCommands returned empty slice")
	}

	// 验证基础命令存在
	names := make(map[string]bool)
	for _, cmd := range cmds {
		names[cmd.Name] = true
	}

	expected := []string{"check", "family", "format", "localhost"}
	for _, name := range expected {
		if !names[name] {
			t.Errorf("missing command %q", name)
		}
	}
}

func TestCreateApp(t *testing.T) {
	app := createApp()
	if app.Name != "inetctl" {
		t.Errorf("Name = %q, want %q", app.Name, "inetctl")
	}
	if app.DefaultCommand != "help" {
		t.Errorf("DefaultCommand = %q, want %q", app.DefaultCommand, "help")
	}
	if len(app.Commands) == 0 {
		t.Error("app has no commands")
	}
}

func TestIsCLIUsageError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"undefined_flag", errors.New("flag provided but not defined: -bogus"), true},
		{"invalid_value", errors.New(`invalid value "x" for flag -port`), true},
		{"no_help_topic", errors.New("No help topic for 'bogus'"), true},
		{"plain_error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCLIUsageError(tt.err); got != tt.want {
				t.Errorf("isCLIUsageError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
