//go:build !mobile

package utils

import "os"

// IsMobile 桌面端返回 false
// 设置 GREETING_MOBILE_EMULATE=1 可以在桌面上模拟移动端（不隐藏系统光标）
func IsMobile() bool {
	return os.Getenv("GREETING_MOBILE_EMULATE") == "1"
}
