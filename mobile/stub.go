//go:build !mobile

// stub.go - 普通构建时的占位文件
// 绑定入口在 mobile.go 与 embed.go 中，仅 -tags mobile 时编译
package mobile

// Dummy 让包在非移动端构建时也有导出符号
func Dummy() {}
