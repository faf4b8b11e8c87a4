//go:build !android

package utils

// EnsureStorageDir 桌面与 iOS 平台由 gdata 自行创建目录
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 非 Android 平台不暴露存储路径
func GetStoragePath() string {
	return ""
}
