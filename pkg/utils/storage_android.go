//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建 Android 应用私有目录下的 saves 子目录，
// 并写入一个临时文件确认可写
func EnsureStorageDir() error {
	root := GetStoragePath()
	if root == "" {
		return fmt.Errorf("cannot determine Android package name")
	}

	dir := filepath.Join(root, "saves")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回 /data/data/{package}，无法识别包名时返回空字符串
func GetStoragePath() string {
	name, err := packageName()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", name)
}

// packageName 从 /proc/self/cmdline 读取包名（去掉 NUL 与换行）
func packageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	data = bytes.ReplaceAll(data, []byte{0}, nil)
	data = bytes.ReplaceAll(data, []byte{'\n'}, nil)
	if len(data) == 0 {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return string(data), nil
}
