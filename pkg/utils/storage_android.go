//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 确保 Android 应用数据目录存在且可写
// gdata 使用 /data/data/{package}/ 但不会预先创建子目录
func EnsureStorageDir() error {
	dir := StorageDir()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}
	saves := filepath.Join(dir, "saves")
	if err := os.MkdirAll(saves, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", saves, err)
	}

	probe := filepath.Join(saves, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return fmt.Errorf("%s is not writable: %w", saves, err)
	}
	return os.Remove(probe)
}

// StorageDir 应用数据目录，包名从 /proc/self/cmdline 读取
func StorageDir() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	name := strings.Map(func(r rune) rune {
		if r == 0 || r == '\n' {
			return -1
		}
		return r
	}, string(data))
	if name == "" {
		return ""
	}
	return filepath.Join("/data/data", name)
}
