//go:build !android

package utils

// PrepareStorage 非 Android 平台的空实现
// gdata 会自动创建存储目录
func PrepareStorage(appName string) error {
	return nil
}
