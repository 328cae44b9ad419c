//go:build mobile

package utils

// IsMobile ebitenmobile 构建始终为移动端
func IsMobile() bool {
	return true
}
