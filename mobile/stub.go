//go:build !mobile

// Package mobile 在普通构建下只有占位函数，ebitenmobile 绑定见 mobile.go
package mobile

// Dummy 保证包在桌面构建时也能被引用
func Dummy() {}
