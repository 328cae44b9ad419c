//go:build mobile

// embed.go - 移动端配置嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// Makefile 中的 build-android 和 build-ios 目标会先运行 prepare-mobile
// 把 data/ 复制到此目录，再使用 -tags mobile 进行构建。
package mobile

import "embed"

//go:embed data/scene.yaml data/projects.yaml
var dataFS embed.FS
