// Package render 把场景图节点投影为按深度排序的多边形绘制列表
//
// 绘制列表与具体画布无关：EbitenSurface 在游戏窗口中绘制，
// ImageSurface 在内存图像中光栅化（用于截图工具和测试）。
// 同一个绘制列表也用于指针拾取。
package render
