// Package anim 实现逐帧动画引擎
//
// 所有控制器都是纯函数：Step(state, input) -> state'。状态结构体显式持有
// 跨帧数据（手势阶段、跳跃、眨眼计时、当前姿态），每帧由宿主循环调用一次，
// 不依赖渲染层，可以脱离窗口直接测试。
//
// 混合方式统一为指数逼近（utils.Blender），是否裁剪混合比例由配置决定。
package anim
