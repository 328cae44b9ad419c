package anim

// ExpressionKind 表情类型
type ExpressionKind int

const (
	ExpressionIdle ExpressionKind = iota
	ExpressionHover
	ExpressionExcited
)

// String 返回表情名称
func (k ExpressionKind) String() string {
	switch k {
	case ExpressionHover:
		return "hover"
	case ExpressionExcited:
		return "excited"
	default:
		return "idle"
	}
}

// Expression 一帧的眼睛目标值
type Expression = ExpressionPreset

// ExpressionContext 解析表情所需的状态
type ExpressionContext struct {
	Jumping bool
	Hovered bool
	// BlinkClosure 眨眼闭合度 [0, 1]，0 表示未眨眼
	BlinkClosure float64
}

// expressionRule 优先级表的一项
// blinkable 为 true 的表情会被眨眼压扁（只影响 ScaleY，不影响颜色）
type expressionRule struct {
	kind      ExpressionKind
	applies   func(ExpressionContext) bool
	preset    func(ExpressionTuning) ExpressionPreset
	blinkable bool
}

// 优先级：跳跃 > 眨眼 > 悬停 > 空闲
// 眨眼是叠加在悬停/空闲之上的修饰，跳跃表情不可被眨眼覆盖
var expressionPriority = []expressionRule{
	{
		kind:    ExpressionExcited,
		applies: func(c ExpressionContext) bool { return c.Jumping },
		preset:  func(t ExpressionTuning) ExpressionPreset { return t.Excited },
	},
	{
		kind:      ExpressionHover,
		applies:   func(c ExpressionContext) bool { return c.Hovered },
		preset:    func(t ExpressionTuning) ExpressionPreset { return t.Hover },
		blinkable: true,
	},
	{
		kind:      ExpressionIdle,
		applies:   func(ExpressionContext) bool { return true },
		preset:    func(t ExpressionTuning) ExpressionPreset { return t.Idle },
		blinkable: true,
	},
}

// ResolveExpression 按优先级表解析当前帧的目标表情
func ResolveExpression(t ExpressionTuning, ctx ExpressionContext) (ExpressionKind, Expression) {
	for _, rule := range expressionPriority {
		if !rule.applies(ctx) {
			continue
		}
		target := rule.preset(t)
		if rule.blinkable {
			target.ScaleY *= 1 - ctx.BlinkClosure
		}
		return rule.kind, target
	}
	return ExpressionIdle, t.Idle
}
