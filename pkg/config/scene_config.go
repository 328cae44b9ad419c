package config

import (
	"fmt"
	"os"

	"github.com/decker502/folio/pkg/anim"
	"github.com/decker502/folio/pkg/mathutil"
	"gopkg.in/yaml.v3"
)

// 窗口默认尺寸
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
)

// SceneConfig 场景配置
//
// 包含窗口、转盘布局、角色摆放和全部动画参数。
//
// 配置文件位置: data/scene.yaml
type SceneConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Blend    BlendConfig    `yaml:"blend"`
	Palette  PaletteConfig  `yaml:"palette"`
	Carousel CarouselConfig `yaml:"carousel"`
	Robot    RobotConfig    `yaml:"robot"`
	Floor    FloorConfig    `yaml:"floor"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// FOV 垂直视场角（度）
	FOV float64 `yaml:"fov"`
}

// BlendConfig 逐帧混合策略
type BlendConfig struct {
	// Clamp 为 true 时混合比例 rate*dt 不超过 1，卡顿帧不会越过目标
	Clamp bool `yaml:"clamp"`
}

// PaletteConfig 场景配色
type PaletteConfig struct {
	Background mathutil.Color `yaml:"background"`
	Text       mathutil.Color `yaml:"text"`
	MutedText  mathutil.Color `yaml:"mutedText"`
	Panel      mathutil.Color `yaml:"panel"`
}

// CarouselConfig 转盘布局与动画
type CarouselConfig struct {
	Radius float64 `yaml:"radius"`
	// Offset 转盘整体的位置偏移
	Offset     mathutil.Vec3       `yaml:"offset"`
	CardWidth  float64             `yaml:"cardWidth"`
	CardHeight float64             `yaml:"cardHeight"`
	Motion     anim.CarouselTuning `yaml:"motion"`
	Card       anim.CardTuning     `yaml:"card"`
}

// RobotConfig 角色摆放、配色与动画
type RobotConfig struct {
	Position mathutil.Vec3 `yaml:"position"`
	Yaw      float64       `yaml:"yaw"`
	Scale    float64       `yaml:"scale"`

	BodyColor    mathutil.Color `yaml:"bodyColor"`
	HeadColor    mathutil.Color `yaml:"headColor"`
	FaceColor    mathutil.Color `yaml:"faceColor"`
	LimbColor    mathutil.Color `yaml:"limbColor"`
	HoverColor   mathutil.Color `yaml:"hoverColor"`
	AntennaColor mathutil.Color `yaml:"antennaColor"`
	AntennaBulb  mathutil.Color `yaml:"antennaBulb"`

	Motion anim.CharacterTuning `yaml:"motion"`
}

// FloorConfig 地面上的接触阴影
//
// 每个阴影由 Layers 个同心椭圆叠加而成，外圈淡、内圈深，近似模糊的软阴影。
type FloorConfig struct {
	// Y 地面高度
	Y       float64        `yaml:"y"`
	Color   mathutil.Color `yaml:"color"`
	Opacity float64        `yaml:"opacity"`
	Layers  int            `yaml:"layers"`
	Shadows []ShadowSpot   `yaml:"shadows"`
}

// ShadowSpot 地面上的一块阴影
type ShadowSpot struct {
	X       float64 `yaml:"x"`
	Z       float64 `yaml:"z"`
	RadiusX float64 `yaml:"radiusX"`
	RadiusZ float64 `yaml:"radiusZ"`
}

// DefaultSceneConfig 返回默认场景配置
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  "LEO. Interactive 3D Portfolio",
			FOV:    45,
		},
		Blend: BlendConfig{Clamp: true},
		Palette: PaletteConfig{
			Background: mathutil.MustHex("#f5f5f7"),
			Text:       mathutil.MustHex("#1d1d1f"),
			MutedText:  mathutil.MustHex("#86868b"),
			Panel:      mathutil.MustHex("#ffffff"),
		},
		Carousel: CarouselConfig{
			Radius:     3.5,
			Offset:     mathutil.V3(0, -0.5, -1),
			CardWidth:  2,
			CardHeight: 1.4,
			Motion:     anim.DefaultCarouselTuning(),
			Card:       anim.DefaultCardTuning(),
		},
		Robot: RobotConfig{
			Position:     mathutil.V3(4, -1, 2),
			Yaw:          -0.3,
			Scale:        2.2,
			BodyColor:    mathutil.MustHex("#d1d1d6"),
			HeadColor:    mathutil.MustHex("#f5f5f7"),
			FaceColor:    mathutil.MustHex("#1d1d1f"),
			LimbColor:    mathutil.MustHex("#8e8e93"),
			HoverColor:   mathutil.MustHex("#007aff"),
			AntennaColor: mathutil.MustHex("#86868b"),
			AntennaBulb:  mathutil.MustHex("#ff3b30"),
			Motion:       anim.DefaultCharacterTuning(),
		},
		Floor: FloorConfig{
			Y:       -2.5,
			Color:   mathutil.MustHex("#000000"),
			Opacity: 0.4,
			Layers:  4,
			Shadows: []ShadowSpot{
				{X: 0, Z: -1, RadiusX: 4.5, RadiusZ: 4.5},
				{X: 4, Z: 2, RadiusX: 0.9, RadiusZ: 0.9},
			},
		},
	}
}

// LoadSceneConfig 从磁盘加载场景配置
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return ParseSceneConfig(data)
}

// ParseSceneConfig 解析场景配置
// 以 DefaultSceneConfig 为底，文件中缺省的字段保持默认值
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 窗口尺寸为正，视场角在 (0, 180)
//   - 所有混合速度为正
//   - 眨眼间隔区间合法
//   - 转盘半径、卡片尺寸为正
//   - 悬浮参数非负，地面阴影透明度、层数、半径合法
func (c *SceneConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FOV <= 0 || c.Window.FOV >= 180 {
		return fmt.Errorf("window fov must be in (0, 180), got %.1f", c.Window.FOV)
	}

	if c.Carousel.Radius <= 0 {
		return fmt.Errorf("carousel radius must be positive, got %.2f", c.Carousel.Radius)
	}
	if c.Carousel.CardWidth <= 0 || c.Carousel.CardHeight <= 0 {
		return fmt.Errorf("card size must be positive, got %.2fx%.2f", c.Carousel.CardWidth, c.Carousel.CardHeight)
	}
	if c.Robot.Scale <= 0 {
		return fmt.Errorf("robot scale must be positive, got %.2f", c.Robot.Scale)
	}

	m := c.Robot.Motion
	if m.Blink.MinInterval <= anim.BlinkDuration {
		return fmt.Errorf("blink minInterval(%.2f) must exceed blink duration %.2f", m.Blink.MinInterval, anim.BlinkDuration)
	}
	if m.Blink.MinInterval > m.Blink.MaxInterval {
		return fmt.Errorf("blink interval invalid: min(%.2f) > max(%.2f)", m.Blink.MinInterval, m.Blink.MaxInterval)
	}
	if m.Jump.Speed <= 0 {
		return fmt.Errorf("jump speed must be positive, got %.2f", m.Jump.Speed)
	}

	for _, f := range []struct {
		name   string
		tuning anim.FloatTuning
	}{
		{"carousel.motion.float", c.Carousel.Motion.Float},
		{"robot.motion.float", m.Float},
	} {
		if f.tuning.Speed < 0 || f.tuning.RotationIntensity < 0 || f.tuning.FloatIntensity < 0 {
			return fmt.Errorf("%s must not be negative, got %+v", f.name, f.tuning)
		}
	}

	if c.Floor.Opacity < 0 || c.Floor.Opacity > 1 {
		return fmt.Errorf("floor opacity must be in [0, 1], got %.2f", c.Floor.Opacity)
	}
	if c.Floor.Layers < 1 {
		return fmt.Errorf("floor layers must be at least 1, got %d", c.Floor.Layers)
	}
	for i, spot := range c.Floor.Shadows {
		if spot.RadiusX <= 0 || spot.RadiusZ <= 0 {
			return fmt.Errorf("floor shadow %d radius must be positive, got %.2fx%.2f", i, spot.RadiusX, spot.RadiusZ)
		}
	}

	rates := []struct {
		name string
		rate float64
	}{
		{"carousel.motion.rotationRate", c.Carousel.Motion.RotationRate},
		{"carousel.motion.cameraRate", c.Carousel.Motion.CameraRate},
		{"carousel.card.scaleRate", c.Carousel.Card.ScaleRate},
		{"carousel.card.opacityRate", c.Carousel.Card.OpacityRate},
		{"robot.motion.head.rate", m.Head.Rate},
		{"robot.motion.jump.settleRate", m.Jump.SettleRate},
		{"robot.motion.gesture.armRate", m.Gesture.ArmRate},
		{"robot.motion.gesture.idleReturnRate", m.Gesture.IdleReturnRate},
		{"robot.motion.expression.scaleRate", m.Expression.ScaleRate},
		{"robot.motion.expression.colorRate", m.Expression.ColorRate},
	}
	for _, r := range rates {
		if r.rate <= 0 {
			return fmt.Errorf("%s must be positive, got %.2f", r.name, r.rate)
		}
	}

	return nil
}
