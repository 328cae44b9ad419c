package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func projectsYAML(n int) string {
	var b strings.Builder
	b.WriteString("projects:\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "  - id: %d\n    title: Project %d\n    category: WebGL Experience\n    link: \"#\"\n    accent: \"#336699\"\n", i, i)
	}
	return b.String()
}

// TestParseProjects 测试项目列表解析与校验
func TestParseProjects(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"六个项目", projectsYAML(6), ""},
		{"数量不足", projectsYAML(5), "expected 6 projects"},
		{"数量过多", projectsYAML(7), "expected 6 projects"},
		{"ID 重复", strings.Replace(projectsYAML(6), "id: 5", "id: 0", 1), "duplicate id 0"},
		{"标题为空", strings.Replace(projectsYAML(6), "title: Project 3", "title: \"  \"", 1), "title is required"},
		{"颜色格式错误", strings.Replace(projectsYAML(6), "#336699", "blue", 1), "color"},
		{"YAML 语法错误", "projects: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects, err := ParseProjects([]byte(tt.data))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(projects) != ExpectedProjectCount {
					t.Errorf("len(projects) = %d, want %d", len(projects), ExpectedProjectCount)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

// TestParseProjectsFields 测试字段映射（imageUrl 与强调色）
func TestParseProjectsFields(t *testing.T) {
	data := strings.Replace(projectsYAML(6), "  - id: 0\n", "  - id: 0\n    imageUrl: assets/a.gif\n    description: hello\n", 1)
	projects, err := ParseProjects([]byte(data))
	if err != nil {
		t.Fatalf("ParseProjects failed: %v", err)
	}

	p := projects[0]
	if p.ImageURL != "assets/a.gif" {
		t.Errorf("ImageURL = %q, want assets/a.gif", p.ImageURL)
	}
	if p.Description != "hello" {
		t.Errorf("Description = %q, want hello", p.Description)
	}
	if p.Accent.Hex() != "#336699" {
		t.Errorf("Accent = %s, want #336699", p.Accent.Hex())
	}
}

// TestLoadProjects 测试从文件加载与缺失文件报错
func TestLoadProjects(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.yaml")
	if err := os.WriteFile(path, []byte(projectsYAML(6)), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	if _, err := LoadProjects(path); err != nil {
		t.Errorf("LoadProjects failed: %v", err)
	}
	if _, err := LoadProjects(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestDefaultSceneConfigValid 默认配置必须通过校验
func TestDefaultSceneConfigValid(t *testing.T) {
	cfg := DefaultSceneConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !cfg.Blend.Clamp {
		t.Error("blend.clamp should default to true")
	}
	if cfg.Carousel.Motion.RotationRate != 4 || cfg.Carousel.Motion.CameraRate != 2 {
		t.Errorf("carousel rates = %v/%v, want 4/2", cfg.Carousel.Motion.RotationRate, cfg.Carousel.Motion.CameraRate)
	}
	if math.Abs(cfg.Robot.Motion.Gesture.MaxPitch-0.8*math.Pi) > 1e-9 {
		t.Errorf("gesture maxPitch = %v, want 0.8π", cfg.Robot.Motion.Gesture.MaxPitch)
	}
	if f := cfg.Robot.Motion.Float; f.Speed != 4 || f.RotationIntensity != 0.5 || f.FloatIntensity != 0.5 {
		t.Errorf("robot float = %+v, want speed 4 intensities 0.5/0.5", f)
	}
	if f := cfg.Carousel.Motion.Float; f.Speed != 2 || f.RotationIntensity != 0.05 || f.FloatIntensity != 0.2 {
		t.Errorf("carousel float = %+v, want speed 2 intensities 0.05/0.2", f)
	}
	if cfg.Floor.Y != -2.5 || cfg.Floor.Opacity != 0.4 || len(cfg.Floor.Shadows) == 0 {
		t.Errorf("floor = %+v, want y -2.5 opacity 0.4 with shadows", cfg.Floor)
	}
}

// TestParseSceneConfigPartial 文件中缺省的字段保留默认值
func TestParseSceneConfigPartial(t *testing.T) {
	data := `
blend:
  clamp: false
carousel:
  radius: 5
robot:
  motion:
    head:
      rate: 8
    expression:
      hover: {scaleX: 1.5, scaleY: 1.5, color: "#ff0000"}
`
	cfg, err := ParseSceneConfig([]byte(data))
	if err != nil {
		t.Fatalf("ParseSceneConfig failed: %v", err)
	}

	if cfg.Blend.Clamp {
		t.Error("blend.clamp = true, want false")
	}
	if cfg.Carousel.Radius != 5 {
		t.Errorf("radius = %v, want 5", cfg.Carousel.Radius)
	}
	if cfg.Carousel.CardWidth != 2 {
		t.Errorf("cardWidth = %v, want default 2", cfg.Carousel.CardWidth)
	}
	if cfg.Robot.Motion.Head.Rate != 8 {
		t.Errorf("head.rate = %v, want 8", cfg.Robot.Motion.Head.Rate)
	}
	if cfg.Robot.Motion.Head.Gain != 0.5 {
		t.Errorf("head.gain = %v, want default 0.5", cfg.Robot.Motion.Head.Gain)
	}
	if cfg.Robot.Motion.Expression.Hover.Color.Hex() != "#ff0000" {
		t.Errorf("hover color = %s, want #ff0000", cfg.Robot.Motion.Expression.Hover.Color.Hex())
	}
	if cfg.Robot.Motion.Expression.Excited.ScaleY != 0.1 {
		t.Errorf("excited scaleY = %v, want default 0.1", cfg.Robot.Motion.Expression.Excited.ScaleY)
	}
	if cfg.Window.Width != DefaultWindowWidth {
		t.Errorf("window width = %d, want %d", cfg.Window.Width, DefaultWindowWidth)
	}
}

// TestSceneConfigValidate 测试非法配置
func TestSceneConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"窗口宽度为 0", "window: {width: 0}", "window size"},
		{"视场角越界", "window: {fov: 190}", "fov"},
		{"半径为负", "carousel: {radius: -1}", "radius"},
		{"卡片高度为 0", "carousel: {cardHeight: 0}", "card size"},
		{"角色缩放为 0", "robot: {scale: 0}", "robot scale"},
		{"眨眼间隔短于眨眼时长", "robot: {motion: {blink: {minInterval: 0.1}}}", "minInterval"},
		{"眨眼间隔反转", "robot: {motion: {blink: {minInterval: 4, maxInterval: 3}}}", "min(4.00) > max(3.00)"},
		{"跳跃速度为 0", "robot: {motion: {jump: {speed: 0}}}", "jump speed"},
		{"混合速度为 0", "carousel: {motion: {cameraRate: 0}}", "carousel.motion.cameraRate"},
		{"表情颜色速度为负", "robot: {motion: {expression: {colorRate: -1}}}", "robot.motion.expression.colorRate"},
		{"颜色格式错误", "palette: {text: \"#12\"}", "color"},
		{"悬浮强度为负", "robot: {motion: {float: {floatIntensity: -1}}}", "robot.motion.float"},
		{"转盘悬浮速度为负", "carousel: {motion: {float: {speed: -2}}}", "carousel.motion.float"},
		{"阴影透明度越界", "floor: {opacity: 1.5}", "floor opacity"},
		{"阴影层数为 0", "floor: {layers: 0}", "floor layers"},
		{"阴影半径为 0", "floor: {shadows: [{x: 0, z: 0, radiusX: 0, radiusZ: 1}]}", "floor shadow 0 radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSceneConfig([]byte(tt.data))
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}
