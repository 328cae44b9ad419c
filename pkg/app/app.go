// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/embedded"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/render"
	"github.com/decker502/folio/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 嵌入配置的默认路径
const (
	DefaultSceneConfigPath = "data/scene.yaml"
	DefaultProjectsPath    = "data/projects.yaml"

	// storageName gdata 存储使用的应用名
	storageName = "folio"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SceneConfigPath 场景配置文件，为空时读取嵌入的 data/scene.yaml
	SceneConfigPath string
	// ProjectsPath 项目列表文件，为空时读取嵌入的 data/projects.yaml
	ProjectsPath string
	// SkipLoadingScene 跳过加载占位画面，直接进入转盘场景
	SkipLoadingScene bool
}

// App 应用核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameState                *game.GameState
	sceneConfig              *config.SceneConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入配置。
// 配置或字体加载失败时返回错误；设置存储不可用时降级为仅内存设置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := LoadSceneConfig(cfg.SceneConfigPath)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}
	projects, err := LoadProjects(cfg.ProjectsPath)
	if err != nil {
		return nil, fmt.Errorf("项目列表加载失败: %w", err)
	}
	log.Printf("[Config] 加载 %d 个项目", len(projects))

	faceSource, err := render.LoadFaceSource()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	storage, err := game.OpenStorage(storageName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
		storage = nil
	}
	settings, err := game.NewSettingsManager(storage)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	gameState, err := game.NewGameState(projects, settings)
	if err != nil {
		return nil, fmt.Errorf("运行时状态初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	build := func() (game.Scene, error) {
		world, err := scenes.NewWorld(sceneConfig, gameState, rand.Float64)
		if err != nil {
			return nil, err
		}
		return scenes.NewPortfolioScene(world, faceSource), nil
	}

	if cfg.SkipLoadingScene {
		log.Printf("[App] SkipLoadingScene enabled")
		scene, err := build()
		if err != nil {
			return nil, fmt.Errorf("场景初始化失败: %w", err)
		}
		sceneManager.SwitchTo(scene)
	} else {
		sceneManager.SwitchTo(scenes.NewLoadingScene(sceneManager, sceneConfig.Palette, faceSource, build))
	}

	return &App{
		sceneManager: sceneManager,
		gameState:    gameState,
		sceneConfig:  sceneConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadSceneConfig 从磁盘读取场景配置，path 为空时读取嵌入配置
func LoadSceneConfig(path string) (*config.SceneConfig, error) {
	if path != "" {
		return config.LoadSceneConfig(path)
	}
	data, err := embedded.ReadFile(DefaultSceneConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", DefaultSceneConfigPath, err)
	}
	return config.ParseSceneConfig(data)
}

// LoadProjects 从磁盘读取项目列表，path 为空时读取嵌入配置
func LoadProjects(path string) ([]config.Project, error) {
	if path != "" {
		return config.LoadProjects(path)
	}
	data, err := embedded.ReadFile(DefaultProjectsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", DefaultProjectsPath, err)
	}
	return config.ParseProjects(data)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if fullscreen {
		ebiten.SetFullscreen(true)
	} else {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	sm := a.gameState.GetSettingsManager()
	sm.SetFullscreen(fullscreen)
	if err := sm.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// letterbox 使用场景背景色
	screen.Fill(a.sceneConfig.Palette.Background.RGBA(1))
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.WindowSize()
}

// WindowSize 配置中的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.sceneConfig.Window.Width, a.sceneConfig.Window.Height
}

// WindowTitle 配置中的窗口标题
func (a *App) WindowTitle() string {
	return a.sceneConfig.Window.Title
}

// Fullscreen 用户上次保存的全屏偏好
func (a *App) Fullscreen() bool {
	return a.gameState.GetSettingsManager().GetSettings().Fullscreen
}

// GetSceneManager 返回场景管理器
// 用于在退出时保存设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

var _ ebiten.FinalScreenDrawer = (*App)(nil)
