package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/folio/pkg/app"
	"github.com/decker502/folio/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "场景配置文件路径（默认使用内置 data/scene.yaml）")
	projectsPath := flag.String("projects", "", "项目列表文件路径（默认使用内置 data/projects.yaml）")
	skipLoading := flag.Bool("skip-loading", false, "跳过加载画面")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:          *verbose,
		SceneConfigPath:  *configPath,
		ProjectsPath:     *projectsPath,
		SkipLoadingScene: *skipLoading,
	})
	if err != nil {
		// NewApp 在非 verbose 模式下会关闭日志输出，错误直接写 stderr
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(gameApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Fullscreen())

	runErr := ebiten.RunGame(gameApp)

	// 退出前让当前场景保存设置
	gameApp.GetSceneManager().Close()

	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
