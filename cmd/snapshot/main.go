// Package main 无窗口运行转盘场景，按固定步长推进并把帧保存为 WebP。
//
// 用于检查动画曲线和布局，不需要显示器或 GPU。
//
// Usage:
//
//	go run ./cmd/snapshot [flags]
//
// Flags:
//
//	--out <dir>          输出目录（默认 build/snapshots）
//	--frames <n>         总帧数（默认 240）
//	--every <n>          每 n 帧保存一张（默认 30）
//	--fps <n>            模拟帧率（默认 60）
//	--width/--height     画布尺寸（默认取场景配置的窗口尺寸）
//	--supersample <n>    超采样倍数（默认 2）
//	--config <path>      场景配置（默认 data/scene.yaml）
//	--projects <path>    项目列表（默认 data/projects.yaml）
//	--script <steps>     脚本操作，例如 "40:next,120:zoom,160:click=640/360"
//	--animated <file>    额外把保存的帧合成为一个循环播放的动画 WebP
//	--verbose            输出场景日志
//
// 脚本操作: next prev zoom jump overlay debug link，
// 以及 hover=x/y（移动指针）和 click=x/y（在该点点击）。
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/render"
	"github.com/decker502/folio/pkg/scenes"
)

func main() {
	outDir := flag.String("out", "build/snapshots", "输出目录")
	frames := flag.Int("frames", 240, "总帧数")
	every := flag.Int("every", 30, "每 n 帧保存一张")
	fps := flag.Int("fps", 60, "模拟帧率")
	width := flag.Int("width", 0, "画布宽度，0 表示使用配置")
	height := flag.Int("height", 0, "画布高度，0 表示使用配置")
	supersample := flag.Int("supersample", 2, "超采样倍数")
	configPath := flag.String("config", "data/scene.yaml", "场景配置文件")
	projectsPath := flag.String("projects", "data/projects.yaml", "项目列表文件")
	scriptText := flag.String("script", "", "脚本操作")
	animated := flag.String("animated", "", "动画 WebP 输出路径")
	verbose := flag.Bool("verbose", false, "输出场景日志")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	opts := options{
		outDir:       *outDir,
		frames:       *frames,
		every:        *every,
		fps:          *fps,
		width:        *width,
		height:       *height,
		supersample:  *supersample,
		configPath:   *configPath,
		projectsPath: *projectsPath,
		script:       *scriptText,
		animated:     *animated,
	}
	written, err := run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d frames to %s\n", len(written), opts.outDir)
}

type options struct {
	outDir       string
	frames       int
	every        int
	fps          int
	width        int
	height       int
	supersample  int
	configPath   string
	projectsPath string
	script       string
	animated     string
}

// run 推进场景并写出帧，返回写出的文件路径
func run(opts options) ([]string, error) {
	if opts.frames <= 0 || opts.every <= 0 || opts.fps <= 0 {
		return nil, fmt.Errorf("frames, every and fps must be positive")
	}

	script, err := parseScript(opts.script)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadSceneConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	projects, err := config.LoadProjects(opts.projectsPath)
	if err != nil {
		return nil, err
	}
	gs, err := game.NewGameState(projects, nil)
	if err != nil {
		return nil, err
	}
	// 固定随机数，保证眨眼时间可复现
	world, err := scenes.NewWorld(cfg, gs, nil)
	if err != nil {
		return nil, err
	}

	w, h := opts.width, opts.height
	if w <= 0 || h <= 0 {
		w, h = cfg.Window.Width, cfg.Window.Height
	}
	surface, err := render.NewImageSurface(w, h, opts.supersample)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	dt := 1.0 / float64(opts.fps)
	animation := &nativewebp.Animation{}
	var written []string
	var cursor *point
	for frame := 1; frame <= opts.frames; frame++ {
		in := scenes.FrameInput{}
		for _, st := range script[frame] {
			if st.cursor != nil {
				cursor = st.cursor
			}
			if st.click {
				in.Clicked = true
			}
			if st.action != scenes.ActionNone {
				in.Actions = append(in.Actions, st.action)
			}
		}
		if cursor != nil {
			in.CursorX, in.CursorY, in.HasCursor = cursor.x, cursor.y, true
		}

		world.Update(dt, in)
		world.Draw(surface)

		if frame%opts.every != 0 {
			continue
		}
		img := surface.Image()
		path := filepath.Join(opts.outDir, fmt.Sprintf("frame_%04d.webp", frame))
		if err := writeWebP(path, img); err != nil {
			return written, err
		}
		log.Printf("[Snapshot] frame %d -> %s", frame, path)
		written = append(written, path)

		if opts.animated != "" {
			animation.Images = append(animation.Images, img)
			animation.Durations = append(animation.Durations, uint(opts.every*1000/opts.fps))
			animation.Disposals = append(animation.Disposals, 0)
		}
	}

	if opts.animated != "" && len(animation.Images) > 0 {
		if err := writeAnimation(opts.animated, animation); err != nil {
			return written, err
		}
		written = append(written, opts.animated)
	}
	return written, nil
}

func writeWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("WebP encode %s: %w", path, err)
	}
	return nil
}

func writeAnimation(path string, animation *nativewebp.Animation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.EncodeAll(f, animation, nil); err != nil {
		return fmt.Errorf("WebP animation encode %s: %w", path, err)
	}
	return nil
}
