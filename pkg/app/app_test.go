package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/embedded"
)

func readRepoFile(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", name))
	if err != nil {
		t.Fatalf("读取 %s 失败: %v", name, err)
	}
	return data
}

// TestLoadFromEmbedded 测试从嵌入文件系统读取默认配置
func TestLoadFromEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		DefaultSceneConfigPath: {Data: readRepoFile(t, DefaultSceneConfigPath)},
		DefaultProjectsPath:    {Data: readRepoFile(t, DefaultProjectsPath)},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	cfg, err := LoadSceneConfig("")
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		t.Errorf("窗口尺寸 = %dx%d, 期望为正", cfg.Window.Width, cfg.Window.Height)
	}

	projects, err := LoadProjects("")
	if err != nil {
		t.Fatalf("LoadProjects failed: %v", err)
	}
	if len(projects) != config.ExpectedProjectCount {
		t.Errorf("项目数量 = %d, 期望 %d", len(projects), config.ExpectedProjectCount)
	}
}

// TestLoadNotInitialized 测试未初始化嵌入资源时的错误
func TestLoadNotInitialized(t *testing.T) {
	embedded.Init(nil)

	if _, err := LoadSceneConfig(""); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("LoadSceneConfig err = %v, 期望未初始化错误", err)
	}
	if _, err := LoadProjects(""); err == nil {
		t.Error("LoadProjects 应返回错误")
	}
}

// TestLoadFromDisk 测试 --config/--projects 指定的磁盘文件优先
func TestLoadFromDisk(t *testing.T) {
	embedded.Init(nil)
	dir := t.TempDir()

	scenePath := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(scenePath, []byte("window:\n  title: Custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadSceneConfig(scenePath)
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if cfg.Window.Title != "Custom" {
		t.Errorf("Title = %q, 期望 Custom", cfg.Window.Title)
	}

	if _, err := LoadProjects(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("文件不存在时应返回错误")
	}
}
