package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/decker502/folio/pkg/mathutil"
	"gopkg.in/yaml.v3"
)

// ExpectedProjectCount 转盘按六张卡片设计
const ExpectedProjectCount = 6

// Project 一个项目的静态描述，加载后只读
type Project struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"imageUrl"`
	Link        string `yaml:"link"`
	// Accent 卡片占位色（图片不可用时的底色）
	Accent mathutil.Color `yaml:"accent"`
}

// ProjectsConfig 项目列表配置
//
// 配置文件位置: data/projects.yaml
type ProjectsConfig struct {
	Projects []Project `yaml:"projects"`
}

// LoadProjects 从磁盘加载项目列表
func LoadProjects(path string) ([]Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects config: %w", err)
	}
	return ParseProjects(data)
}

// ParseProjects 解析 YAML 格式的项目列表并校验
func ParseProjects(data []byte) ([]Project, error) {
	var cfg ProjectsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse projects config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid projects config: %w", err)
	}
	return cfg.Projects, nil
}

// Validate 验证项目列表
//
// 检查：
//   - 恰好 ExpectedProjectCount 个项目
//   - ID 不重复
//   - 标题不能为空
func (c *ProjectsConfig) Validate() error {
	if len(c.Projects) != ExpectedProjectCount {
		return fmt.Errorf("expected %d projects, got %d", ExpectedProjectCount, len(c.Projects))
	}

	seen := make(map[int]bool, len(c.Projects))
	for i, p := range c.Projects {
		if seen[p.ID] {
			return fmt.Errorf("project[%d]: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = true

		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project[%d]: title is required", i)
		}
	}
	return nil
}
