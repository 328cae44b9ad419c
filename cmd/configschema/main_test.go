package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/decker502/folio/pkg/config"
)

// lookup 按路径取出嵌套的 properties
func lookup(t *testing.T, schema map[string]any, path ...string) map[string]any {
	t.Helper()
	cur := schema
	for _, key := range path {
		props, ok := cur["properties"].(map[string]any)
		if !ok {
			t.Fatalf("%v: 缺少 properties", path)
		}
		next, ok := props[key].(map[string]any)
		if !ok {
			t.Fatalf("%v: 缺少属性 %q", path, key)
		}
		cur = next
	}
	return cur
}

func decode(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := generateSchema(v, "test")
	if err != nil {
		t.Fatalf("generateSchema failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("schema 不是合法 JSON: %v", err)
	}
	return m
}

// TestSceneSchema 测试场景配置 schema 的字段名和自定义类型
func TestSceneSchema(t *testing.T) {
	m := decode(t, &config.SceneConfig{})

	tests := []struct {
		name     string
		path     []string
		wantType string
	}{
		{"窗口宽度", []string{"window", "width"}, "integer"},
		{"yaml 驼峰字段名", []string{"carousel", "cardWidth"}, "number"},
		{"颜色为字符串", []string{"palette", "background"}, "string"},
		{"向量为对象", []string{"robot", "position"}, "object"},
		{"向量分量小写", []string{"robot", "position", "x"}, "number"},
		{"嵌套的动画参数", []string{"robot", "motion", "jump", "speed"}, "number"},
		{"混合策略", []string{"blend", "clamp"}, "boolean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prop := lookup(t, m, tt.path...)
			if prop["type"] != tt.wantType {
				t.Errorf("type = %v, 期望 %s", prop["type"], tt.wantType)
			}
		})
	}

	color := lookup(t, m, "palette", "background")
	if color["pattern"] != colorPattern {
		t.Errorf("颜色 pattern = %v, 期望 %s", color["pattern"], colorPattern)
	}
	if _, ok := m["required"]; ok {
		t.Error("顶层不应有必填字段（加载时以默认值为底）")
	}
}

// TestProjectsSchema 测试项目列表 schema
func TestProjectsSchema(t *testing.T) {
	m := decode(t, &config.ProjectsConfig{})
	projects := lookup(t, m, "projects")
	if projects["type"] != "array" {
		t.Fatalf("projects type = %v, 期望 array", projects["type"])
	}

	items, ok := projects["items"].(map[string]any)
	if !ok {
		t.Fatal("projects 缺少 items")
	}
	props, _ := items["properties"].(map[string]any)
	for _, key := range []string{"id", "title", "category", "description", "imageUrl", "link", "accent"} {
		if _, ok := props[key]; !ok {
			t.Errorf("项目缺少属性 %q", key)
		}
	}
}

// TestGenerateSchemaTitle 测试标题与结尾换行
func TestGenerateSchemaTitle(t *testing.T) {
	data, err := generateSchema(&config.ProjectsConfig{}, "folio project list")
	if err != nil {
		t.Fatalf("generateSchema failed: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"title": "folio project list"`) {
		t.Error("缺少标题")
	}
	if !strings.HasSuffix(s, "}\n") {
		t.Error("输出应以换行结尾")
	}
}
