// Package main 生成 data/ 下 YAML 配置文件的 JSON Schema，供编辑器做补全和校验。
//
// Usage:
//
//	go run ./cmd/configschema [flags]
//
// Flags:
//
//	--out <dir>    输出目录（默认 build/schema）
//
// 输出 scene.schema.json 和 projects.schema.json。
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/mathutil"
	"github.com/invopop/jsonschema"
)

// colorPattern 与 mathutil.ParseHex 接受的格式一致
const colorPattern = `^#?[0-9a-fA-F]{6}$`

var (
	colorType = reflect.TypeOf(mathutil.Color{})
	vec3Type  = reflect.TypeOf(mathutil.Vec3{})
)

// schemaTargets 输出文件名到配置根类型
var schemaTargets = []struct {
	file  string
	title string
	value any
}{
	{"scene.schema.json", "folio scene configuration", &config.SceneConfig{}},
	{"projects.schema.json", "folio project list", &config.ProjectsConfig{}},
}

func main() {
	outDir := flag.String("out", "build/schema", "输出目录")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, target := range schemaTargets {
		data, err := generateSchema(target.value, target.title)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", target.file, err)
			os.Exit(1)
		}
		path := filepath.Join(*outDir, target.file)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, len(data))
	}
}

// newReflector 按 yaml 标签命名字段
//
// 所有字段都是可选的：加载时以默认配置为底。
func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		FieldNameTag:               "yaml",
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		Mapper:                     mapType,
	}
}

// mapType 为自定义 YAML 编码的类型提供 schema
func mapType(t reflect.Type) *jsonschema.Schema {
	switch t {
	case colorType:
		return &jsonschema.Schema{
			Type:        "string",
			Pattern:     colorPattern,
			Description: "hex colour, #rrggbb",
		}
	case vec3Type:
		props := jsonschema.NewProperties()
		for _, axis := range []string{"x", "y", "z"} {
			props.Set(axis, &jsonschema.Schema{Type: "number"})
		}
		return &jsonschema.Schema{
			Type:                 "object",
			Properties:           props,
			AdditionalProperties: jsonschema.FalseSchema,
		}
	}
	return nil
}

func generateSchema(v any, title string) ([]byte, error) {
	schema := newReflector().Reflect(v)
	schema.Title = title
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
