package mathutil

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML 从 "#rrggbb" 字符串解析颜色
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: color must be a string: %w", value.Line, err)
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML 输出 "#rrggbb" 字符串
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}
