package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decker502/folio/pkg/scenes"
)

type point struct {
	x, y float64
}

// step 脚本中的一个操作
type step struct {
	action scenes.Action
	cursor *point
	click  bool
}

var scriptActions = map[string]scenes.Action{
	"next":    scenes.ActionNext,
	"prev":    scenes.ActionPrev,
	"zoom":    scenes.ActionToggleZoom,
	"jump":    scenes.ActionJump,
	"overlay": scenes.ActionToggleOverlay,
	"debug":   scenes.ActionToggleDebug,
	"link":    scenes.ActionOpenLink,
}

// parseScript 解析 "帧号:操作" 列表，逗号分隔
func parseScript(s string) (map[int][]step, error) {
	script := make(map[int][]step)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		frameText, op, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("invalid script step %q: want frame:action", item)
		}
		frame, err := strconv.Atoi(strings.TrimSpace(frameText))
		if err != nil || frame <= 0 {
			return nil, fmt.Errorf("invalid frame in %q", item)
		}
		st, err := parseStep(strings.TrimSpace(op))
		if err != nil {
			return nil, fmt.Errorf("script step %q: %w", item, err)
		}
		script[frame] = append(script[frame], st)
	}
	return script, nil
}

func parseStep(op string) (step, error) {
	name, arg, hasArg := strings.Cut(op, "=")
	switch name {
	case "hover", "click":
		if !hasArg {
			return step{}, fmt.Errorf("%s needs =x/y", name)
		}
		p, err := parsePoint(arg)
		if err != nil {
			return step{}, err
		}
		return step{cursor: &p, click: name == "click"}, nil
	}

	a, ok := scriptActions[name]
	if !ok || hasArg {
		return step{}, fmt.Errorf("unknown action %q", op)
	}
	return step{action: a}, nil
}

func parsePoint(s string) (point, error) {
	xs, ys, ok := strings.Cut(s, "/")
	if !ok {
		return point{}, fmt.Errorf("invalid point %q: want x/y", s)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return point{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return point{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return point{x, y}, nil
}
