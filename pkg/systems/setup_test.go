package systems

import (
	"math"
	"testing"

	"github.com/decker502/folio/pkg/anim"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/entities"
	"github.com/decker502/folio/pkg/game"
	"github.com/decker502/folio/pkg/utils"
)

const frameDt = 1.0 / 60.0

// testScene 测试用的完整场景
type testScene struct {
	em       *ecs.EntityManager
	gs       *game.GameState
	cfg      *config.SceneConfig
	camera   ecs.EntityID
	carousel ecs.EntityID
	cards    []ecs.EntityID
	robot    ecs.EntityID
}

func newTestScene(t *testing.T) *testScene {
	t.Helper()

	projects := make([]config.Project, config.ExpectedProjectCount)
	for i := range projects {
		projects[i] = config.Project{ID: i, Title: "P"}
	}
	gs, err := game.NewGameState(projects, nil)
	if err != nil {
		t.Fatalf("NewGameState failed: %v", err)
	}

	em := ecs.NewEntityManager()
	cfg := config.DefaultSceneConfig()
	carousel, cards, err := entities.NewCarouselEntity(em, cfg, projects)
	if err != nil {
		t.Fatalf("NewCarouselEntity failed: %v", err)
	}

	return &testScene{
		em:       em,
		gs:       gs,
		cfg:      cfg,
		camera:   entities.NewCameraEntity(em, cfg),
		carousel: carousel,
		cards:    cards,
		robot:    entities.NewRobotEntity(em, cfg),
	}
}

func (ts *testScene) blender() utils.Blender {
	return utils.Blender{Clamp: ts.cfg.Blend.Clamp}
}

func (ts *testScene) characterSystem() *CharacterAnimationSystem {
	controller := anim.NewCharacter(ts.cfg.Robot.Motion, ts.blender(), nil)
	return NewCharacterAnimationSystem(ts.em, ts.gs, controller)
}

// runFrames 推进 n 帧：时钟先推进，再调用各系统
func (ts *testScene) runFrames(n int, update func(dt float64)) {
	for i := 0; i < n; i++ {
		dt := ts.gs.Advance(frameDt)
		update(dt)
	}
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
