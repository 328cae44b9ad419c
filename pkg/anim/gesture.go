package anim

import (
	"math"

	"github.com/decker502/folio/pkg/utils"
)

// WaveStage 挥手的时间阶段
type WaveStage int

const (
	StageRaise WaveStage = iota
	StageHold
	StageLower
)

// String 返回阶段名称
func (s WaveStage) String() string {
	switch s {
	case StageRaise:
		return "raise"
	case StageHold:
		return "hold"
	default:
		return "lower"
	}
}

// waveStage 阶段表：按总时长比例划分，pose 接收阶段内进度 [0, 1] 与绝对时间
type waveStage struct {
	stage      WaveStage
	start, end float64
	pose       func(g GestureTuning, local, t float64) ArmPose
}

var waveStages = []waveStage{
	{
		stage: StageRaise, start: 0, end: gestureRaiseEnd,
		pose: func(g GestureTuning, local, _ float64) ArmPose {
			return ArmPose{Pitch: utils.EaseCurve(utils.CurveEaseOutQuad, local) * g.MaxPitch}
		},
	},
	{
		stage: StageHold, start: gestureRaiseEnd, end: gestureLowerStart,
		pose: func(g GestureTuning, _, t float64) ArmPose {
			holdStart := gestureRaiseEnd * GestureDuration
			return ArmPose{
				Pitch:  g.MaxPitch,
				Wobble: math.Sin((t-holdStart)*g.WobbleFrequency) * g.WobbleAmplitude,
			}
		},
	},
	{
		stage: StageLower, start: gestureLowerStart, end: 1,
		pose: func(g GestureTuning, local, _ float64) ArmPose {
			return ArmPose{Pitch: g.MaxPitch * (1 - utils.EaseCurve(utils.CurveEaseInQuad, local))}
		},
	},
}

// stageAt 查找 t 所在阶段；t 超出总时长时落在最后一个阶段
func stageAt(t float64) waveStage {
	for _, ws := range waveStages {
		if t < ws.end*GestureDuration {
			return ws
		}
	}
	return waveStages[len(waveStages)-1]
}

// StageAt 返回手势时间 t 所在阶段
func StageAt(t float64) WaveStage {
	return stageAt(t).stage
}

// WavePose 计算挥手在时间 t 的目标手臂姿态（已乘侧别方向）
func WavePose(g GestureTuning, side Side, t float64) ArmPose {
	ws := stageAt(t)
	start := ws.start * GestureDuration
	length := (ws.end - ws.start) * GestureDuration
	local := (t - start) / length

	pose := ws.pose(g, local, t)
	pose.Pitch *= side.Direction()
	return pose
}
