package behaviour

import (
	"Locomotion/internal/logger"

	"go.uber.org/zap"
)

// maxFixedStepsPerFrame bounds the catch-up after a long frame.
const maxFixedStepsPerFrame = 8

// BehaviourManager drives one scene frame by frame: fixed steps first, then
// Update, then LateUpdate, so followers always read positions already moved this frame.
type BehaviourManager struct {
	Scene         *ComponentManager
	FixedTimestep float32

	accumulator float32
	frame       uint64
}

func NewBehaviourManager(scene *ComponentManager, fixedTimestep float32) *BehaviourManager {
	return &BehaviourManager{
		Scene:         scene,
		FixedTimestep: fixedTimestep,
	}
}

// Frame advances the scene by dt seconds. A non-positive or NaN dt is skipped.
func (m *BehaviourManager) Frame(dt float32) {
	if !(dt > 0) {
		logger.Log.Debug("Skipping frame with non-positive delta", zap.Float32("dt", dt))
		return
	}

	if m.FixedTimestep > 0 {
		m.accumulator += dt
		steps := 0
		for m.accumulator >= m.FixedTimestep && steps < maxFixedStepsPerFrame {
			m.Scene.FixedUpdateAll(m.FixedTimestep)
			m.accumulator -= m.FixedTimestep
			steps++
		}
		if steps == maxFixedStepsPerFrame && m.accumulator >= m.FixedTimestep {
			logger.Log.Warn("Dropping fixed steps after a long frame",
				zap.Uint64("frame", m.frame),
				zap.Float32("behind", m.accumulator))
			m.accumulator = 0
		}
	}

	m.Scene.UpdateAll(dt)
	m.Scene.LateUpdateAll(dt)
	m.frame++
}

// FrameCount returns how many frames ran.
func (m *BehaviourManager) FrameCount() uint64 {
	return m.frame
}
