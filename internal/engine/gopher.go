package engine

import (
	"context"
	"time"

	"Locomotion/internal/behaviour"
	"Locomotion/internal/config"
	"Locomotion/internal/logger"

	"go.uber.org/zap"
)

const defaultTargetFPS = 144

// Gopher owns a scene and drives it frame by frame. It has no window: a host
// either steps it with its own clock or lets Run pace it at the target rate.
type Gopher struct {
	Scene      *behaviour.ComponentManager
	Behaviours *behaviour.BehaviourManager

	refreshRate     time.Duration
	onFrameCallback func(deltaTime float64) // Optional hook run after each frame
}

func NewGopher(cfg config.EngineConfig) *Gopher {
	logger.Log.Info("Gopher initializing...",
		zap.Int("target_fps", cfg.TargetFPS),
		zap.Float32("fixed_timestep", cfg.FixedTimestep))

	fps := cfg.TargetFPS
	if fps <= 0 {
		logger.Log.Warn("Invalid target FPS, using default", zap.Int("target_fps", fps), zap.Int("default", defaultTargetFPS))
		fps = defaultTargetFPS
	}

	scene := behaviour.NewComponentManager()
	return &Gopher{
		Scene:       scene,
		Behaviours:  behaviour.NewBehaviourManager(scene, cfg.FixedTimestep),
		refreshRate: time.Second / time.Duration(fps),
	}
}

// SetOnFrameCallback sets a callback that is called after every frame with its delta.
func (gopher *Gopher) SetOnFrameCallback(callback func(deltaTime float64)) {
	gopher.onFrameCallback = callback
}

// RefreshRate is the wall-clock period Run aims for.
func (gopher *Gopher) RefreshRate() time.Duration {
	return gopher.refreshRate
}

// Frames returns how many frames advanced the scene.
func (gopher *Gopher) Frames() uint64 {
	return gopher.Behaviours.FrameCount()
}

// Step advances the scene by deltaTime seconds. A non-positive delta leaves the
// scene untouched but still reaches the frame callback.
func (gopher *Gopher) Step(deltaTime float64) {
	gopher.Behaviours.Frame(float32(deltaTime))
	if gopher.onFrameCallback != nil {
		gopher.onFrameCallback(deltaTime)
	}
}

// Run steps the scene in real time until frames have run or ctx is done.
// frames <= 0 runs until cancellation. Delta time is measured from the wall clock.
func (gopher *Gopher) Run(ctx context.Context, frames int) error {
	ticker := time.NewTicker(gopher.refreshRate)
	defer ticker.Stop()

	logger.Log.Info("Loop started", zap.Duration("refresh_rate", gopher.refreshRate), zap.Int("frames", frames))
	lastTime := time.Now()
	for ran := 0; frames <= 0 || ran < frames; ran++ {
		select {
		case <-ctx.Done():
			logger.Log.Info("Loop stopped", zap.Uint64("frames", gopher.Frames()), zap.Error(ctx.Err()))
			return ctx.Err()
		case now := <-ticker.C:
			deltaTime := now.Sub(lastTime).Seconds()
			lastTime = now
			gopher.Step(deltaTime)
		}
	}
	logger.Log.Info("Loop finished", zap.Uint64("frames", gopher.Frames()))
	return nil
}
