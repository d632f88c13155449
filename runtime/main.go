package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"Locomotion/internal/behaviour"
	"Locomotion/internal/config"
	"Locomotion/internal/engine"
	"Locomotion/internal/logger"
	"Locomotion/internal/scenario"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "config file (.yaml or .json); defaults to locomotion.yaml next to the binary if present")
	scenarioPath := flag.String("scenario", "", "scenario file (.yaml); a built-in walk/jump/sprint run when empty")
	deltaTime := flag.Float64("dt", 0, "fixed frame delta in seconds; overrides the scenario and the target FPS")
	realtime := flag.Bool("realtime", false, "pace frames with the wall clock at the target FPS")
	logLevel := flag.String("log-level", "", "debug, info, warn or error; overrides the config")
	script := flag.String("script", defaultPlayerScript, "registered script that drives the player")
	flag.Parse()

	if err := run(*configPath, *scenarioPath, *script, *deltaTime, *realtime, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, scenarioPath, scriptName string, deltaTime float64, realtime bool, logLevel string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if logLevel == "" {
		logLevel = cfg.Logging.Level
	}
	logger.InitWithLevel(logLevel)
	defer logger.Sync()

	for _, w := range cfg.Warnings() {
		logger.Log.Warn("Config warning", zap.String("warning", w))
	}

	logger.Log.Debug("Registered scripts", zap.Strings("scripts", behaviour.GetAvailableScripts()))

	sc := defaultScenario()
	if scenarioPath != "" {
		sc, err = scenario.Load(scenarioPath)
		if err != nil {
			return err
		}
	}
	logger.Log.Info("Scenario loaded",
		zap.String("name", sc.Name),
		zap.Int("segments", len(sc.Segments)),
		zap.Int("frames", sc.TotalFrames()))

	gameEngine := engine.NewGopher(cfg.Engine)
	world, err := buildScene(gameEngine.Scene, cfg, scriptName)
	if err != nil {
		return err
	}
	player := scenario.NewPlayer(sc)

	if realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = runRealtime(ctx, gameEngine, world, player)
	} else {
		runFixed(gameEngine, world, player, frameDelta(deltaTime, sc, cfg))
	}

	world.logPose("Simulation finished", gameEngine.Frames())
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = findAsset("locomotion.yaml")
		if path == "" {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

// frameDelta picks the flag, then the scenario, then the target frame rate.
func frameDelta(flagDelta float64, sc *scenario.Scenario, cfg *config.Config) float64 {
	if flagDelta > 0 {
		return flagDelta
	}
	if sc.DeltaTime > 0 {
		return float64(sc.DeltaTime)
	}
	if cfg.Engine.TargetFPS > 0 {
		return 1 / float64(cfg.Engine.TargetFPS)
	}
	return 1.0 / 60.0
}

func runFixed(gameEngine *engine.Gopher, world *scene, player *scenario.Player, deltaTime float64) {
	logger.Log.Info("Running fixed-step simulation", zap.Float64("dt", deltaTime))
	for player.Next(world.actions) {
		gameEngine.Step(deltaTime)
		if gameEngine.Frames()%50 == 0 {
			world.logPose("Progress", gameEngine.Frames())
		}
	}
}

func runRealtime(ctx context.Context, gameEngine *engine.Gopher, world *scene, player *scenario.Player) error {
	if !player.Next(world.actions) {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gameEngine.SetOnFrameCallback(func(deltaTime float64) {
		if !player.Next(world.actions) {
			cancel()
		}
	})
	err := gameEngine.Run(ctx, 0)
	if errors.Is(err, context.Canceled) {
		if !player.Done() {
			logger.Log.Info("Interrupted", zap.Int("frame", player.Frame()))
		}
		return nil
	}
	return err
}

func findAsset(name string) string {
	paths := []string{
		filepath.Join("assets", name),
		name,
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		paths = append([]string{
			filepath.Join(exeDir, "assets", name),
			filepath.Join(exeDir, name),
		}, paths...)
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
