package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/akmonengine/impact"
	"github.com/akmonengine/impact/debug"
	"github.com/akmonengine/impact/scene"
	"go.uber.org/zap"
)

//go:embed scene.yaml
var defaultScene string

func main() {
	path := flag.String("scene", "", "scene file, the embedded demo scene when empty")
	ticks := flag.Int("ticks", 240, "number of ticks to simulate")
	fps := flag.Float64("fps", 60, "simulated ticks per second")
	every := flag.Int("render", 60, "render the debug panel every n ticks")
	flag.Parse()

	if err := run(*path, *ticks, *fps, *every); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*scene.Config, error) {
	if path == "" {
		return scene.LoadYAML(strings.NewReader(defaultScene))
	}

	return scene.LoadFile(path)
}

func run(path string, ticks int, fps float64, every int) error {
	if fps <= 0 || every <= 0 {
		return errors.New("fps and render must be positive")
	}

	config, err := loadConfig(path)
	if err != nil {
		return err
	}

	logger, err := config.Log.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	eventLog := debug.NewLog(config.Log.Lines)
	panel := debug.NewPanel(eventLog)

	s, err := config.Build(panel.SetStat, logger)
	if err != nil {
		return err
	}

	debug.LogCollisions(s.Engine, eventLog)
	s.Engine.AddTypePairListener("npc", "obstacle", func(details impact.CollisionEventDetails) {
		eventLog.Log(fmt.Sprintf("NPC %s hit %s", details.LeftObjectId, details.RightObjectId))
	})
	s.Engine.AddObjectTypeListener("player-cube", "obstacle", func(details impact.CollisionEventDetails) {
		other := details.RightObjectId
		if other == "player-cube" {
			other = details.LeftObjectId
		}
		eventLog.Log("Player touched " + other)
	})

	dt := 1 / fps
	for tick := 1; tick <= ticks; tick++ {
		s.Step(dt)

		if tick%every == 0 {
			panel.SetStat("Tick", fmt.Sprint(tick))
			if err = panel.Render(os.Stdout); err != nil {
				return err
			}
			fmt.Println()
		}
	}

	logger.Info("simulation done", zap.Int("ticks", ticks))

	return nil
}
