package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/OdatNurd/ChronoSneak-sub000/internal/domain"
	"github.com/OdatNurd/ChronoSneak-sub000/internal/engine"
	"github.com/OdatNurd/ChronoSneak-sub000/pkg/leveldata"
	"github.com/OdatNurd/ChronoSneak-sub000/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var configPath string
	var levelPath string
	flag.StringVar(&configPath, "config", "config.toml", "Path to TOML config")
	flag.StringVar(&levelPath, "level", "", "Level YAML (overrides config)")
	flag.Parse()

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}
	applyLogging(cfg.Logging)

	if levelPath == "" {
		levelPath = cfg.Simulation.LevelFile
	}

	logger.Log.Info("Starting ChronoSneak simulation...")

	game, err := loadGame(levelPath)
	if err != nil {
		logger.Log.Fatal("Level load error: ", err)
	}

	// 2. Живая перезагрузка уровня при изменении файла
	reload := make(chan struct{}, 1)
	if cfg.Simulation.WatchLevel {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logger.Log.Warn("File watcher unavailable: ", err)
		} else {
			defer watcher.Close()
			if err := watcher.Add(levelPath); err != nil {
				logger.Log.Warn("Cannot watch level file: ", err)
			} else {
				go func() {
					for ev := range watcher.Events {
						if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
							select {
							case reload <- struct{}{}:
							default:
							}
						}
					}
				}()
			}
		}
	}

	// 3. Цикл ввода: одна команда - один ход
	render(game)
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		select {
		case <-reload:
			logger.Log.Info("Level file changed, reloading...")
			if fresh, err := loadGame(levelPath); err != nil {
				logger.Log.Warn("Reload failed, keeping current level: ", err)
			} else {
				game = fresh
			}
		default:
		}

		action, dir, quit := parseInput(scanner.Text())
		if quit {
			break
		}
		if action == engine.ActionUnknown {
			fmt.Println("commands: n/s/e/w move, i interact, . wait, q quit")
			fmt.Print("> ")
			continue
		}

		res := game.ProcessCommand(action, dir)
		if res.Msg != "" {
			fmt.Println(res.Msg)
		}
		for _, ev := range res.Events {
			fmt.Printf("[%s] %s %s\n", ev.Type, ev.Source, ev.Message)
		}
		render(game)
		if res.Outcome != nil {
			if res.Outcome.Win {
				fmt.Println("Level complete!")
			} else {
				fmt.Println("Level failed.")
			}
			break
		}
		fmt.Print("> ")
	}

	logger.Log.Info("Done.")
}

func loadGame(path string) (*engine.Game, error) {
	lvl, err := leveldata.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return engine.NewGame(lvl)
}

func applyLogging(cfg engine.LoggingConfig) {
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		logger.Log.SetLevel(level)
	}
	if strings.EqualFold(cfg.Format, "json") {
		logger.Log.SetFormatter(&logrus.JSONFormatter{})
	}
}

func parseInput(line string) (engine.Action, domain.Facing, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return engine.ActionUnknown, 0, true
	case "n", "k":
		return engine.ActionMove, domain.FacingNorth, false
	case "s", "j":
		return engine.ActionMove, domain.FacingSouth, false
	case "e", "l":
		return engine.ActionMove, domain.FacingEast, false
	case "w", "h":
		return engine.ActionMove, domain.FacingWest, false
	case "i":
		return engine.ActionInteract, 0, false
	case ".", "", "wait":
		return engine.ActionWait, 0, false
	}
	return engine.ActionUnknown, 0, false
}

// render печатает ASCII-снимок уровня: стены, сущности, игрок
func render(g *engine.Game) {
	lvl := g.Level
	rows := make([][]byte, lvl.Height)
	for y := 0; y < lvl.Height; y++ {
		rows[y] = make([]byte, lvl.Width)
		for x := 0; x < lvl.Width; x++ {
			tile := lvl.TileAt(domain.Point{X: x, Y: y})
			if tile == nil || tile.BlocksMovement {
				rows[y][x] = '#'
			} else {
				rows[y][x] = '.'
			}
		}
	}
	for _, e := range lvl.Entities {
		if !lvl.InBounds(e.MapPos) {
			continue
		}
		rows[e.MapPos.Y][e.MapPos.X] = glyph(e)
	}
	for _, row := range rows {
		fmt.Println(string(row))
	}
	fmt.Printf("turn %d, facing %s\n", g.Turns, g.Player.Facing)
}

func glyph(e *domain.Entity) byte {
	switch e.Kind {
	case domain.KindPlayer:
		return '@'
	case domain.KindGuard:
		return 'G'
	case domain.KindDoor:
		if e.Door.Open {
			return '\''
		}
		return '+'
	case domain.KindButton:
		return 'B'
	case domain.KindLevelGoal:
		return '$'
	case domain.KindPlayerStart:
		return 'x'
	}
	return '?'
}
