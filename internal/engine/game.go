package engine

import (
	"fmt"

	"github.com/OdatNurd/ChronoSneak-sub000/internal/domain"
	"github.com/OdatNurd/ChronoSneak-sub000/internal/systems"
	"github.com/OdatNurd/ChronoSneak-sub000/pkg/logger"
)

// Game - одна игровая сессия поверх загруженного уровня. Внешний слой
// ввода разрешает сырые события в move/interact/wait и зовет
// ProcessCommand; каждое состоявшееся действие продвигает симуляцию
// ровно на один ход.
type Game struct {
	Level  *domain.Level
	Player *domain.Entity

	// Turns - сколько ходов уже разрешено
	Turns int
}

// Result - итог обработки одной команды
type Result struct {
	// Acted: действие состоялось и мир сделал ход
	Acted   bool
	Msg     string
	Events  []domain.Event
	Outcome *domain.Outcome
}

// NewGame создает сессию: игрок ставится на маркер старта уровня
func NewGame(lvl *domain.Level) (*Game, error) {
	start := lvl.PlayerStart()
	if start == nil {
		// NewLevel это гарантирует; проверка на случай рукотворного уровня
		return nil, fmt.Errorf("level %q has no player start marker", lvl.Name)
	}

	player := lvl.Player()
	if player == nil {
		var err error
		player, err = domain.NewEntity(domain.KindPlayer, start.MapPos,
			domain.Properties{"id": "player", "facing": int(start.Facing)}, lvl.TileSize)
		if err != nil {
			return nil, err
		}
		if err := lvl.AddEntity(player); err != nil {
			return nil, err
		}
	}

	logger.WithComponent("game").
		WithField("level", lvl.Name).
		WithField("start", start.MapPos).
		Info("Game session started")

	return &Game{Level: lvl, Player: player}, nil
}

// ProcessCommand - главный метод обработки ввода. dir имеет смысл
// только для ActionMove.
func (g *Game) ProcessCommand(action Action, dir domain.Facing) Result {
	res := Result{}

	switch action {
	case ActionMove:
		res = g.handleMove(dir)
	case ActionInteract:
		res = g.handleInteract()
	case ActionWait:
		res = Result{Acted: true, Msg: "You wait."}
	default:
		return Result{Msg: "Unknown command."}
	}

	// Если игрок что-то сделал, мир делает ход
	if res.Acted {
		g.Level.StepAllEntities()
		g.Turns++
		g.checkSpotted()
	}

	res.Events = g.Level.DrainEvents()
	res.Outcome = g.Level.Outcome
	return res
}

// handleMove поворачивает игрока и пытается шагнуть. Слой ввода обязан
// проверять блокировку перед фиксацией позиции - здесь это и делается.
func (g *Game) handleMove(dir domain.Facing) Result {
	if !dir.Valid() {
		return Result{Msg: "Invalid direction."}
	}

	// Поворот бесплатный: смена направления без шага ход не тратит
	g.Player.Facing = dir

	dest := g.Player.MapPos.Translate(dir.Delta())
	if g.Level.IsBlockedAt(dest) {
		logger.WithComponent("game").WithField("dest", dest).Debug("Player move blocked")
		return Result{Msg: "The way is blocked."}
	}

	g.Player.SetMapPos(dest, g.Level.TileSize)

	// Проходимые маркеры цели срабатывают от наступания
	for _, e := range g.Level.EntitiesAtMap(dest) {
		if e.Kind == domain.KindLevelGoal {
			e.Trigger(g.Level, g.Player)
		}
	}

	return Result{Acted: true}
}

// handleInteract активирует сущности в клетке, на которую смотрит игрок
func (g *Game) handleInteract() Result {
	faced := g.Player.MapPos.Translate(g.Player.Facing.Delta())

	targets := g.Level.EntitiesAtMap(faced)
	triggered := 0
	for _, e := range targets {
		if e == g.Player {
			continue
		}
		e.Trigger(g.Level, g.Player)
		triggered++
	}

	if triggered == 0 {
		return Result{Msg: "There is nothing to interact with."}
	}
	return Result{Acted: true}
}

// checkSpotted публикует событие для каждого охранника, в чьем конусе
// зрения оказался центр игрока. Наблюдаемость, не геймплейная мутация.
func (g *Game) checkSpotted() {
	half := g.Level.TileSize / 2
	center := g.Player.WorldPos.TranslateXY(half, half)

	for _, guard := range g.Level.Guards() {
		if systems.ConeContains(guard.Guard.Cone, center) {
			logger.WithComponent("game").
				WithField("guard_id", guard.ID).
				Warn("Player spotted by guard")
			g.Level.PushEvent(domain.Event{
				Type:    domain.EventPlayerSpotted,
				Source:  guard.ID,
				Message: "player in vision cone",
			})
		}
	}
}
