package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/plus3/entree/ecs"
	"github.com/plus3/entree/ecs/debugui"
	debugui_ebiten "github.com/plus3/entree/ecs/debugui/ebiten"
	"github.com/plus3/entree/game/pong"
)

const tickRate = 1.0 / 60.0

type Game struct {
	World           *ecs.Entity
	Scheduler       *ecs.Scheduler
	RenderScheduler *ecs.Scheduler
	RenderSystem    *RenderSystem
	ImguiBackend    *debugui_ebiten.ImguiBackend
	Width, Height   int
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger = logger.Level(cfg.Level())

	game, err := newGame(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("building world")
	}

	if game.ImguiBackend == nil {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle("Pong")
	}

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal().Err(err).Msg("game stopped")
	}
}

func newGame(cfg Config, logger zerolog.Logger) (*Game, error) {
	registry := pong.NewRegistry()
	ecs.LogRegistry(&logger, registry, zerolog.DebugLevel)

	world, err := pong.NewWorld(cfg.World())
	if err != nil {
		return nil, err
	}
	logger.Info().Object("tree", ecs.CollectStats(world)).Msg("world built")

	query := ecs.NewQuery(world, ecs.WithLogger(logger))

	scheduler := ecs.NewScheduler(query, ecs.WithSchedulerLogger(logger))
	scheduler.Register(&pong.MoveBallSystem{})
	scheduler.Register(&pong.CollisionSystem{Logger: logger.With().Str("system", "collision").Logger()})

	renderSystem := &RenderSystem{}
	renderScheduler := ecs.NewScheduler(query, ecs.WithSchedulerLogger(logger))
	renderScheduler.Register(renderSystem)

	game := &Game{
		World:           world,
		Scheduler:       scheduler,
		RenderScheduler: renderScheduler,
		RenderSystem:    renderSystem,
		Width:           cfg.Width,
		Height:          cfg.Height,
	}

	if cfg.DebugUI {
		game.ImguiBackend = debugui_ebiten.NewImguiBackend("Pong", cfg.Width, cfg.Height)
		scheduler.Register(debugui.NewDebugUI(registry, scheduler))
	}
	return game, nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.ImguiBackend != nil {
		return g.ImguiBackend.Tick(g.Scheduler, tickRate)
	}
	return g.Scheduler.Once(tickRate)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Screen = screen
	// Render errors are logged by the scheduler; a missed frame is not fatal.
	_ = g.RenderScheduler.Once(0)

	if g.ImguiBackend != nil {
		g.ImguiBackend.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.ImguiBackend != nil {
		g.ImguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return g.Width, g.Height
}
