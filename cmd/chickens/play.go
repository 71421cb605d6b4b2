package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/entity"
	"github.com/vovakirdan/chicken-invaders/internal/game"
	"github.com/vovakirdan/chicken-invaders/internal/hud"
	tcellfront "github.com/vovakirdan/chicken-invaders/internal/platform/term"
	"github.com/vovakirdan/chicken-invaders/internal/platform/tui"
	"github.com/vovakirdan/chicken-invaders/internal/registry"
	"github.com/vovakirdan/chicken-invaders/internal/render"
	"github.com/vovakirdan/chicken-invaders/internal/session"
	"github.com/vovakirdan/chicken-invaders/internal/sfx"
	"github.com/vovakirdan/chicken-invaders/internal/storage"
)

const (
	frontendTea   = "tea"
	frontendTcell = "tcell"

	soundVolume = 0.3
)

var flagScores = true

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the main menu.

Controls:
  W/A/S/D, arrows  - Move the ship, choose in menus
  Enter            - Select
  N / R / M        - Next level, replay, menu (after a level)
  Ctrl+S           - Save a text screenshot (tea frontend)
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, weaker boss, slower eggs
  normal - The standard game
  hard   - Fewer lives, tougher boss, faster eggs

Examples:
  chickens play
  chickens play --difficulty easy
  chickens play --frontend tcell
  chickens play --config ./my-chickens.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagScores, "scores", true, "Show this session's results after quitting")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFrontend != frontendTea && flagFrontend != frontendTcell {
		return fmt.Errorf("unknown frontend %q (want %s or %s)", flagFrontend, frontendTea, frontendTcell)
	}

	for _, id := range game.DefaultLevels {
		if !registry.Exists(id) {
			return fmt.Errorf("level %q is not registered", id)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
		if w < cfg.Columns() || h < cfg.Rows() {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n", w, h, cfg.Columns(), cfg.Rows())
		}
	}

	store, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer store.Close()

	sound := newSound(logger)
	defer func() {
		if sp, ok := sound.(*sfx.Speaker); ok {
			sp.Close()
		}
	}()

	canvas := render.NewCanvas(cfg.Screen.Width, cfg.Screen.Height, cfg.Render.CellWidth, cfg.Render.CellHeight)
	keys := core.NewKeyBuffer(0)
	env := registry.Env{
		Config:   cfg,
		Entities: entity.NewManager(canvas),
		Session:  session.New(cfg.Scoring.Lives),
		HUD:      hud.New(canvas, cfg.Screen.Width, cfg.Screen.Margin),
		Clock:    core.RealClock{},
		Sound:    sound,
		Logger:   logger,
	}
	machine := game.New(env, keys, game.WithResults(store))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Info("starting", "frontend", flagFrontend, "difficulty", flagDifficulty, "fps", rc.TickRate)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		err := machine.Run(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		defer cancel()
		if flagFrontend == frontendTcell {
			return tcellfront.Run(ctx, canvas, keys, rc.TickRate)
		}
		return tui.Run(ctx, canvas, keys, rc.TickRate)
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	if run, err := store.RunResults(context.Background(), env.Session.ID.String()); err == nil {
		logger.Info("quit", "best", env.Session.Best, "levels_this_run", len(run))
	}

	if !flagScores {
		return nil
	}
	if machine.LastResult() == nil {
		return nil
	}
	return tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
}

// newLogger builds the logger. Without --log-file logs are discarded, since
// the terminal belongs to the game.
func newLogger() (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "chickens",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// newSound opens the speaker when --sound is set. Audio failures only
// silence the game.
func newSound(logger *log.Logger) sfx.Player {
	if !flagSound {
		return sfx.Silent{}
	}
	sp := sfx.NewSpeaker(soundVolume)
	if err := sp.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		return sfx.Silent{}
	}
	return sp
}
