package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/high-society/internal/api"
	"github.com/talgya/high-society/internal/config"
	"github.com/talgya/high-society/internal/gametime"
	"github.com/talgya/high-society/internal/persistence"
	"github.com/talgya/high-society/internal/society"
	"github.com/talgya/high-society/internal/wealth"
)

// gameEpoch is where a fresh game's clock starts.
var gameEpoch = time.Date(2001, time.March, 5, 8, 0, 0, 0, time.UTC)

// basicPrestige stands in for the external prestige subsystem.
type basicPrestige struct {
	level int
}

func (p *basicPrestige) Level() int        { return p.level }
func (p *basicPrestige) AwardPoints(n int) { p.level += n }

// slogNotifier routes engine notices to the log. Silent notices (the
// sweep's automatic path) drop to debug level.
type slogNotifier struct{}

func (slogNotifier) Notify(n society.Notice) {
	if n.Silent {
		slog.Debug("notice", "category", n.Category, "message", n.Message)
		return
	}
	slog.Info("notice", "category", n.Category, "message", n.Message)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the simulation loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runSimulation(cfg)
		},
	}
}

func runSimulation(cfg *config.Config) error {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := society.NewGenerator(seed)

	clock := gametime.NewClock(gameEpoch)
	ledger := wealth.NewLedger(cfg.StartWealth)
	engine := society.New(clock, ledger, gen)
	engine.SetPrestige(&basicPrestige{level: 1})
	engine.SetNotifier(slogNotifier{})

	if db.HasState() {
		saved, err := db.LoadState()
		if err != nil {
			return fmt.Errorf("load saved state: %w", err)
		}
		clock.Advance(saved.GameTime.Sub(clock.Now()))
		ledger.SetBalance(saved.Wealth)
		engine.RestoreState(saved.Engine)
		slog.Info("resumed saved game", "game_time", saved.GameTime)
	} else {
		slog.Info("no saved game, starting fresh", "seed", seed)
		if _, err := engine.GenerateNewEvents(cfg.InitialEvents); err != nil {
			slog.Warn("initial event generation", "error", err)
		}
		if err := saveGame(db, engine, ledger, clock); err != nil {
			return fmt.Errorf("initial save: %w", err)
		}
	}

	if cfg.APIPort > 0 {
		apiServer := &api.Server{Engine: engine, Wealth: ledger, Port: cfg.APIPort}
		apiServer.Start()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(cfg.TickSeconds) * time.Second)
	defer ticker.Stop()

	slog.Info("simulation running",
		"hours_per_tick", cfg.HoursPerTick,
		"tick_seconds", cfg.TickSeconds,
	)

	lastSaved := clock.Now()
	for {
		select {
		case <-ticker.C:
			now := clock.Advance(time.Duration(cfg.HoursPerTick) * time.Hour)
			engine.Sweep()

			// Autosave once per game-day.
			if !gametime.SameDay(lastSaved, now) {
				if err := saveGame(db, engine, ledger, clock); err != nil {
					slog.Error("autosave failed", "error", err)
				} else {
					lastSaved = now
				}
			}
		case sig := <-sigCh:
			slog.Info("received signal, shutting down", "signal", sig)
			if err := saveGame(db, engine, ledger, clock); err != nil {
				slog.Error("final save failed", "error", err)
				return err
			}
			fmt.Println("Simulation stopped. Game saved.")
			return nil
		}
	}
}

func saveGame(db *persistence.DB, engine *society.Engine, ledger *wealth.Ledger, clock *gametime.Clock) error {
	return db.SaveState(engine.ExportState(), ledger.Balance(), clock.Now())
}
