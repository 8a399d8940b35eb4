package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saltlinegames/deepcast/internal/catalog"
	"github.com/saltlinegames/deepcast/internal/config"
	"github.com/saltlinegames/deepcast/internal/database"
	"github.com/saltlinegames/deepcast/internal/game"
	"github.com/saltlinegames/deepcast/internal/gametime"
	"github.com/saltlinegames/deepcast/internal/logger"
	"github.com/saltlinegames/deepcast/internal/player"
	"github.com/saltlinegames/deepcast/internal/rng"
	"github.com/saltlinegames/deepcast/internal/shop"
	"github.com/saltlinegames/deepcast/internal/ui"
)

func main() {
	fishFile := flag.String("fish", "data/fish.yaml", "Path to fish catalog YAML file")
	shopFile := flag.String("shop", "data/shop.yaml", "Path to shop catalog YAML file")
	gameFile := flag.String("config", "data/game.yaml", "Path to game config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	dbFile := flag.String("db", "data/deepcast.db", "Path to save database file")
	seed := flag.Int64("seed", 0, "RNG seed (default: random based on current time)")
	noSave := flag.Bool("nosave", false, "Run without persistence (progress is lost on exit)")
	flag.Parse()

	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	logger.Info("Starting Deepcast")

	gameSeed := *seed
	if gameSeed == 0 {
		gameSeed = time.Now().UnixNano()
		logger.Info("Seed selected", "seed", gameSeed, "random", true)
	} else {
		logger.Info("Seed selected", "seed", gameSeed, "random", false)
	}
	r := rng.New(gameSeed)

	cfg, err := config.LoadConfig(*gameFile)
	if err != nil {
		logger.Warning("Failed to load game config, using defaults", "path", *gameFile, "error", err)
		cfg = config.DefaultConfig()
	}

	cat, err := catalog.LoadFromYAML(*fishFile)
	if err != nil {
		log.Fatalf("Failed to load fish catalog: %v", err)
	}
	logger.Info("Fish catalog loaded", "zones", cat.ZoneCount())

	shopCat, err := shop.LoadFromYAML(*shopFile)
	if err != nil {
		logger.Warning("Failed to load shop catalog, using defaults", "path", *shopFile, "error", err)
		shopCat = shop.DefaultCatalog()
	}

	var store *database.Store
	if !*noSave {
		store, err = database.Open(*dbFile)
		if err != nil {
			log.Fatalf("Failed to open save database: %v", err)
		}
		defer store.Close()
		logger.Info("Save database initialized", "path", *dbFile)
	} else {
		logger.Info("Running without persistence")
	}

	state, clock := loadOrNewGame(store, cfg)

	var saver game.Saver
	if store != nil {
		saver = store
	}
	session, err := game.NewSession(cfg, cat, shopCat, state, clock, r, saver)
	if err != nil {
		log.Fatalf("Failed to create game session: %v", err)
	}

	console := ui.NewConsole(os.Stdin, os.Stdout)
	defer console.Close()
	session.Announce = func(msg string) { console.Println(msg) }

	// Save on Ctrl+C so an interrupted run still keeps its progress.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Interrupt received, saving and exiting")
		if store != nil {
			if err := store.SaveSnapshot(session.State(), session.Clock()); err != nil {
				logger.Error("Final save failed", "error", err)
			}
		}
		os.Exit(0)
	}()

	console.Println(ui.Banner)
	runLoop(session, console)

	if store != nil {
		if err := store.SaveSnapshot(session.State(), session.Clock()); err != nil {
			logger.Error("Final save failed", "error", err)
		}
	}
	logger.Info("Deepcast stopped")
}

// loadOrNewGame restores the snapshot if one exists, otherwise starts a
// fresh game.
func loadOrNewGame(store *database.Store, cfg *config.GameConfig) (*player.State, *gametime.Clock) {
	if store != nil {
		state, clock, err := store.LoadSnapshot()
		if err != nil {
			logger.Warning("Failed to load saved game, starting fresh", "error", err)
		} else if state != nil {
			logger.Info("Saved game loaded", "level", state.Level, "zone", state.CurrentZone)
			return state, clock
		}
	}
	logger.Info("Starting new game")
	return player.NewState(cfg.Player.StartZone, cfg.Player.StartCurrency), gametime.NewClock()
}
