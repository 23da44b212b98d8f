package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mwhite/tictactoe-ui/internal/config"
	"github.com/mwhite/tictactoe-ui/internal/game"
	"github.com/mwhite/tictactoe-ui/internal/game/events"
	"github.com/mwhite/tictactoe-ui/internal/game/events/subscribers"
	"github.com/mwhite/tictactoe-ui/internal/ui"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", *logLevel).Msg("Invalid log level")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
	if cfg.Logging.Format == "console" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Event bus with a structured-log subscriber
	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel))

	ctrl := game.NewController(logger, bus)
	uiGame := ui.New(ctrl)

	// Live palette/layout tweaks while the window is open
	config.WatchConfig(func() {
		ui.ApplyPalette(config.Get())
	})

	ebiten.SetWindowSize(cfg.UI.Window.Width, cfg.UI.Window.Height)
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil {
		log.Fatal().Err(err).Msg("UI loop exited")
	}
}
