// Transitwatch — a terminal sidereal clock.
//
// Converts the current UTC instant and an observer longitude into MJD,
// Greenwich and local mean sidereal time, and a countdown to the next
// occurrence of a fixed target sidereal time, redrawn continuously in
// the terminal. Optionally resolves the observer's IANA timezone for
// display and sends a Telegram alert when the target approaches.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ryan-winkler/transitwatch/internal/clockface"
	"github.com/ryan-winkler/transitwatch/internal/config"
	"github.com/ryan-winkler/transitwatch/internal/notify"
	"github.com/ryan-winkler/transitwatch/internal/sidereal"
	"github.com/ryan-winkler/transitwatch/internal/tui"
	"github.com/ryan-winkler/transitwatch/internal/tzlookup"
	"github.com/ryan-winkler/transitwatch/internal/watcher"
)

const version = "0.1.0"

// observerHolder shares the current observer between the display, the
// alert job, and the file watcher that may replace it at any time.
type observerHolder struct {
	mu  sync.RWMutex
	obs sidereal.Observer
}

func (h *observerHolder) get() sidereal.Observer {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.obs
}

func (h *observerHolder) set(obs sidereal.Observer) {
	h.mu.Lock()
	h.obs = obs
	h.mu.Unlock()
}

func main() {
	// --- CLI flags ---
	// Priority: CLI flag > environment variable > default
	var (
		flagLat      = flag.Float64("lat", 91, "Observer latitude, degrees North")
		flagLon      = flag.Float64("lon", 181, "Observer longitude, degrees East")
		flagTarget   = flag.String("target", "", "Target sidereal time, HH:MM:SS (default: 13:30:00)")
		flagRefresh  = flag.Duration("refresh", 0, "Display refresh interval (default: 100ms)")
		flagObserver = flag.String("observer-file", "", "JSON observer file to watch for live reload")
		flagVersion  = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *flagVersion {
		fmt.Println("transitwatch", version)
		return
	}

	cfg := config.Load()

	// Apply CLI flag overrides. The flag defaults sit outside the valid
	// coordinate ranges so "not set" is distinguishable from zero
	// (0,0 is a real place in the Gulf of Guinea).
	if *flagLat >= -90 && *flagLat <= 90 {
		cfg.Latitude = *flagLat
	}
	if *flagLon > -180 && *flagLon <= 180 {
		cfg.Longitude = *flagLon
	}
	if *flagTarget != "" {
		cfg.Target = *flagTarget
	}
	if *flagRefresh > 0 {
		cfg.RefreshInterval = *flagRefresh
	}
	if *flagObserver != "" {
		cfg.ObserverFile = *flagObserver
	}

	// --- Logger setup ---
	// stdout is owned by the TUI, so logs go to stderr; when a log dir
	// is configured they are also teed into a rotating file.
	var logWriter io.Writer = os.Stderr
	if cfg.LogDir != "" {
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, "transitwatch.log"),
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		logWriter = io.MultiWriter(os.Stderr, rotator)
	}

	var logger *slog.Logger
	if cfg.LogFormat == "json" {
		logger = slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: slog.LevelInfo}))
	} else {
		logger = slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	target, err := clockface.Parse(cfg.Target)
	if err != nil {
		logger.Error("invalid target sidereal time", "target", cfg.Target, "error", err)
		os.Exit(1)
	}

	holder := &observerHolder{}
	holder.set(sidereal.Observer{
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Target:    target,
	})

	// The observer file, when present, wins over flags and env.
	if cfg.ObserverFile != "" {
		obs, err := watcher.LoadFile(cfg.ObserverFile, target)
		if err != nil {
			logger.Error("invalid observer file", "file", cfg.ObserverFile, "error", err)
			os.Exit(1)
		}
		holder.set(obs)
	}

	// Timezone annotation is cosmetic: a failed dataset load just means
	// the display omits the zone line.
	var zones tui.ZoneResolver
	if r, err := tzlookup.New(); err != nil {
		logger.Warn("timezone lookup unavailable", "error", err)
	} else {
		zones = r
	}

	obs := holder.get()
	logger.Info("starting",
		"version", version,
		"lat", obs.Latitude, "lon", obs.Longitude,
		"target", obs.Target.String(),
		"refresh", cfg.RefreshInterval)

	program := tui.NewProgram(tui.NewModel(obs, zones, cfg.RefreshInterval))

	if cfg.ObserverFile != "" {
		w := watcher.New(cfg.ObserverFile, target, logger, func(obs sidereal.Observer) {
			holder.set(obs)
			program.Send(tui.ObserverMsg(obs))
		})
		if err := w.Start(); err != nil {
			logger.Error("observer watcher failed to start", "error", err)
			os.Exit(1)
		}
		defer w.Stop()
	}

	if cfg.AlertsEnabled() {
		sender, err := notify.NewTelegramSender(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			// Alerting is an add-on: a bad token should not take the
			// clock down.
			logger.Error("telegram setup failed, alerts disabled", "error", err)
		} else {
			n := notify.New(sender, cfg.AlertWindow, logger, holder.get)
			if err := n.Start(); err != nil {
				logger.Error("alert job failed to start", "error", err)
			} else {
				defer n.Stop()
			}
		}
	}

	if _, err := program.Run(); err != nil {
		logger.Error("display error", "error", err)
		os.Exit(1)
	}
}
