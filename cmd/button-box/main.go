package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"button-box/internal/core"
	"button-box/internal/hardware"
	"button-box/internal/logger"
	"button-box/internal/messaging"
)

func main() {
	cfg := core.DefaultConfig()

	var (
		logLevel  string
		chipName  string
		hidgPath  string
		redisAddr string
	)
	flag.StringVar(&logLevel, "log", "3", "Service log level (0=NONE, 1=ERROR, 2=WARN, 3=INFO, 4=DEBUG, or a name)")
	flag.StringVar(&chipName, "chip", hardware.DefaultChip, "GPIO chip carrying the button and encoder lines")
	flag.StringVar(&hidgPath, "hidg", hardware.DefaultHidgPath, "USB HID gadget keyboard device")
	flag.StringVar(&redisAddr, "redis", "", "Redis host:port for event publishing (empty disables)")
	flag.DurationVar(&cfg.DebounceInterval, "debounce", cfg.DebounceInterval, "Time a button must hold a new level")
	flag.IntVar(&cfg.DebounceTicks, "debounce-ticks", 0, "Consecutive samples a button must hold a new level (overrides -debounce when > 0)")
	flag.DurationVar(&cfg.SettleDelay, "settle", cfg.SettleDelay, "Wait before the first keyboard report")

	flag.Parse()

	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		log.Fatalf("Bad -log value: %v", err)
	}

	// Create standard logger with appropriate format
	var stdLogger *log.Logger
	if os.Getenv("INVOCATION_ID") != "" {
		// Running under systemd, use minimal format
		stdLogger = log.New(os.Stdout, "", 0)
	} else {
		stdLogger = log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds|log.Lmsgprefix)
	}

	l := logger.NewLogger(stdLogger, level)
	l.Infof("Starting button box...")

	var redis core.MessagingClient
	if redisAddr != "" {
		redis = messaging.NewRedisClient(redisAddr, l.WithTag("redis"))
	}

	io := hardware.NewLinuxHardwareIO(chipName, l.WithTag("hardware"))
	kbd := hardware.NewGadgetKeyboard(hidgPath, l.WithTag("keyboard"))
	system := core.NewBoxSystem(io, kbd, redis, cfg, l.WithTag("core"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := system.Start(ctx); err != nil {
		system.Shutdown()
		if interrupted(err) {
			l.Infof("Interrupted during startup, shutdown complete")
			return
		}
		l.Fatalf("Failed to start system: %v", err)
	}

	if err := system.Run(ctx); err != nil && !interrupted(err) {
		l.Errorf("Poll loop stopped: %v", err)
	}

	l.Infof("Shutting down...")
	system.Shutdown()
	l.Infof("Shutdown complete")
}

// interrupted reports whether err only means a shutdown signal arrived.
func interrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}
