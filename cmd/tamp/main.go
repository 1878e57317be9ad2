package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/Alexander-D-Karpov/tamp/internal/audio"
	"github.com/Alexander-D-Karpov/tamp/internal/config"
	"github.com/Alexander-D-Karpov/tamp/internal/player"
	"github.com/Alexander-D-Karpov/tamp/internal/ui"
	"github.com/Alexander-D-Karpov/tamp/internal/ui/themes"
)

var Version = "dev"

var errUsage = errors.New("usage: tamp [--config FILE] [--debug] <audio-file>")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tamp: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("tamp", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	configPath := flags.StringP("config", "c", "", "Path to configuration file")
	debug := flags.BoolP("debug", "d", false, "Enable debug logging to the log file")
	showVersion := flags.BoolP("version", "v", false, "Print version and exit")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w (%v)", errUsage, err)
	}
	if *showVersion {
		fmt.Println("tamp", Version)
		return nil
	}
	if flags.NArg() != 1 {
		return errUsage
	}
	path := flags.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *debug {
		cfg.Debug = true
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Debug {
		log.Printf("[MAIN] Configuration loaded successfully")
		log.Printf("[MAIN] - Audio backend: %s", cfg.Audio.Backend)
		log.Printf("[MAIN] - Sample rate: %d Hz, buffer %d ms", cfg.Audio.SampleRate, cfg.Audio.BufferMs)
		log.Printf("[MAIN] - Default volume: %.1f", cfg.Audio.DefaultVolume)
		log.Printf("[MAIN] - Theme: %s", cfg.UI.Theme)
	}

	track, err := audio.ReadTrack(path)
	if err != nil {
		return err
	}
	if !audio.Supported(path) {
		return fmt.Errorf("%w: %s", audio.ErrUnsupportedFormat, filepath.Base(path))
	}

	sink, err := audio.NewSink(cfg)
	if err != nil {
		return fmt.Errorf("audio device unavailable: %w", err)
	}
	defer sink.Close()

	term := ui.NewTerminal(os.Stdin, os.Stdout, cfg.Debug)
	if err := term.EnterRaw(); err != nil {
		return err
	}
	defer term.Restore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := player.NewApp(track, sink, audio.NewFileDecoder(cfg.Debug), cfg.Debug)
	screen := ui.NewScreen(term, themes.NewTheme(cfg.UI.Theme), cfg.Debug)

	if cfg.Debug {
		log.Printf("[MAIN] Starting control loop for %s", track.Path)
	}
	if err := app.Run(ctx, ui.ReadKeys(os.Stdin), screen.Render); err != nil {
		return err
	}

	if cfg.Debug {
		log.Printf("[MAIN] Clean shutdown")
	}
	return nil
}

// setupLogging sends the standard logger to the configured file in debug mode
// and discards it otherwise; stderr belongs to the raw-mode screen.
func setupLogging(cfg *config.Config) (func(), error) {
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[MAIN] Debug mode enabled")

	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}
