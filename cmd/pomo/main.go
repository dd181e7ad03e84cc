// pomo — a terminal countdown timer.
//
// Usage:
//
//	pomo [-verbose] [-quiet] [-mute] [-config path] [-log-file path] <seconds>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/joho/godotenv"

	"github.com/hammamikhairi/pomo/internal/clock"
	"github.com/hammamikhairi/pomo/internal/display"
	"github.com/hammamikhairi/pomo/internal/domain"
	"github.com/hammamikhairi/pomo/internal/logger"
	"github.com/hammamikhairi/pomo/internal/sound"
	"github.com/hammamikhairi/pomo/internal/timer"
)

// Build variables - set by ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "config file (default is $HOME/.config/pomo/config.yml)")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	mute := flag.Bool("mute", false, "do not play the alert sound")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("pomo %s (%s)\n", version, commit)
		return
	}

	d, err := parseSeconds(flag.Args())
	if err != nil {
		if errors.Is(err, domain.ErrMissingDuration) {
			fmt.Fprintln(os.Stderr, "Provide timer duration in seconds!")
			flag.Usage()
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		cfg.LogLevel = logger.LevelVerbose.String()
	}
	if *quiet {
		cfg.LogLevel = logger.LevelOff.String()
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *mute {
		cfg.Mute = true
	}

	if err := run(cfg, d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] <seconds>\n\n", os.Args[0])
	fmt.Fprintf(out, "Counts down <seconds> (0 means %s) and beeps when done.\n", timer.DefaultDuration)
	fmt.Fprintf(out, "Keys: space pause/resume, r reset, q quit.\n\nFlags:\n")
	flag.PrintDefaults()
}

func run(cfg appConfig, d time.Duration) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return domain.ErrNotATerminal
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	// Logs go to a file by default so the countdown display stays clean.
	logOut, closeLog, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (logging disabled)\n", err)
		logOut, closeLog, level = io.Discard, func() error { return nil }, logger.LevelOff
	}
	defer closeLog()

	// Route the standard log package (used by the audio backend) to the
	// same place so it never writes over the display.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(level, logOut)
	if cfg.ConfigPath != "" {
		log.Debug("config: %s", cfg.ConfigPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	var sink domain.AlertSink
	if cfg.Mute {
		sink = sound.NewSilent(log)
	} else {
		sink = sound.NewBeeper(log)
	}
	defer sink.Stop()

	clk := clock.System{}
	countdown := timer.New(d, clk.Now(), timer.WithDefaultDuration(cfg.DefaultDuration))
	trigger := timer.NewTrigger(sink, log)

	model := display.NewModel(countdown, trigger, clk, log,
		display.WithTickInterval(cfg.TickInterval),
	)

	// Bubble Tea owns the terminal and blocks until quit.
	if err := display.Run(ctx, model); err != nil {
		log.Error("display: %v", err)
		return err
	}
	return nil
}
