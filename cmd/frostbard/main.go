// Package main is the entry point for the frostbard daemon.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/frostbar-io/frostbar/internal/config"
	"github.com/frostbar-io/frostbar/internal/daemon"
	"github.com/frostbar-io/frostbar/internal/daemon/tray"
	"github.com/frostbar-io/frostbar/internal/models"
	"github.com/frostbar-io/frostbar/internal/shell"
)

func main() {
	foreground := flag.Bool("foreground", false, "Run in foreground (no system tray)")
	dryRun := flag.Bool("dry-run", false, "Run against an in-memory shell (for development)")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// Essential paths must resolve before anything else can run.
	if err := config.EnsureDefaults(); err != nil {
		log.Fatalf("Failed to provision configuration files: %v", err)
	}

	running, info, err := config.IsDaemonRunning()
	if err != nil {
		log.Fatalf("Failed to check daemon status: %v", err)
	}
	if running {
		log.Fatalf("Daemon already running (PID %d)", info.PID)
	}

	sh, err := openShell(*dryRun)
	if err != nil {
		log.Fatalf("Failed to open shell backend: %v", err)
	}

	d, err := daemon.New(sh)
	if err != nil {
		log.Fatalf("Failed to assemble daemon: %v", err)
	}

	if err := config.SaveDaemonInfo(models.NewDaemonInfo(os.Getpid())); err != nil {
		log.Fatalf("Failed to write daemon info: %v", err)
	}

	if *foreground {
		log.Info("Running in foreground mode (no system tray)")
		runForeground(d)
	} else {
		log.Info("Running in background mode (with system tray)")
		runWithTray(d)
	}
}

func openShell(dryRun bool) (shell.Shell, error) {
	if dryRun {
		return shell.NewFake(), nil
	}
	return shell.New()
}

// runForeground runs the daemon without a system tray, blocking on signals.
func runForeground(d *daemon.Daemon) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	quit := make(chan struct{})
	d.OnShutdown(func() { close(quit) })

	if err := d.Start(); err != nil {
		log.Fatalf("Failed to start daemon: %v", err)
	}
	log.Infof("Daemon started (PID %d)", os.Getpid())

	select {
	case sig := <-sigCh:
		log.Infof("Received signal %v, shutting down...", sig)
	case <-quit:
	}

	shutdown(d)
}

// runWithTray runs the daemon with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func runWithTray(d *daemon.Daemon) {
	d.OnShutdown(tray.Quit)

	onStart := func() {
		if err := d.Start(); err != nil {
			log.Errorf("Failed to start daemon: %v", err)
			tray.Quit()
			return
		}
		log.Infof("Daemon started (PID %d)", os.Getpid())

		// Quit the tray on SIGINT/SIGTERM too.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Infof("Received signal %v, shutting down...", sig)
			tray.Quit()
		}()
	}

	onExit := func() {
		shutdown(d)
	}

	// This blocks the main goroutine until tray exits.
	tray.Run(d, onStart, onExit)
}

func shutdown(d *daemon.Daemon) {
	d.Stop()
	if err := config.RemoveDaemonInfo(); err != nil {
		log.Warnf("Failed to remove daemon info: %v", err)
	}
	fmt.Println("Daemon stopped")
}
