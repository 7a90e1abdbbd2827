package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
	"github.com/iburimskiy/crosshair-overlay/internal/cue"
	"github.com/iburimskiy/crosshair-overlay/internal/game"
	"github.com/iburimskiy/crosshair-overlay/internal/globalkey"
	"github.com/iburimskiy/crosshair-overlay/internal/panel"
	"github.com/iburimskiy/crosshair-overlay/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "crosshair: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path, err := store.DefaultPath()
	if err != nil {
		return err
	}
	st := store.New(path)

	// the panel owns the terminal, so log lines go to a file beside the config
	closeLog := redirectLog(filepath.Join(filepath.Dir(path), config.LogFileName))
	defer closeLog()

	shared := crosshair.NewShared(crosshair.Defaults())
	dialogs := panel.Zenity{}
	if cfg, err := st.Load(shared.Snapshot()); err != nil {
		log.Printf("load %s: %v", path, err)
		dialogs.Error(fmt.Sprintf("Unable to load config file: %v", err))
	} else {
		shared.Replace(cfg)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	cues := cue.NewPlayer()
	defer cues.Close()

	overlay := game.NewOverlay(shared)
	settings := panel.New(screen, shared, panel.Deps{
		Store:   st,
		Dialogs: dialogs,
		Overlay: overlay,
		Cues:    cues,
	})

	ctx, cancel := context.WithCancel(context.Background())

	// the grab swallows the key everywhere, including the panel terminal, so
	// each press toggles once
	if hk, err := globalkey.Register(); err != nil {
		log.Printf("global hotkey unavailable, %c works in the panel only: %v", config.HideKey, err)
	} else {
		defer hk.Close()
		go hk.Forward(ctx, func() {
			if err := screen.PostEvent(panel.NewHideEvent()); err != nil {
				log.Printf("hotkey: %v", err)
			}
		})
	}

	panelDone := make(chan struct{})
	go func() {
		defer close(panelDone)
		settings.Run(ctx)
		overlay.Quit()
	}()

	log.Printf("started, config %s", path)
	runErr := overlay.Run()

	cancel()
	screen.Fini()
	<-panelDone

	if runErr != nil {
		return fmt.Errorf("overlay: %w", runErr)
	}
	log.Printf("exited")
	return nil
}

func redirectLog(path string) func() {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}
