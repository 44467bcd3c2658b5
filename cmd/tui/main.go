// cmd/tui/main.go
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"go-reverse-td/internal/app"
	"go-reverse-td/internal/audio"
	"go-reverse-td/internal/defs"
	"go-reverse-td/internal/storage"
	"go-reverse-td/internal/tui"
)

func main() {
	defsPath := flag.String("defs", "", "path to a definitions JSON file (built-in library if empty)")
	difficulty := flag.String("difficulty", "", "difficulty to start with (remembered choice if empty)")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write logs to this file (discarded if empty)")
	flag.Parse()

	// Лог в терминал сломает экран.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	lib := defs.Default()
	if *defsPath != "" {
		var err error
		if lib, err = defs.LoadLibrary(*defsPath); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to load definitions: %v", err)
		}
	}

	opts := []app.Option{}
	if path, err := storage.DefaultPath(); err == nil {
		opts = append(opts, app.WithStore(storage.NewFileStore(path)))
	}
	game := app.NewGame(lib, opts...)
	if *difficulty != "" {
		game.SelectDifficulty(*difficulty)
	}

	var sounds *audio.SoundManager
	if !*mute {
		sounds = audio.NewSoundManager(0.5)
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		}
		defer sounds.Cleanup()
		game.EventDispatcher.SubscribeAll(sounds)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	tui.New(screen, game, sounds).Run()
}
