// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-reverse-td/internal/app"
	"go-reverse-td/internal/audio"
	"go-reverse-td/internal/config"
	"go-reverse-td/internal/defs"
	"go-reverse-td/internal/state"
	"go-reverse-td/internal/storage"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := app.ClampDelta(now.Sub(a.lastUpdateTime).Seconds())
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "path to a definitions JSON file (built-in library if empty)")
	showMenu := flag.Bool("menu", false, "start from the difficulty menu")
	mute := flag.Bool("mute", false, "start with sound muted")
	flag.Parse()

	lib := defs.Default()
	if *defsPath != "" {
		var err error
		if lib, err = defs.LoadLibrary(*defsPath); err != nil {
			log.Fatalf("Failed to load definitions: %v", err)
		}
	}

	opts := []app.Option{}
	if path, err := storage.DefaultPath(); err != nil {
		log.Printf("No config dir, difficulty will not be remembered: %v", err)
	} else {
		opts = append(opts, app.WithStore(storage.NewFileStore(path)))
	}
	game := app.NewGame(lib, opts...)

	sounds := audio.NewSoundManager(0.6)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	defer sounds.Cleanup()
	if *mute {
		sounds.ToggleMute()
	}
	game.EventDispatcher.SubscribeAll(sounds)

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, game, sounds)
	if *showMenu {
		sm.SetState(state.NewMenuState(sm, game, gameState))
	} else {
		sm.SetState(gameState)
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Reverse Tower Defense")
	if err := ebiten.RunGame(appGame); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
