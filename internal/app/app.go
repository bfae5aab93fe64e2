package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/sacrifice/internal/audio"
	"github.com/diegok/sacrifice/internal/config"
	"github.com/diegok/sacrifice/internal/ui"
)

// App runs a match in the terminal
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	input    *ui.InputCollector
	session  *Session

	quit    chan struct{}
	stop    func()
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	quit := make(chan struct{})
	return &App{
		cfg:  cfg,
		quit: quit,
		stop: sync.OnceFunc(func() { close(quit) }),
	}
}

// Run initializes logging, sound and the screen, then plays until the user
// quits or a signal arrives.
func (a *App) Run() error {
	logger, closer, err := NewLogger(a.cfg.Debug, a.cfg.LogFile)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	a.log = logger

	bindings, err := a.cfg.Keys.Bindings()
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	// The game works without sound
	var sound = audio.Play
	if a.cfg.Mute {
		sound = nil
	} else if err := audio.Init(); err != nil {
		a.log.Warn("audio unavailable", "error", err)
		sound = nil
	}

	screen, err := ui.InitScreen()
	if err != nil {
		audio.Close()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, a.cfg.Keys)
	a.input = ui.NewInputCollector(bindings)
	a.session = NewSession(a.cfg, a.log, sound)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-a.sigChan:
			a.log.Info("signal received", "signal", sig.String())
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// mainLoop polls the terminal on a goroutine and ticks the session on a
// fixed-rate ticker with the measured frame time.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	last := time.Now()
	a.renderer.RenderMatch(a.session.Snapshot())

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			a.handleEvent(ev)

		case now := <-ticker.C:
			res := a.session.Advance(a.input.Snapshot(now), now.Sub(last))
			last = now
			if res.Quit {
				a.stop()
				return nil
			}
			a.renderer.RenderMatch(a.session.Snapshot())
		}
	}
}

// handleEvent feeds key presses to the input collector
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.input.PressEvent(ev)

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.RenderMatch(a.session.Snapshot())
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
