// Package gui runs a game session in an ebiten window. The world is drawn at
// its logical resolution and ebiten letterboxes it into whatever size the
// window has.
package gui

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Session is what the window drives. *flappy.Game satisfies it.
type Session interface {
	Title() string
	Activate()
	Tick(dt float64) core.StepResult
	State() core.GameState
	Snapshot() flappy.Snapshot
}

// Options configure the window. Zero values are usable.
type Options struct {
	Sound    core.EventSink // Nil plays nothing
	Logger   *log.Logger    // Nil logs nothing
	Assets   *assets.Loader // Nil draws placeholders only
	Scale    float64        // Initial window size as a multiple of the world, defaults to 1
	TPS      int            // Updates per second, defaults to 60
	MaxDelta float64        // Clamp ceiling for one update, defaults to core.DefaultMaxDelta
}

// Keys that flap.
var flapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyEnter}

// Window implements ebiten.Game for one session.
type Window struct {
	ctx     context.Context
	session Session
	world   config.WorldConfig
	opts    Options
	clock   *core.FrameClock
	sprites *spriteSet
	touches []ebiten.TouchID
	state   core.GameState
}

// NewWindow prepares a window and starts loading its sprites in the background.
func NewWindow(ctx context.Context, session Session, opts Options) *Window {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.MaxDelta <= 0 {
		opts.MaxDelta = core.DefaultMaxDelta
	}
	snap := session.Snapshot()
	if opts.Assets != nil {
		opts.Assets.Start(ctx, spriteNames(snap.Parallax)...)
	}

	return &Window{
		ctx:     ctx,
		session: session,
		world:   snap.World,
		opts:    opts,
		clock:   core.NewFrameClock(opts.MaxDelta),
		sprites: newSpriteSet(),
		state:   session.State(),
	}
}

// Update applies this update's activations and advances the session by one
// fixed step. It ends the run loop once the context is cancelled.
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}

	for i := w.activations(); i > 0; i-- {
		w.session.Activate()
	}

	result := w.session.Tick(w.clock.Clamp(1 / float64(w.opts.TPS)))
	w.state = result.State
	w.dispatch(result.Events)
	return nil
}

// activations counts the discrete presses that started during this update.
func (w *Window) activations() int {
	n := 0
	for _, k := range flapKeys {
		if inpututil.IsKeyJustPressed(k) {
			n++
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		n++
	}
	w.touches = inpututil.AppendJustPressedTouchIDs(w.touches[:0])
	return n + len(w.touches)
}

func (w *Window) dispatch(events []core.Event) {
	if len(events) == 0 {
		return
	}
	if w.opts.Sound != nil {
		w.opts.Sound.HandleEvents(events)
	}
	if w.opts.Logger == nil {
		return
	}
	for _, e := range events {
		switch e.Kind {
		case core.EventFlap, core.EventScore:
		default:
			w.opts.Logger.Debug("game event", "event", e.Kind, "value", e.Value)
		}
	}
}

// Draw renders the latest snapshot, with sprites once the batch has resolved.
func (w *Window) Draw(screen *ebiten.Image) {
	w.sprites.resolve(w.opts.Assets)
	drawScene(screen, w.session.Snapshot(), w.sprites, w.session.Title())
}

// Layout fixes the logical screen to the world size.
func (w *Window) Layout(_, _ int) (int, int) {
	return logicalSize(w.world)
}

// State returns the game state after the most recent update.
func (w *Window) State() core.GameState {
	return w.state
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, session Session, opts Options) (core.GameState, error) {
	w := NewWindow(ctx, session, opts)

	width, height := logicalSize(w.world)
	ebiten.SetWindowSize(int(float64(width)*w.opts.Scale), int(float64(height)*w.opts.Scale))
	ebiten.SetWindowTitle(session.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.TPS)

	if err := ebiten.RunGame(w); err != nil {
		return w.State(), err
	}
	return w.State(), nil
}
