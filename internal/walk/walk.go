package walk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/termdog/internal/entity"
	"github.com/samdwyer/termdog/internal/logger"
	"github.com/samdwyer/termdog/internal/sprite"
	"github.com/samdwyer/termdog/internal/telemetry"
	"github.com/samdwyer/termdog/internal/ui"
	"github.com/samdwyer/termdog/internal/world"
)

// Droppings land this far right of the sitting dog, directly below it.
const droppingsOffsetX = 2

// ErrTerminalTooSmall is returned when a walk has no room for the dog.
var ErrTerminalTooSmall = errors.New("terminal too small for a walk")

// Sizer reports terminal dimensions.
type Sizer interface {
	Size() (width, height int)
}

// Result summarises a finished walk.
type Result struct {
	Bounds world.Bounds
	Lane   int // Top row of the sprite
	Frames int
	Pooped bool
}

// Walker drives the animation on one terminal.
type Walker struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	sizer    Sizer
	rng      *rand.Rand
	cfg      Config
	state    State
	sleep    func(context.Context, time.Duration) error
}

// New creates a walker writing to out and sizing walks with sizer.
func New(out io.Writer, sizer Sizer, cfg Config) *Walker {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen := ui.NewScreen(out)
	return &Walker{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		sizer:    sizer,
		rng:      rand.New(rand.NewSource(seed)),
		cfg:      cfg,
		state:    StateIdle,
		sleep:    sleepContext,
	}
}

// State returns what the dog is doing.
func (w *Walker) State() State {
	return w.state
}

// Run walks the dog forever, pausing between walks. Walks skipped for lack
// of room are logged; any other error ends the loop.
func (w *Walker) Run(ctx context.Context) error {
	for n := 1; ; n++ {
		res, err := w.Walk(ctx)
		switch {
		case errors.Is(err, ErrTerminalTooSmall):
			logger.Log.WithFields(logrus.Fields{
				"walk":   n,
				"width":  res.Bounds.Width,
				"height": res.Bounds.Height,
			}).Warn("Skipping walk")
		case err != nil:
			return fmt.Errorf("walk %d: %w", n, err)
		default:
			logger.Log.WithFields(logrus.Fields{
				"walk":   n,
				"lane":   res.Lane,
				"frames": res.Frames,
			}).Debug("Walk finished")
		}

		if err := w.sleep(ctx, w.cfg.WalkInterval); err != nil {
			return err
		}
	}
}

// Walk moves the dog across the screen once, one column per frame, until
// it passes the right edge.
func (w *Walker) Walk(ctx context.Context) (Result, error) {
	tracer := telemetry.Tracer("walk")
	ctx, span := tracer.Start(ctx, "walk")
	defer span.End()

	width, height := w.sizer.Size()
	b := world.Bounds{Width: width, Height: height}
	res := Result{Bounds: b}
	span.SetAttributes(
		attribute.Int("terminal.width", width),
		attribute.Int("terminal.height", height),
	)

	lane, err := w.pickLane(b)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	res.Lane = lane
	span.SetAttributes(attribute.Int("walk.lane", lane))

	w.state = StateWalking
	defer func() { w.state = StateIdle }()

	dog := entity.NewDog(w.cfg.StartColumn, lane)
	half := (width + 1) / 2
	var prev *ui.Placement

	for dog.X <= width {
		cur := ui.Placement{Sprite: sprite.Walking[dog.Pose], X: dog.X, Y: dog.Y}
		if err := w.renderer.Frame(b, prev, cur); err != nil {
			return res, fail(span, fmt.Errorf("render frame at column %d: %w", dog.X, err))
		}
		res.Frames++
		prev = &cur

		dog.Step()
		if !dog.Pooped && dog.X > half {
			span.AddEvent("sit", traceAt(dog))
			if err := w.sit(ctx, b, dog); err != nil {
				return res, fail(span, err)
			}
			res.Pooped = true
		}

		if err := w.sleep(ctx, w.cfg.StepDelay); err != nil {
			return res, fail(span, err)
		}
	}

	span.SetAttributes(attribute.Int("walk.frames", res.Frames))
	return res, nil
}

// sit draws the sitting dog over the walking one, then the droppings below.
func (w *Walker) sit(ctx context.Context, b world.Bounds, dog *entity.Dog) error {
	w.state = StateSitting
	defer func() { w.state = StateWalking }()

	if err := w.sleep(ctx, w.cfg.SitDelay); err != nil {
		return err
	}

	w.screen.Begin()
	w.renderer.Draw(b, ui.Placement{Sprite: sprite.Sitting, X: dog.X, Y: dog.Y})
	if err := w.screen.End(); err != nil {
		return fmt.Errorf("render sitting dog: %w", err)
	}

	if err := w.sleep(ctx, w.cfg.PoopDelay); err != nil {
		return err
	}

	w.screen.Begin()
	w.renderer.DrawGlyph(b, ui.Placement{
		Sprite: sprite.Droppings,
		X:      dog.X + droppingsOffsetX,
		Y:      dog.Y + sprite.Sitting.Height,
	})
	if err := w.screen.End(); err != nil {
		return fmt.Errorf("render droppings: %w", err)
	}
	dog.Pooped = true

	return w.sleep(ctx, w.cfg.SettleDelay)
}

// pickLane chooses the sprite's top row uniformly so the sprite and the
// droppings row below it stay on screen with a spare row at the top.
func (w *Walker) pickLane(b world.Bounds) (int, error) {
	const minTop = 2
	maxTop := b.Height - sprite.Walking[0].Height - 1
	if maxTop < minTop || b.Width < 2 {
		return 0, ErrTerminalTooSmall
	}
	return minTop + w.rng.Intn(maxTop-minTop+1), nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func traceAt(dog *entity.Dog) trace.EventOption {
	return trace.WithAttributes(
		attribute.Int("dog.x", dog.X),
		attribute.Int("dog.y", dog.Y),
	)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
