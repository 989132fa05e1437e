package hal

import (
	"context"
	"image"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	// Frames stops the run after N presents (0 = run until ctx is done).
	Frames uint64
	Linear bool
	// Events are queued after the initial size/activation/paint burst.
	Events []Event
	Logger *slog.Logger
}

const (
	defaultHeadlessWidth  = 640
	defaultHeadlessHeight = 480
)

// RunHeadless drives the loop against a software window until step
// reports false. It returns the last presented frame.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newLoop func(Window) func() bool) (*image.RGBA, error) {
	w := NewHeadlessWindow(ctx, cfg)
	step := newLoop(w)
	if step == nil {
		return nil, errors.New("headless: nil step function")
	}
	for step() {
	}
	return w.Canvas(), nil
}

// HeadlessWindow is a Window backed by an in-memory RGBA canvas.
type HeadlessWindow struct {
	ctx    context.Context
	log    *slog.Logger
	q      eventQueue
	scaler draw.Scaler

	width, height int
	frames        uint64
	presents      uint64
	paints        uint64
	unhandled     int
	acquired      bool
	stopping      bool
	quit          bool

	canvas *image.RGBA
}

// NewHeadlessWindow creates the window and queues the notifications a
// freshly shown window receives.
func NewHeadlessWindow(ctx context.Context, cfg HeadlessConfig) *HeadlessWindow {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = defaultHeadlessWidth, defaultHeadlessHeight
	}
	log := cfg.Logger
	if log == nil {
		log = DiscardLogger()
	}
	var scaler draw.Scaler = draw.NearestNeighbor
	if cfg.Linear {
		scaler = draw.ApproxBiLinear
	}
	w := &HeadlessWindow{
		ctx:    ctx,
		log:    log,
		scaler: scaler,
		width:  cfg.Width,
		height: cfg.Height,
		frames: cfg.Frames,
	}
	w.q.push(
		SizeChanged(cfg.Width, cfg.Height),
		Event{Kind: EventActivation, Active: true},
		Event{Kind: EventPaint},
	)
	w.q.push(cfg.Events...)
	return w
}

// Inject queues ev as if the platform had posted it. A size-changed
// event also updates the client size.
func (w *HeadlessWindow) Inject(ev Event) {
	if ev.Kind == EventSizeChanged {
		w.width, w.height = ev.Width, ev.Height
	}
	w.q.push(ev)
}

func (w *HeadlessWindow) PollEvent() (Event, bool) {
	if !w.quit && w.ctx.Err() != nil {
		w.quit = true
		w.q.push(Event{Kind: EventQuit})
	}
	ev, ok := w.q.pop()
	if ok && ev.Kind == EventSizeChanged {
		w.width, w.height = ev.Width, ev.Height
	}
	return ev, ok
}

func (w *HeadlessWindow) ClientSize() (int, int) { return w.width, w.height }

func (w *HeadlessWindow) GetDevice() (Device, error) {
	return w.acquire(false)
}

func (w *HeadlessWindow) BeginPaint() (Device, error) {
	return w.acquire(true)
}

func (w *HeadlessWindow) acquire(paint bool) (Device, error) {
	if w.acquired {
		return nil, errors.New("device already acquired")
	}
	w.acquired = true
	return &headlessDevice{w: w, paint: paint}, nil
}

func (w *HeadlessWindow) DefaultHandler(ev Event) int {
	w.unhandled++
	w.log.Debug("default handler", "event", ev.String())
	return 0
}

// Presents is the number of completed per-frame device scopes.
func (w *HeadlessWindow) Presents() uint64 { return w.presents }

// Paints is the number of completed paint brackets.
func (w *HeadlessWindow) Paints() uint64 { return w.paints }

// Unhandled is the number of notifications routed to DefaultHandler.
func (w *HeadlessWindow) Unhandled() int { return w.unhandled }

// Acquired reports whether a device scope is currently open.
func (w *HeadlessWindow) Acquired() bool { return w.acquired }

// Canvas returns the last presented frame, or nil before the first blit.
func (w *HeadlessWindow) Canvas() *image.RGBA { return w.canvas }

func (w *HeadlessWindow) released(paint bool) {
	w.acquired = false
	if paint {
		w.paints++
		return
	}
	w.presents++
	if w.frames > 0 && w.presents >= w.frames && !w.stopping {
		w.stopping = true
		w.q.push(Event{Kind: EventCloseRequested}, Event{Kind: EventDestroyed}, Event{Kind: EventQuit})
	}
}

type headlessDevice struct {
	w        *HeadlessWindow
	paint    bool
	released bool
}

func (d *headlessDevice) StretchBlit(src Bitmap, dstWidth, dstHeight int) error {
	if d.released {
		return errors.New("blit on released device")
	}
	if src.Format != PixelFormatXRGB8888 {
		return errors.Errorf("unsupported pixel format %s", src.Format)
	}
	if src.Empty() || dstWidth <= 0 || dstHeight <= 0 {
		return nil
	}
	w := d.w
	if w.canvas == nil || w.canvas.Rect.Dx() != dstWidth || w.canvas.Rect.Dy() != dstHeight {
		w.canvas = image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	}
	w.scaler.Scale(w.canvas, w.canvas.Rect, src, src.Bounds(), draw.Src, nil)
	return nil
}

func (d *headlessDevice) Release() {
	if d.released {
		return
	}
	d.released = true
	d.w.released(d.paint)
}
