//go:build cgo

package hal

import (
	"context"
	"log/slog"

	"gradient/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string
	// Width and Height of 0 leave the initial size to the platform.
	Width  int
	Height int
	// Linear selects bilinear filtering for the stretch blit.
	Linear bool
	Logger *slog.Logger
}

// RunWindow opens a desktop window and drives step once per ebiten tick
// until step reports false or the window fails. It blocks until the
// window closes.
func RunWindow(ctx context.Context, cfg WindowConfig, newLoop func(Window) func() bool) error {
	log := cfg.Logger
	if log == nil {
		log = DiscardLogger()
	}
	w := newHostWindow(ctx, log)
	if cfg.Linear {
		w.filter = ebiten.FilterLinear
	}
	step := newLoop(w)

	title := cfg.Title
	if title == "" {
		title = "gradient"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := &hostGame{w: w, step: step}
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "run window")
	}
	return nil
}

type hostGame struct {
	w    *hostWindow
	step func() bool
}

func (g *hostGame) Update() error {
	g.w.poll()
	if g.step == nil || !g.step() {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.w.draw(screen)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w.width = outsideWidth
	g.w.height = outsideHeight
	return outsideWidth, outsideHeight
}

type hostWindow struct {
	ctx context.Context
	log *slog.Logger

	q eventQueue

	width, height        int
	reportedW, reportedH int
	focused              bool
	closing              bool
	quit                 bool

	acquired bool
	filter   ebiten.Filter

	frame   *ebiten.Image
	scratch []byte
	dstW    int
	dstH    int
}

func newHostWindow(ctx context.Context, log *slog.Logger) *hostWindow {
	return &hostWindow{ctx: ctx, log: log, filter: ebiten.FilterNearest}
}

// poll converts ebiten's window state into queued notifications.
func (w *hostWindow) poll() {
	if w.width != w.reportedW || w.height != w.reportedH {
		w.reportedW, w.reportedH = w.width, w.height
		w.q.push(SizeChanged(w.width, w.height), Event{Kind: EventPaint})
	}
	if f := ebiten.IsFocused(); f != w.focused {
		w.focused = f
		w.q.push(Event{Kind: EventActivation, Active: f})
	}
	if !w.closing && ebiten.IsWindowBeingClosed() {
		w.closing = true
		w.q.push(Event{Kind: EventCloseRequested}, Event{Kind: EventDestroyed})
	}
	if !w.quit && w.ctx.Err() != nil {
		w.quit = true
		w.q.push(Event{Kind: EventQuit})
	}
}

func (w *hostWindow) PollEvent() (Event, bool) { return w.q.pop() }

func (w *hostWindow) ClientSize() (int, int) { return w.width, w.height }

func (w *hostWindow) GetDevice() (Device, error) {
	if w.acquired {
		return nil, errors.New("device already acquired")
	}
	w.acquired = true
	return &hostDevice{w: w}, nil
}

func (w *hostWindow) BeginPaint() (Device, error) { return w.GetDevice() }

func (w *hostWindow) DefaultHandler(ev Event) int {
	w.log.Debug("default handler", "event", ev.String())
	return 0
}

func (w *hostWindow) draw(screen *ebiten.Image) {
	if w.frame == nil || w.dstW <= 0 || w.dstH <= 0 {
		return
	}
	sw, sh := w.frame.Bounds().Dx(), w.frame.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.dstW)/float64(sw), float64(w.dstH)/float64(sh))
	op.Filter = w.filter
	screen.DrawImage(w.frame, op)
}

type hostDevice struct {
	w        *hostWindow
	released bool
}

func (d *hostDevice) StretchBlit(src Bitmap, dstWidth, dstHeight int) error {
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
	if w.frame == nil || w.frame.Bounds().Dx() != src.Width || w.frame.Bounds().Dy() != src.Height {
		if w.frame != nil {
			w.frame.Deallocate()
		}
		w.frame = ebiten.NewImage(src.Width, src.Height)
		w.scratch = make([]byte, src.Width*src.Height*4)
	}
	src.CopyRGBA(w.scratch)
	w.frame.WritePixels(w.scratch)
	w.dstW, w.dstH = dstWidth, dstHeight
	return nil
}

func (d *hostDevice) Release() {
	if d.released {
		return
	}
	d.released = true
	d.w.acquired = false
}
