package render

import (
	"log/slog"

	"gradient/hal"
)

// Handler reacts to window notifications on behalf of a State.
type Handler struct {
	state *State
	win   hal.Window
	log   *slog.Logger
}

func NewHandler(state *State, win hal.Window, log *slog.Logger) *Handler {
	if log == nil {
		log = hal.DiscardLogger()
	}
	return &Handler{state: state, win: win, log: log}
}

// Handle dispatches one notification. Unknown notifications go to the
// platform default handler and its result is returned; everything else
// returns 0. Handle never fails.
func (h *Handler) Handle(ev hal.Event) int {
	switch ev.Kind {
	case hal.EventSizeChanged:
		h.log.Debug("size changed", "width", ev.Width, "height", ev.Height)
		if err := h.state.Buffer.Allocate(int32(ev.Width), int32(ev.Height)); err != nil {
			h.log.Warn("back buffer allocation failed", "err", err)
		}
	case hal.EventCloseRequested:
		h.log.Info("close requested")
		h.state.Running = false
	case hal.EventDestroyed:
		h.log.Info("window destroyed")
		h.state.Running = false
	case hal.EventPaint:
		h.paint()
	case hal.EventActivation:
		h.log.Debug("activation changed", "active", ev.Active)
	default:
		return h.win.DefaultHandler(ev)
	}
	return 0
}

func (h *Handler) paint() {
	dev, err := h.win.BeginPaint()
	if err != nil {
		h.log.Warn("begin paint failed", "err", err)
		return
	}
	defer dev.Release()

	width, height := h.win.ClientSize()
	if err := Present(dev, h.state.Buffer, width, height); err != nil {
		h.log.Warn("paint failed", "err", err)
	}
}
