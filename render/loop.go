package render

import (
	"log/slog"

	"gradient/hal"
)

// Loop drives the frame pipeline: drain notifications, generate,
// present, advance offsets. It never waits for vsync or a timer.
type Loop struct {
	state   *State
	win     hal.Window
	handler *Handler
	overlay *Overlay
	log     *slog.Logger

	frames  uint64
	stopped bool
}

type LoopOption func(*Loop)

// WithOverlay draws the frame caption after every Generate.
func WithOverlay(o *Overlay) LoopOption {
	return func(l *Loop) { l.overlay = o }
}

func WithLogger(log *slog.Logger) LoopOption {
	return func(l *Loop) { l.log = log }
}

// NewLoop wires a Handler for state to win and marks the state running.
func NewLoop(win hal.Window, state *State, opts ...LoopOption) *Loop {
	l := &Loop{state: state, win: win, log: hal.DiscardLogger()}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = hal.DiscardLogger()
	}
	l.handler = NewHandler(state, win, l.log)
	state.Running = true
	return l
}

// Run iterates until the running flag drops.
func (l *Loop) Run() {
	for l.Step() {
	}
}

// Step runs one iteration and reports whether the loop should continue.
// The first time it reports false it releases the back buffer.
func (l *Loop) Step() bool {
	if !l.state.Running {
		l.shutdown()
		return false
	}

	l.drain()
	if !l.state.Running {
		l.shutdown()
		return false
	}

	Generate(l.state.Buffer, l.state.BlueOffset, l.state.GreenOffset)
	if l.overlay != nil {
		l.overlay.Draw(l.state.Buffer, l.frames)
	}
	l.present()

	l.state.BlueOffset++
	l.state.GreenOffset++
	l.frames++
	return true
}

// Frames is the number of completed render/present iterations.
func (l *Loop) Frames() uint64 { return l.frames }

func (l *Loop) State() *State { return l.state }

func (l *Loop) drain() {
	for {
		ev, ok := l.win.PollEvent()
		if !ok {
			return
		}
		if ev.Kind == hal.EventQuit {
			l.log.Debug("quit received")
			l.state.Running = false
			continue
		}
		l.handler.Handle(ev)
	}
}

func (l *Loop) present() {
	dev, err := l.win.GetDevice()
	if err != nil {
		l.log.Warn("acquire device failed", "err", err)
		return
	}
	defer dev.Release()

	width, height := l.win.ClientSize()
	if err := Present(dev, l.state.Buffer, width, height); err != nil {
		l.log.Warn("present failed", "err", err)
	}
}

func (l *Loop) shutdown() {
	if l.stopped {
		return
	}
	l.stopped = true
	if err := l.state.Buffer.Release(); err != nil {
		l.log.Warn("release back buffer", "err", err)
	}
	l.log.Info("frame loop stopped", "frames", l.frames)
}
