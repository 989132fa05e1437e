package render

import (
	"errors"

	"gradient/hal"
)

// countingAllocator tracks live blocks so tests can spot leaks.
type countingAllocator struct {
	allocs int
	frees  int
	live   int
	fail   bool
	order  []string
}

func (a *countingAllocator) Alloc(size int) ([]byte, error) {
	a.order = append(a.order, "alloc")
	if a.fail {
		return nil, errors.New("out of memory")
	}
	if size == 0 {
		return nil, nil
	}
	a.allocs++
	a.live++
	return make([]byte, size), nil
}

func (a *countingAllocator) Free(b []byte) error {
	a.order = append(a.order, "free")
	if len(b) == 0 {
		return nil
	}
	a.frees++
	a.live--
	return nil
}

type blit struct {
	src        hal.Bitmap
	dstW, dstH int
}

type fakeDevice struct {
	win      *fakeWindow
	paint    bool
	released bool
}

func (d *fakeDevice) StretchBlit(src hal.Bitmap, dstW, dstH int) error {
	if d.released {
		return errors.New("blit after release")
	}
	if d.win.blitErr != nil {
		return d.win.blitErr
	}
	pix := append([]byte(nil), src.Pix...)
	src.Pix = pix
	d.win.blits = append(d.win.blits, blit{src: src, dstW: dstW, dstH: dstH})
	return nil
}

func (d *fakeDevice) Release() {
	if d.released {
		return
	}
	d.released = true
	d.win.open--
	if d.paint {
		d.win.paints++
	} else {
		d.win.presents++
	}
}

// fakeWindow replays a scripted queue. onPresent runs after each
// per-frame device release so tests can post events between frames.
type fakeWindow struct {
	queue        []hal.Event
	width        int
	height       int
	polls        int
	open         int
	presents     int
	paints       int
	blits        []blit
	blitErr      error
	acquireErr   error
	defaulted    []hal.Event
	defaultValue int
}

func (w *fakeWindow) post(ev ...hal.Event) { w.queue = append(w.queue, ev...) }

func (w *fakeWindow) PollEvent() (hal.Event, bool) {
	w.polls++
	if len(w.queue) == 0 {
		return hal.Event{}, false
	}
	ev := w.queue[0]
	w.queue = w.queue[1:]
	if ev.Kind == hal.EventSizeChanged {
		w.width, w.height = ev.Width, ev.Height
	}
	return ev, true
}

func (w *fakeWindow) ClientSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) GetDevice() (hal.Device, error) { return w.acquire(false) }

func (w *fakeWindow) BeginPaint() (hal.Device, error) { return w.acquire(true) }

func (w *fakeWindow) acquire(paint bool) (hal.Device, error) {
	if w.acquireErr != nil {
		return nil, w.acquireErr
	}
	w.open++
	return &fakeDevice{win: w, paint: paint}, nil
}

func (w *fakeWindow) DefaultHandler(ev hal.Event) int {
	w.defaulted = append(w.defaulted, ev)
	return w.defaultValue
}
