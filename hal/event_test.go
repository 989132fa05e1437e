package hal

import "testing"

func TestEventQueueFIFO(t *testing.T) {
	var q eventQueue
	if _, ok := q.pop(); ok {
		t.Fatal("pop on empty queue")
	}
	q.push(SizeChanged(1, 2), Event{Kind: EventPaint})
	q.push(Event{Kind: EventQuit})
	if q.len() != 3 {
		t.Fatalf("len = %d, want 3", q.len())
	}

	want := []EventKind{EventSizeChanged, EventPaint, EventQuit}
	for i, k := range want {
		ev, ok := q.pop()
		if !ok {
			t.Fatalf("pop %d: queue empty", i)
		}
		if ev.Kind != k {
			t.Fatalf("pop %d: kind %s, want %s", i, ev.Kind, k)
		}
	}
	if _, ok := q.pop(); ok {
		t.Fatal("queue should be drained")
	}
}

func TestEventString(t *testing.T) {
	cases := map[string]Event{
		"size-changed 640x480":   SizeChanged(640, 480),
		"activation active=true": {Kind: EventActivation, Active: true},
		"unknown code=0x20":      {Code: 0x20},
		"quit":                   {Kind: EventQuit},
	}
	for want, ev := range cases {
		if got := ev.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
