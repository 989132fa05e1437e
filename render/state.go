package render

import "gradient/hal"

// State is everything the frame pipeline mutates. It is owned by the
// Loop and only touched from the thread that owns the window.
type State struct {
	Buffer *PixelBuffer

	// Offsets grow by one per frame; Generate truncates them to 8 bits.
	BlueOffset  int32
	GreenOffset int32

	// Running keeps the loop iterating. The Handler clears it on
	// close/destroy; the Loop clears it on quit.
	Running bool
}

// NewState returns a state with an empty buffer and zero offsets.
func NewState(alloc hal.Allocator) *State {
	return &State{Buffer: NewPixelBuffer(alloc)}
}
