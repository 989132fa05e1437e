//go:build !cgo

package hal

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Linear bool
	Logger *slog.Logger
}

func RunWindow(_ context.Context, _ WindowConfig, _ func(Window) func() bool) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
